package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/jwt"
)

type revokedTokenRepositoryImpl struct {
	db *database.DB
}

// NewRevokedTokenRepository keeps logged-out access tokens, by hash, until
// they expire.
func NewRevokedTokenRepository(db *database.DB) jwt.RevocationStore {
	return &revokedTokenRepositoryImpl{db: db}
}

func (r *revokedTokenRepositoryImpl) SaveRevocation(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at <= NOW()`); err != nil {
		return fmt.Errorf("prune revoked tokens: %w", err)
	}

	query := `
		INSERT INTO revoked_tokens (token_hash, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (token_hash) DO NOTHING
	`
	if _, err := q.Exec(ctx, query, tokenHash, expiresAt.UTC()); err != nil {
		return fmt.Errorf("save revoked token: %w", err)
	}
	return nil
}

func (r *revokedTokenRepositoryImpl) ActiveRevocations(ctx context.Context) (map[string]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT token_hash, expires_at FROM revoked_tokens WHERE expires_at > NOW()`)
	if err != nil {
		return nil, fmt.Errorf("list revoked tokens: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var (
			hash      string
			expiresAt time.Time
		)
		if err := rows.Scan(&hash, &expiresAt); err != nil {
			return nil, err
		}
		out[hash] = expiresAt
	}
	return out, rows.Err()
}
