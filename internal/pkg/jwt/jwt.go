package jwt

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID int64, username string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(ctx context.Context, token string, expiresAt int64) error
	IsTokenRevoked(token string) bool
	// Restore reloads revocations that outlived a restart.
	Restore(ctx context.Context) error
}

// RevocationStore persists revoked tokens by hash. Implementations drop the
// ones that expired.
type RevocationStore interface {
	SaveRevocation(ctx context.Context, tokenHash string, expiresAt time.Time) error
	ActiveRevocations(ctx context.Context) (map[string]time.Time, error)
}

type Option func(*JWTService)

// WithRevocationStore writes revocations through to store.
func WithRevocationStore(store RevocationStore) Option {
	return func(j *JWTService) { j.store = store }
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
	now                       func() time.Time
	store                     RevocationStore
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService returns an HS256 token service. accessTokenExpirationTime is
// a time.ParseDuration string such as "8h".
func NewJWTService(secretKey string, accessTokenExpirationTime string, opts ...Option) (Service, error) {
	expiration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	j := &JWTService{
		accessTokenExpirationTime: expiration,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
		now:                       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// HashToken is the key a revoked token is kept under.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(hash[:])
}

func (j *JWTService) GenerateAccessToken(userID int64, username string) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"user_id":  userID,
		"username": username,
		"type":     "access",
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RevokeToken blocks token until it would have expired anyway. The token is
// blocked in memory even when the store fails.
func (j *JWTService) RevokeToken(ctx context.Context, token string, expiresAt int64) error {
	hash := HashToken(token)

	j.mu.Lock()
	j.revokedTokens[hash] = expiresAt
	// drop entries that expired on their own
	now := j.now().Unix()
	for h, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, h)
		}
	}
	j.mu.Unlock()

	if j.store == nil {
		return nil
	}
	return j.store.SaveRevocation(ctx, hash, time.Unix(expiresAt, 0))
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[HashToken(token)]
	return revoked
}

func (j *JWTService) Restore(ctx context.Context) error {
	if j.store == nil {
		return nil
	}
	active, err := j.store.ActiveRevocations(ctx)
	if err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	for hash, exp := range active {
		j.revokedTokens[hash] = exp.Unix()
	}
	return nil
}
