package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/config"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	appHTTP "github.com/cmlabs-hris/bank-backoffice-go/internal/handler/http"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/bank-backoffice-go/internal/service/auth"
	sheetService "github.com/cmlabs-hris/bank-backoffice-go/internal/service/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/service/records"
	reportService "github.com/cmlabs-hris/bank-backoffice-go/internal/service/report"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Env)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	userRepo := postgresql.NewUserRepository(db)
	sheetRepo := postgresql.NewInformationSheetRepository(db)
	bankRepo := postgresql.NewBankExperienceRepository(db)
	nonBankRepo := postgresql.NewNonBankExperienceRepository(db)
	actionRepo := postgresql.NewDisciplinaryActionRepository(db)
	trainingRepo := postgresql.NewProfessionalTrainingRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration,
		jwt.WithRevocationStore(postgresql.NewRevokedTokenRepository(db)))
	if err != nil {
		return fmt.Errorf("jwt: %w", err)
	}
	if err := JWTService.Restore(ctx); err != nil {
		return fmt.Errorf("restore revoked tokens: %w", err)
	}

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	if cfg.App.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.App.AdminUsername, cfg.App.AdminPassword); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	inTx := func(ctx context.Context, fn func(txCtx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}
	recordsService := records.NewRecordsService(bankRepo, nonBankRepo, actionRepo, trainingRepo)
	informationSheetService := sheetService.NewInformationSheetService(sheetRepo, actionRepo, inTx)
	reportSvc := reportService.NewReportService(informationSheetService, recordsService, report.Letterhead{
		BankName:  cfg.Report.BankName,
		Direction: cfg.Report.Direction,
		City:      cfg.Report.City,
		Signatory: cfg.Report.Signatory,
	})

	router := appHTTP.NewRouter(logger, cfg.CORS.AllowedOrigins, JWTService, appHTTP.Handlers{
		Auth:                  appHTTP.NewAuthHandler(JWTService, authService),
		InformationSheets:     appHTTP.NewInformationSheetHandler(informationSheetService),
		BankExperiences:       appHTTP.NewResourceHandler[bankexperience.BankExperience]("Bank experience", bankexperience.Fields, recordsService.BankExperiences),
		NonBankExperiences:    appHTTP.NewResourceHandler[nonbankexperience.NonBankExperience]("Non-bank experience", nonbankexperience.Fields, recordsService.NonBankExperiences),
		DisciplinaryActions:   appHTTP.NewResourceHandler[disciplinaryaction.DisciplinaryAction]("Disciplinary action", disciplinaryaction.Fields, recordsService.DisciplinaryActions),
		ProfessionalTrainings: appHTTP.NewResourceHandler[professionaltraining.ProfessionalTraining]("Professional training", professionaltraining.Fields, recordsService.ProfessionalTrainings),
		Reports:               appHTTP.NewReportHandler(reportSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", slog.String("addr", srv.Addr), slog.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
