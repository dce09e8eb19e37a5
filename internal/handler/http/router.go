package http

import (
	"io"
	"log/slog"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth                  AuthHandler
	InformationSheets     ResourceHandler
	BankExperiences       ResourceHandler
	NonBankExperiences    ResourceHandler
	DisciplinaryActions   ResourceHandler
	ProfessionalTrainings ResourceHandler
	Reports               ReportHandler
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Post("/logout", h.Auth.Logout)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/information-sheets", func(r chi.Router) {
				mountResource(r, h.InformationSheets)
				r.Get("/export", h.Reports.ExportRegister)
				r.Route("/{id}/reports", func(r chi.Router) {
					r.Get("/work-certificate", h.Reports.WorkCertificate)
					r.Get("/investigation-letter", h.Reports.InvestigationLetter)
				})
			})
			r.Route("/bank-experiences", func(r chi.Router) {
				mountResource(r, h.BankExperiences)
			})
			r.Route("/non-bank-experiences", func(r chi.Router) {
				mountResource(r, h.NonBankExperiences)
			})
			r.Route("/disciplinary-actions", func(r chi.Router) {
				mountResource(r, h.DisciplinaryActions)
			})
			r.Route("/professional-trainings", func(r chi.Router) {
				mountResource(r, h.ProfessionalTrainings)
			})
		})
	})
	return r
}

func mountResource(r chi.Router, h ResourceHandler) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// NewLogger is the JSON logger used by the request logger, tagged with the
// service identity.
func NewLogger(w io.Writer, level slog.Level, env string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bank-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)
}
