// Package server wires repositories, services and handlers into the HTTP
// router.
package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mediatrack/mediatrack-go/internal/config"
	"github.com/mediatrack/mediatrack-go/internal/crypto"
	"github.com/mediatrack/mediatrack-go/internal/handler"
	"github.com/mediatrack/mediatrack-go/internal/middleware"
	"github.com/mediatrack/mediatrack-go/internal/repository"
	"github.com/mediatrack/mediatrack-go/internal/service"
)

// NewRouter builds the API router on top of an open store handle.
func NewRouter(cfg config.Config, db *sql.DB, log *slog.Logger) http.Handler {
	userRepo := repository.NewUserRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	tokens := crypto.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	hasher := crypto.NewPasswordHasher(cfg.BcryptCost)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, hasher, tokens))
	mediaHandler := handler.NewMediaHandler(service.NewMediaService(mediaRepo, userRepo))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigin, cfg.TokenHeader))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			log.ErrorContext(r.Context(), "health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/users", authHandler.HandleRegister)
	r.Post("/api/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(tokens, cfg.TokenHeader))
		r.Get("/api/auth", authHandler.HandleMe)

		r.Get("/api/medias", mediaHandler.HandleList)
		r.Post("/api/medias", mediaHandler.HandleCreate)
		r.Get("/api/medias/{id}", mediaHandler.HandleGet)
		r.Put("/api/medias/{id}", mediaHandler.HandleUpdate)
		r.Delete("/api/medias/{id}", mediaHandler.HandleDelete)
	})

	return r
}
