package setup

import (
	"context"
	"time"

	"github.com/vidarbha-bioenergy/contact-api/internal/config"
	"github.com/vidarbha-bioenergy/contact-api/internal/handler"
	"github.com/vidarbha-bioenergy/contact-api/internal/jwt"
	"github.com/vidarbha-bioenergy/contact-api/internal/logger"
	"github.com/vidarbha-bioenergy/contact-api/internal/middleware"
	"github.com/vidarbha-bioenergy/contact-api/internal/middleware/ratelimiter"
	"github.com/vidarbha-bioenergy/contact-api/internal/service"
	"github.com/vidarbha-bioenergy/contact-api/internal/storage/pg"
	"github.com/vidarbha-bioenergy/contact-api/internal/validation"
)

// Store is everything the api needs from persistence.
type Store interface {
	service.AdminStorage
	service.SubmissionStorage
	Ping(ctx context.Context) error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Store
	Jwt            jwt.JwtService
	Credentials    *service.Credentials
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	LoginLimiter   *ratelimiter.RateLimiter
	GlobalLimiter  *ratelimiter.RateLimiter
}

// New wires services, handlers and middleware around an already opened store.
func New(cfg *config.Config, store Store) *Dependencies {
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	validator := validation.New(cfg.Public.StripMarkup)

	credentials := service.NewCredentials(store, cfg.Public.BcryptCost)
	auth := service.NewAuth(credentials, jwtService)
	submission := service.NewSubmission(store, validator)

	return &Dependencies{
		Config:         cfg,
		Storage:        store,
		Jwt:            jwtService,
		Credentials:    credentials,
		Handler:        handler.New(auth, submission, validator, store),
		AuthMiddleware: middleware.NewAuth(jwtService),
		LoginLimiter:   ratelimiter.PerWindow(cfg.Public.LoginAttempts, cfg.LoginWindow()),
		GlobalLimiter:  ratelimiter.New(1000, 1000, time.Hour),
	}
}

// SetupDependencies connects to the database and initializes all dependencies
// required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg.Private.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return New(cfg, storage), nil
}

func (d *Dependencies) Close() {
	d.LoginLimiter.Stop()
	d.GlobalLimiter.Stop()

	if c, ok := d.Storage.(interface{ Cleanup() error }); ok {
		if err := c.Cleanup(); err != nil {
			logger.Log.Error("failed to close storage", "error", err)
		}
	}
}
