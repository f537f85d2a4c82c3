package service

import (
	"context"

	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
	"github.com/vidarbha-bioenergy/contact-api/internal/logger"
)

type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

type Jwt interface {
	NewToken(admin domain.Admin) (string, error)
}

type Auth struct {
	credentials *Credentials
	jwt         Jwt
	dummyHash   string
}

func NewAuth(credentials *Credentials, jwt Jwt) *Auth {
	// compared against when the username is unknown, so both failures cost
	// one bcrypt comparison
	dummy, err := HashPassword("not-a-real-password", credentials.cost)
	if err != nil {
		logger.Log.Warn("failed to prepare dummy hash", "error", err)
	}
	return &Auth{credentials: credentials, jwt: jwt, dummyHash: dummy}
}

// Login returns a signed session token. Unknown username and wrong password
// give the same ErrInvalidCreds.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	admin, err := a.credentials.FindByUsername(ctx, creds.Username)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			a.credentials.VerifyPassword(domain.Admin{PassHash: a.dummyHash}, creds.Password)
			logger.Log.Info("login failed", "username", creds.Username, "reason", "unknown user")
			return "", internal_errors.ErrInvalidCreds
		}
		return "", err
	}

	if !a.credentials.VerifyPassword(admin, creds.Password) {
		logger.Log.Info("login failed", "admin_id", admin.Id, "reason", "password mismatch")
		return "", internal_errors.ErrInvalidCreds
	}

	token, err := a.jwt.NewToken(admin)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "admin_id", admin.Id, "error", err)
		return "", err
	}
	return token, nil
}
