package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
	"github.com/vidarbha-bioenergy/contact-api/internal/middleware/metrics"
	"github.com/vidarbha-bioenergy/contact-api/internal/utils"
)

type TokenDecoder interface {
	DecodeToken(jwtStr string) (*domain.Principal, error)
}

// Key to store the principal in the request context
type key int

const PrincipalKey key = 0

type Auth struct {
	jwt TokenDecoder
}

func NewAuth(jwt TokenDecoder) *Auth {
	return &Auth{jwt: jwt}
}

// Authorize classifies a request by its Authorization header. A missing header
// or any scheme other than "Bearer <token>" is ErrNoToken; a token that fails
// verification is ErrInvalidToken.
func (a *Auth) Authorize(header http.Header) (*domain.Principal, error) {
	token, found := strings.CutPrefix(header.Get("Authorization"), "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return nil, internal_errors.ErrNoToken
	}
	return a.jwt.DecodeToken(strings.TrimSpace(token))
}

// NeedAuth rejects requests without a valid admin token and puts the decoded
// principal into the context otherwise.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := a.Authorize(r.Header)
			if err != nil {
				metrics.AuthRejected(internal_errors.StatusCode(err))
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetPrincipalFromContext(r *http.Request) *domain.Principal {
	principal, ok := r.Context().Value(PrincipalKey).(*domain.Principal)
	if !ok {
		return nil
	}
	return principal
}
