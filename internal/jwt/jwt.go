package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
	"github.com/vidarbha-bioenergy/contact-api/internal/logger"
)

type JwtService interface {
	NewToken(admin domain.Admin) (string, error)
	DecodeToken(jwtStr string) (*domain.Principal, error)
}

// Claims carry only the durable admin id, so tokens survive a username change.
type Claims struct {
	jwt.RegisteredClaims
}

type Jwt struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
}

func (j *Jwt) NewToken(admin domain.Admin) (string, error) {
	if len(j.secretKey) == 0 {
		return "", internal_errors.ErrMisconfigured
	}
	if admin.Id == "" {
		return "", errors.New("can't create token without admin id")
	}

	now := j.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.Id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}
	return tokenString, nil
}

// DecodeToken verifies signature, algorithm and expiry. Every failure is
// reported as ErrInvalidToken; the reason is only logged.
func (j *Jwt) DecodeToken(jwtStr string) (*domain.Principal, error) {
	if len(j.secretKey) == 0 {
		return nil, internal_errors.ErrMisconfigured
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(jwtStr, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, internal_errors.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" || claims.IssuedAt == nil {
		return nil, internal_errors.ErrInvalidToken
	}

	return &domain.Principal{
		AdminId:   claims.Subject,
		IssuedAt:  claims.IssuedAt.Unix(),
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}
