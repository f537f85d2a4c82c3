package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
	"github.com/vidarbha-bioenergy/contact-api/internal/logger"
)

type AdminStorage interface {
	SaveAdmin(ctx context.Context, admin domain.Admin) error
	AdminByUsername(ctx context.Context, username string) (domain.Admin, error)
}

// Credentials holds the admin identities. Passwords only ever reach storage
// as bcrypt hashes.
type Credentials struct {
	storage AdminStorage
	cost    int
}

func NewCredentials(storage AdminStorage, cost int) *Credentials {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Credentials{storage: storage, cost: cost}
}

func (c *Credentials) FindByUsername(ctx context.Context, username string) (domain.Admin, error) {
	return c.storage.AdminByUsername(ctx, username)
}

// VerifyPassword compares candidate with the stored hash in constant time.
func (c *Credentials) VerifyPassword(admin domain.Admin, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(admin.PassHash), []byte(candidate)) == nil
}

// Create hashes password and stores a new admin with a fresh id.
// Fails with ErrDuplicateIdentity if the username is taken.
func (c *Credentials) Create(ctx context.Context, username, password string) (domain.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Admin{}, internal_errors.MissingField("username")
	}
	if password == "" {
		return domain.Admin{}, internal_errors.MissingField("password")
	}

	passHash, err := HashPassword(password, c.cost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.Admin{}, err
	}

	admin := domain.Admin{Id: uuid.NewString(), Username: username, PassHash: passHash}
	if err := c.storage.SaveAdmin(ctx, admin); err != nil {
		return domain.Admin{}, err
	}
	return admin, nil
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
