package pg

import (
	"context"
	"errors"

	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
)

// SaveAdmin stores a new admin. The password must already be hashed.
// Returns ErrDuplicateIdentity if the username is taken.
func (s *Storage) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	err := insert(ctx, s.db, domain.AdminsCollection, admin.Id, admin)
	if err != nil && !errors.Is(err, internal_errors.ErrDuplicateIdentity) {
		return &internal_errors.PersistenceError{Op: "save admin", Err: err}
	}
	return err
}

// AdminByUsername returns ErrNotFound when no admin has that username.
func (s *Storage) AdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	docs, err := find(ctx, s.db, domain.AdminsCollection, map[string]any{"username": username})
	if err != nil {
		return domain.Admin{}, &internal_errors.PersistenceError{Op: "find admin", Err: err}
	}
	admins, err := decodeAll[domain.Admin](docs)
	if err != nil {
		return domain.Admin{}, &internal_errors.PersistenceError{Op: "decode admin", Err: err}
	}
	if len(admins) == 0 {
		return domain.Admin{}, internal_errors.ErrNotFound
	}
	return admins[0], nil
}
