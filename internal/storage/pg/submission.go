package pg

import (
	"context"

	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
)

func (s *Storage) SaveContact(ctx context.Context, contact domain.Contact) error {
	if err := insert(ctx, s.db, domain.ContactsCollection, contact.Id, contact); err != nil {
		return &internal_errors.PersistenceError{Op: "save contact", Err: err}
	}
	return nil
}

// Contacts returns every contact in insertion order.
func (s *Storage) Contacts(ctx context.Context) ([]domain.Contact, error) {
	docs, err := findAll(ctx, s.db, domain.ContactsCollection)
	if err != nil {
		return nil, &internal_errors.PersistenceError{Op: "list contacts", Err: err}
	}
	contacts, err := decodeAll[domain.Contact](docs)
	if err != nil {
		return nil, &internal_errors.PersistenceError{Op: "list contacts", Err: err}
	}
	return contacts, nil
}

func (s *Storage) SaveInquiry(ctx context.Context, inquiry domain.Inquiry) error {
	if err := insert(ctx, s.db, domain.InquiriesCollection, inquiry.Id, inquiry); err != nil {
		return &internal_errors.PersistenceError{Op: "save inquiry", Err: err}
	}
	return nil
}

// Inquiries returns every inquiry in insertion order.
func (s *Storage) Inquiries(ctx context.Context) ([]domain.Inquiry, error) {
	docs, err := findAll(ctx, s.db, domain.InquiriesCollection)
	if err != nil {
		return nil, &internal_errors.PersistenceError{Op: "list inquiries", Err: err}
	}
	inquiries, err := decodeAll[domain.Inquiry](docs)
	if err != nil {
		return nil, &internal_errors.PersistenceError{Op: "list inquiries", Err: err}
	}
	return inquiries, nil
}
