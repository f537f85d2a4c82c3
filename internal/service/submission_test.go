package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidarbha-bioenergy/contact-api/internal/api"
	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
	"github.com/vidarbha-bioenergy/contact-api/internal/validation"
)

func TestCreateContact(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("stores trimmed fields", func(t *testing.T) {
		var saved []domain.Contact
		storage := &MockSubmissionStorage{SaveContactFunc: func(ctx context.Context, c domain.Contact) error {
			saved = append(saved, c)
			return nil
		}}
		s := NewSubmission(storage, validation.New(false))
		s.now = func() time.Time { return fixed }

		contact, err := s.CreateContact(ctx, api.ContactRequest{Name: " A ", Email: "a@b.com ", ContactNo: " 1 ", Message: " hi "})

		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, contact, saved[0])
		assert.NotEmpty(t, contact.Id)
		assert.Equal(t, "A", contact.Name)
		assert.Equal(t, "a@b.com", contact.Email)
		assert.Equal(t, "1", contact.ContactNo)
		assert.Equal(t, "", contact.Company)
		assert.Equal(t, "hi", contact.Message)
		assert.Equal(t, fixed, contact.CreatedAt)
	})

	t.Run("invalid payload is never persisted", func(t *testing.T) {
		called := false
		storage := &MockSubmissionStorage{SaveContactFunc: func(ctx context.Context, c domain.Contact) error {
			called = true
			return nil
		}}
		s := NewSubmission(storage, validation.New(false))

		_, err := s.CreateContact(ctx, api.ContactRequest{Name: "A", Email: "a@b.com", ContactNo: "1", Message: "   "})

		var vErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "message", vErr.Field)
		assert.False(t, called)
	})

	t.Run("storage failure is returned once", func(t *testing.T) {
		calls := 0
		dbErr := &internal_errors.PersistenceError{Op: "save contact", Err: errors.New("disk full")}
		storage := &MockSubmissionStorage{SaveContactFunc: func(ctx context.Context, c domain.Contact) error {
			calls++
			return dbErr
		}}
		s := NewSubmission(storage, validation.New(false))

		_, err := s.CreateContact(ctx, api.ContactRequest{Name: "A", Email: "a@b.com", ContactNo: "1", Message: "hi"})

		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 1, calls)
	})
}

func TestCreateInquiry(t *testing.T) {
	ctx := context.Background()

	var saved domain.Inquiry
	storage := &MockSubmissionStorage{SaveInquiryFunc: func(ctx context.Context, i domain.Inquiry) error {
		saved = i
		return nil
	}}
	s := NewSubmission(storage, validation.New(false))

	inquiry, err := s.CreateInquiry(ctx, api.InquiryRequest{Name: "A", Mobile: "123", Email: "a@b.com", Message: "hi"})

	require.NoError(t, err)
	assert.Equal(t, inquiry, saved)
	assert.Equal(t, "123", saved.Mobile)
	assert.Equal(t, "", saved.Company)
	assert.Equal(t, "", saved.Capacity)
	assert.False(t, saved.CreatedAt.IsZero())

	t.Run("missing mobile", func(t *testing.T) {
		_, err := s.CreateInquiry(ctx, api.InquiryRequest{Name: "A", Email: "a@b.com", Message: "hi"})

		var vErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "mobile", vErr.Field)
	})
}

func TestListSubmissions(t *testing.T) {
	ctx := context.Background()

	t.Run("empty lists are not nil", func(t *testing.T) {
		s := NewSubmission(&MockSubmissionStorage{}, validation.New(false))

		contacts, err := s.ListContacts(ctx)
		require.NoError(t, err)
		assert.NotNil(t, contacts)
		assert.Empty(t, contacts)

		inquiries, err := s.ListInquiries(ctx)
		require.NoError(t, err)
		assert.NotNil(t, inquiries)
		assert.Empty(t, inquiries)
	})

	t.Run("returns storage order", func(t *testing.T) {
		storage := &MockSubmissionStorage{ContactsFunc: func(ctx context.Context) ([]domain.Contact, error) {
			return []domain.Contact{{Id: "1"}, {Id: "2"}}, nil
		}}
		s := NewSubmission(storage, validation.New(false))

		contacts, err := s.ListContacts(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, "1", contacts[0].Id)
		assert.Equal(t, "2", contacts[1].Id)
	})

	t.Run("storage error", func(t *testing.T) {
		storage := &MockSubmissionStorage{InquiriesFunc: func(ctx context.Context) ([]domain.Inquiry, error) {
			return nil, errors.New("boom")
		}}
		s := NewSubmission(storage, validation.New(false))

		_, err := s.ListInquiries(ctx)
		assert.Error(t, err)
	})
}
