package service

import (
	"context"

	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
)

// --- Mocks ---

type MockAdminStorage struct {
	SaveAdminFunc       func(ctx context.Context, admin domain.Admin) error
	AdminByUsernameFunc func(ctx context.Context, username string) (domain.Admin, error)
}

func (m *MockAdminStorage) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	if m.SaveAdminFunc != nil {
		return m.SaveAdminFunc(ctx, admin)
	}
	return nil
}

func (m *MockAdminStorage) AdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	if m.AdminByUsernameFunc != nil {
		return m.AdminByUsernameFunc(ctx, username)
	}
	return domain.Admin{}, internal_errors.ErrNotFound
}

type MockJwt struct {
	NewTokenFunc func(admin domain.Admin) (string, error)
}

func (m *MockJwt) NewToken(admin domain.Admin) (string, error) {
	if m.NewTokenFunc != nil {
		return m.NewTokenFunc(admin)
	}
	return "token-" + admin.Id, nil
}

type MockSubmissionStorage struct {
	SaveContactFunc func(ctx context.Context, contact domain.Contact) error
	ContactsFunc    func(ctx context.Context) ([]domain.Contact, error)
	SaveInquiryFunc func(ctx context.Context, inquiry domain.Inquiry) error
	InquiriesFunc   func(ctx context.Context) ([]domain.Inquiry, error)
}

func (m *MockSubmissionStorage) SaveContact(ctx context.Context, contact domain.Contact) error {
	if m.SaveContactFunc != nil {
		return m.SaveContactFunc(ctx, contact)
	}
	return nil
}

func (m *MockSubmissionStorage) Contacts(ctx context.Context) ([]domain.Contact, error) {
	if m.ContactsFunc != nil {
		return m.ContactsFunc(ctx)
	}
	return nil, nil
}

func (m *MockSubmissionStorage) SaveInquiry(ctx context.Context, inquiry domain.Inquiry) error {
	if m.SaveInquiryFunc != nil {
		return m.SaveInquiryFunc(ctx, inquiry)
	}
	return nil
}

func (m *MockSubmissionStorage) Inquiries(ctx context.Context) ([]domain.Inquiry, error) {
	if m.InquiriesFunc != nil {
		return m.InquiriesFunc(ctx)
	}
	return nil, nil
}
