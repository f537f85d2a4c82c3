package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vidarbha-bioenergy/contact-api/internal/api"
	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
)

type MockAuthService struct {
	MockLogin func(ctx context.Context, creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(ctx, creds)
	}
	return "", nil
}

type MockSubmissionService struct {
	MockCreateContact func(ctx context.Context, req api.ContactRequest) (domain.Contact, error)
	MockCreateInquiry func(ctx context.Context, req api.InquiryRequest) (domain.Inquiry, error)
	MockListContacts  func(ctx context.Context) ([]domain.Contact, error)
	MockListInquiries func(ctx context.Context) ([]domain.Inquiry, error)
}

func (m *MockSubmissionService) CreateContact(ctx context.Context, req api.ContactRequest) (domain.Contact, error) {
	if m.MockCreateContact != nil {
		return m.MockCreateContact(ctx, req)
	}
	return domain.Contact{}, nil
}

func (m *MockSubmissionService) CreateInquiry(ctx context.Context, req api.InquiryRequest) (domain.Inquiry, error) {
	if m.MockCreateInquiry != nil {
		return m.MockCreateInquiry(ctx, req)
	}
	return domain.Inquiry{}, nil
}

func (m *MockSubmissionService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	if m.MockListContacts != nil {
		return m.MockListContacts(ctx)
	}
	return []domain.Contact{}, nil
}

func (m *MockSubmissionService) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	if m.MockListInquiries != nil {
		return m.MockListInquiries(ctx)
	}
	return []domain.Inquiry{}, nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
