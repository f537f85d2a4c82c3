package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vidarbha-bioenergy/contact-api/internal/api"
	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
)

type SubmissionService interface {
	CreateContact(ctx context.Context, req api.ContactRequest) (domain.Contact, error)
	CreateInquiry(ctx context.Context, req api.InquiryRequest) (domain.Inquiry, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	ListInquiries(ctx context.Context) ([]domain.Inquiry, error)
}

type SubmissionStorage interface {
	SaveContact(ctx context.Context, contact domain.Contact) error
	Contacts(ctx context.Context) ([]domain.Contact, error)
	SaveInquiry(ctx context.Context, inquiry domain.Inquiry) error
	Inquiries(ctx context.Context) ([]domain.Inquiry, error)
}

type SubmissionValidator interface {
	ValidateContact(req api.ContactRequest) (api.ContactRequest, error)
	ValidateInquiry(req api.InquiryRequest) (api.InquiryRequest, error)
}

// Submission stores public form submissions. Writes are single shot: a
// failed write is returned to the caller and never retried here.
type Submission struct {
	storage   SubmissionStorage
	validator SubmissionValidator
	now       func() time.Time
}

func NewSubmission(storage SubmissionStorage, validator SubmissionValidator) *Submission {
	return &Submission{
		storage:   storage,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Submission) CreateContact(ctx context.Context, req api.ContactRequest) (domain.Contact, error) {
	req, err := s.validator.ValidateContact(req)
	if err != nil {
		return domain.Contact{}, err
	}

	contact := domain.Contact{
		Id:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		ContactNo: req.ContactNo,
		Company:   req.Company,
		Message:   req.Message,
		CreatedAt: s.now(),
	}
	if err := s.storage.SaveContact(ctx, contact); err != nil {
		return domain.Contact{}, err
	}
	return contact, nil
}

func (s *Submission) CreateInquiry(ctx context.Context, req api.InquiryRequest) (domain.Inquiry, error) {
	req, err := s.validator.ValidateInquiry(req)
	if err != nil {
		return domain.Inquiry{}, err
	}

	inquiry := domain.Inquiry{
		Id:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Company:   req.Company,
		Capacity:  req.Capacity,
		Message:   req.Message,
		CreatedAt: s.now(),
	}
	if err := s.storage.SaveInquiry(ctx, inquiry); err != nil {
		return domain.Inquiry{}, err
	}
	return inquiry, nil
}

func (s *Submission) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.storage.Contacts(ctx)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts, nil
}

func (s *Submission) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	inquiries, err := s.storage.Inquiries(ctx)
	if err != nil {
		return nil, err
	}
	if inquiries == nil {
		inquiries = []domain.Inquiry{}
	}
	return inquiries, nil
}
