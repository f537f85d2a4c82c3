// Package validation normalizes and checks public form submissions.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/vidarbha-bioenergy/contact-api/internal/api"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
)

type Validator struct {
	validate *validator.Validate
	policy   *bluemonday.Policy // nil keeps markup as submitted
}

// New creates a Validator. With stripMarkup every submitted string has html
// removed before it is trimmed and checked.
func New(stripMarkup bool) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names, clients never see go names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	var policy *bluemonday.Policy
	if stripMarkup {
		policy = bluemonday.StrictPolicy()
	}
	return &Validator{validate: v, policy: policy}
}

func (v *Validator) clean(s string) string {
	if v.policy != nil {
		s = v.policy.Sanitize(s)
	}
	return strings.TrimSpace(s)
}

// ValidateContact returns the trimmed request or a ValidationError naming the
// first missing or malformed field.
func (v *Validator) ValidateContact(req api.ContactRequest) (api.ContactRequest, error) {
	req.Name = v.clean(req.Name)
	req.Email = v.clean(req.Email)
	req.ContactNo = v.clean(req.ContactNo)
	req.Company = v.clean(req.Company)
	req.Message = v.clean(req.Message)

	if err := v.check(req); err != nil {
		return api.ContactRequest{}, err
	}
	return req, nil
}

// ValidateInquiry is ValidateContact for inquiries.
func (v *Validator) ValidateInquiry(req api.InquiryRequest) (api.InquiryRequest, error) {
	req.Name = v.clean(req.Name)
	req.Mobile = v.clean(req.Mobile)
	req.Email = v.clean(req.Email)
	req.Company = v.clean(req.Company)
	req.Capacity = v.clean(req.Capacity)
	req.Message = v.clean(req.Message)

	if err := v.check(req); err != nil {
		return api.InquiryRequest{}, err
	}
	return req, nil
}

// ValidateLogin only checks presence; credentials are never trimmed.
func (v *Validator) ValidateLogin(req api.LoginRequest) error {
	return v.check(req)
}

func (v *Validator) check(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return internal_errors.MissingField(fe.Field())
	}
	return internal_errors.InvalidField(fe.Field())
}
