package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vidarbha-bioenergy/contact-api/internal/api"
	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
)

// APIClient talks to a running contact api.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

func New(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// do is the single helper for making API requests. An empty token sends no
// Authorization header.
func (c *APIClient) do(ctx context.Context, method, path string, body any, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api unavailable: %w", err)
	}
	return resp, nil
}

// call performs the request and decodes a successful answer into out. Any
// other status comes back as ErrorWithStatusCode carrying the server message.
func (c *APIClient) call(ctx context.Context, method, path string, body any, token string, wantStatus int, out any) error {
	resp, err := c.do(ctx, method, path, body, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var msg api.MessageResponse
		if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil || msg.Message == "" {
			msg.Message = fmt.Sprintf("api returned status %d", resp.StatusCode)
		}
		return &internal_errors.ErrorWithStatusCode{Message: msg.Message, StatusCode: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode %s response: %w", path, err)
	}
	return nil
}

func (c *APIClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp api.LoginResponse
	err := c.call(ctx, http.MethodPost, "/api/admin-login", api.LoginRequest{Username: username, Password: password}, "", http.StatusOK, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *APIClient) SubmitContact(ctx context.Context, req api.ContactRequest) error {
	return c.call(ctx, http.MethodPost, "/api/contact", req, "", http.StatusCreated, nil)
}

func (c *APIClient) SubmitInquiry(ctx context.Context, req api.InquiryRequest) error {
	return c.call(ctx, http.MethodPost, "/api/inquiry", req, "", http.StatusCreated, nil)
}

func (c *APIClient) Contacts(ctx context.Context, token string) ([]domain.Contact, error) {
	var contacts []domain.Contact
	if err := c.call(ctx, http.MethodGet, "/api/contacts", nil, token, http.StatusOK, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *APIClient) Inquiries(ctx context.Context, token string) ([]domain.Inquiry, error) {
	var inquiries []domain.Inquiry
	if err := c.call(ctx, http.MethodGet, "/api/inquiries", nil, token, http.StatusOK, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}
