package handler

import (
	"net/http"

	"github.com/vidarbha-bioenergy/contact-api/internal/api"
	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	"github.com/vidarbha-bioenergy/contact-api/internal/logger"
	"github.com/vidarbha-bioenergy/contact-api/internal/middleware"
	"github.com/vidarbha-bioenergy/contact-api/internal/middleware/metrics"
	"github.com/vidarbha-bioenergy/contact-api/internal/utils"
)

const (
	contactCreatedMessage = "Message received successfully!"
	inquiryCreatedMessage = "Inquiry submitted successfully!"
)

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req api.ContactRequest
	if err := utils.Decode(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	contact, err := h.submission.CreateContact(r.Context(), req)
	if err != nil {
		writeFailure(w, r, err, "Failed to save message.")
		return
	}

	logger.Log.Info("contact stored", "id", contact.Id)
	metrics.SubmissionStored(domain.ContactsCollection)
	utils.WriteJSON(w, http.StatusCreated, api.MessageResponse{Message: contactCreatedMessage})
}

func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req api.InquiryRequest
	if err := utils.Decode(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	inquiry, err := h.submission.CreateInquiry(r.Context(), req)
	if err != nil {
		writeFailure(w, r, err, "Failed to save inquiry.")
		return
	}

	logger.Log.Info("inquiry stored", "id", inquiry.Id)
	metrics.SubmissionStored(domain.InquiriesCollection)
	utils.WriteJSON(w, http.StatusCreated, api.MessageResponse{Message: inquiryCreatedMessage})
}

func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.submission.ListContacts(r.Context())
	if err != nil {
		writeFailure(w, r, err, "Failed to retrieve contacts.")
		return
	}

	if principal := middleware.GetPrincipalFromContext(r); principal != nil {
		logger.Log.Debug("contacts listed", "admin_id", principal.AdminId, "count", len(contacts))
	}
	utils.WriteJSON(w, http.StatusOK, contacts)
}

func (h *Handler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.submission.ListInquiries(r.Context())
	if err != nil {
		writeFailure(w, r, err, "Failed to retrieve inquiries.")
		return
	}

	if principal := middleware.GetPrincipalFromContext(r); principal != nil {
		logger.Log.Debug("inquiries listed", "admin_id", principal.AdminId, "count", len(inquiries))
	}
	utils.WriteJSON(w, http.StatusOK, inquiries)
}
