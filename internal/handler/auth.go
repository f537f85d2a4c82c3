package handler

import (
	"errors"
	"net/http"

	"github.com/vidarbha-bioenergy/contact-api/internal/api"
	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
	"github.com/vidarbha-bioenergy/contact-api/internal/middleware/metrics"
	"github.com/vidarbha-bioenergy/contact-api/internal/utils"
)

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := utils.Decode(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.validator.ValidateLogin(req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(r.Context(), domain.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		if errors.Is(err, internal_errors.ErrInvalidCreds) {
			metrics.Login("rejected")
		} else {
			metrics.Login("error")
		}
		writeFailure(w, r, err, "Server error")
		return
	}

	metrics.Login("success")
	utils.WriteJSON(w, http.StatusOK, api.LoginResponse{Token: token})
}
