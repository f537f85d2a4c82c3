package handler

import (
	"context"
	"net/http"

	"github.com/vidarbha-bioenergy/contact-api/internal/api"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
	"github.com/vidarbha-bioenergy/contact-api/internal/logger"
	"github.com/vidarbha-bioenergy/contact-api/internal/service"
	"github.com/vidarbha-bioenergy/contact-api/internal/utils"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type LoginValidator interface {
	ValidateLogin(req api.LoginRequest) error
}

type Handler struct {
	auth       service.AuthService
	submission service.SubmissionService
	validator  LoginValidator
	health     HealthChecker
}

func New(auth service.AuthService, submission service.SubmissionService, validator LoginValidator, health HealthChecker) *Handler {
	return &Handler{
		auth:       auth,
		submission: submission,
		validator:  validator,
		health:     health,
	}
}

// writeFailure answers client errors with their own message. Server errors are
// logged in full and replaced with serverMessage.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, serverMessage string) {
	status := internal_errors.StatusCode(err)
	if status < http.StatusInternalServerError {
		utils.WriteMessage(w, status, err.Error())
		return
	}
	logger.Log.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	utils.WriteMessage(w, status, serverMessage)
}
