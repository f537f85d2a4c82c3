package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vidarbha-bioenergy/contact-api/internal/api"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
	"github.com/vidarbha-bioenergy/contact-api/internal/logger"
)

const internalErrorMessage = "Internal server error"

func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		WriteMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(api.MessageResponse{Message: message})
}

// WriteErrorAndStatusCode answers with the status carried by err. Details of
// anything that maps to 500 stay in the log.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	status := internal_errors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed", "error", err)
		WriteMessage(w, status, internalErrorMessage)
		return
	}
	WriteMessage(w, status, err.Error())
}

func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return &internal_errors.ErrorWithStatusCode{Message: "Body is too large", StatusCode: http.StatusRequestEntityTooLarge}
		}
		logger.Log.Debug("invalid request body", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}
