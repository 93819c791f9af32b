package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	ErrCodeInvalidPayload     = "invalid_payload"
	ErrCodeValidation         = "validation_error"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeTokenExpired       = "token_expired"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeAuthRequired       = "auth_required"
	ErrCodeInternal           = "internal_server_error"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// RespondErrorWithCode builds a JSON error response with a standard
// code and message. The optional details are included if non-nil.
func RespondErrorWithCode(
	w http.ResponseWriter,
	status int,
	errorCode string,
	publicMessage string,
	details any,
	devErrs ...error,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errBody := ErrorResponse{
		Code:    errorCode,
		Message: publicMessage,
	}
	if details != nil {
		errBody.Details = details
	}
	_ = json.NewEncoder(w).Encode(errBody)

	fields := logrus.Fields{"status": status, "code": errorCode}
	if len(devErrs) > 0 && devErrs[0] != nil {
		fields["error"] = devErrs[0].Error()
	}
	entry := Logger.WithFields(fields)
	if status >= http.StatusInternalServerError {
		entry.Error(publicMessage)
	} else {
		entry.Info(publicMessage)
	}
}

// RespondWithJSON for successful cases
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
