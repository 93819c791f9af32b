package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dcode-github/nestora/backend/dtos"
	"github.com/dcode-github/nestora/backend/identity"
	"github.com/dcode-github/nestora/backend/utils"
	"github.com/dcode-github/nestora/backend/wishlist"
)

// decodeAndValidate answers 400 itself and returns false when the body
// is unreadable or breaks a validation rule.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request payload", nil, err)
		return false
	}
	if details, err := dtos.Validate(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", details, err)
		return false
	}
	return true
}

func toAppError(err error) *utils.AppError {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return utils.NewAppError(http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password", err)
	case errors.Is(err, identity.ErrEmailExists):
		return utils.NewAppError(http.StatusConflict, utils.ErrCodeConflict, "Email already exists", err)
	case errors.Is(err, wishlist.ErrAuthRequired):
		return utils.NewAppError(http.StatusUnauthorized, utils.ErrCodeAuthRequired, "Please log in to use your wishlist", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return utils.NewAppError(http.StatusServiceUnavailable, utils.ErrCodeInternal, "Request cancelled", err)
	default:
		return utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "An unexpected error occurred", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	utils.HandleAppError(w, toAppError(err))
}

func respondAuthRequired(w http.ResponseWriter) {
	respondError(w, wishlist.ErrAuthRequired)
}
