package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"assetrent-backend/internal/domain"
	"assetrent-backend/internal/logger"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps the ledger's failure kinds onto HTTP statuses. Unknown
// errors are not leaked to the client.
func respondError(w http.ResponseWriter, err error) {
	var status int
	var code string
	switch {
	case errors.Is(err, domain.ErrRentalNotFound):
		status, code = http.StatusNotFound, "RENTAL_NOT_FOUND"
	case errors.Is(err, domain.ErrDisputeNotFound):
		status, code = http.StatusNotFound, "DISPUTE_NOT_FOUND"
	case errors.Is(err, domain.ErrTokenNotFound):
		status, code = http.StatusNotFound, "TOKEN_NOT_FOUND"
	case errors.Is(err, domain.ErrNotAuthorized):
		status, code = http.StatusForbidden, "NOT_AUTHORIZED"
	case errors.Is(err, domain.ErrNotTokenOwner):
		status, code = http.StatusForbidden, "NOT_TOKEN_OWNER"
	case errors.Is(err, domain.ErrCannotExtend):
		status, code = http.StatusForbidden, "CANNOT_EXTEND"
	case errors.Is(err, domain.ErrAlreadyRented):
		status, code = http.StatusConflict, "ALREADY_RENTED"
	case errors.Is(err, domain.ErrNotRented):
		status, code = http.StatusConflict, "NOT_RENTED"
	case errors.Is(err, domain.ErrNotYetExpired):
		status, code = http.StatusConflict, "NOT_YET_EXPIRED"
	case errors.Is(err, domain.ErrTokenExists):
		status, code = http.StatusConflict, "TOKEN_EXISTS"
	case errors.Is(err, domain.ErrInvalidExtension):
		status, code = http.StatusBadRequest, "INVALID_EXTENSION"
	case errors.Is(err, domain.ErrInvalidScore):
		status, code = http.StatusBadRequest, "INVALID_SCORE"
	case errors.Is(err, domain.ErrInvalidReason):
		status, code = http.StatusBadRequest, "INVALID_REASON"
	case errors.Is(err, domain.ErrNumericOverflow):
		status, code = http.StatusBadRequest, "NUMERIC_OVERFLOW"
	case errors.Is(err, domain.ErrInsufficientFunds):
		status, code = http.StatusPaymentRequired, "INSUFFICIENT_FUNDS"
	default:
		logger.Error("Unhandled error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Code: "INTERNAL", Message: "internal server error"})
		return
	}
	respondJSON(w, status, errorResponse{Code: code, Message: err.Error()})
}
