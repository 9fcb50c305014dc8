package http

import (
	"encoding/json"
	"net/http"

	"assetrent-backend/internal/payment"
)

// AccountHandler exposes the payment collaborator's balance operations for
// operability; the ledger itself never reads balances directly.
type AccountHandler struct {
	payments payment.Service
}

func NewAccountHandler(payments payment.Service) *AccountHandler {
	return &AccountHandler{payments: payments}
}

func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		return
	}
	balance, err := h.payments.Balance(r.Context(), caller)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]uint64{"balance": balance})
}

type depositRequest struct {
	Amount uint64 `json:"amount"`
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "invalid request body"})
		return
	}

	if err := h.payments.Deposit(r.Context(), caller, req.Amount); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
