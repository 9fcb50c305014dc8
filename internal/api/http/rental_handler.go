package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"assetrent-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	AssetID  uint64 `json:"asset_id"`
	Duration uint64 `json:"duration"`
	Price    uint64 `json:"price"`
}

func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		return
	}

	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "invalid request body"})
		return
	}

	id, err := h.rentalSvc.CreateRental(r.Context(), caller, req.AssetID, req.Duration, req.Price)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uint64{"rental_id": id})
}

func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	caller, rentalID, ok := h.callerAndID(w, r)
	if !ok {
		return
	}
	if err := h.rentalSvc.Rent(r.Context(), caller, rentalID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type extendRequest struct {
	AdditionalUnits uint64 `json:"additional_units"`
}

func (h *RentalHandler) Extend(w http.ResponseWriter, r *http.Request) {
	caller, rentalID, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	var req extendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "invalid request body"})
		return
	}

	if err := h.rentalSvc.Extend(r.Context(), caller, rentalID, req.AdditionalUnits); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *RentalHandler) EndRental(w http.ResponseWriter, r *http.Request) {
	caller, rentalID, ok := h.callerAndID(w, r)
	if !ok {
		return
	}
	if err := h.rentalSvc.EndRental(r.Context(), caller, rentalID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *RentalHandler) CancelRental(w http.ResponseWriter, r *http.Request) {
	caller, rentalID, ok := h.callerAndID(w, r)
	if !ok {
		return
	}
	if err := h.rentalSvc.CancelRental(r.Context(), caller, rentalID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type disputeRequest struct {
	Reason string `json:"reason"`
}

func (h *RentalHandler) FileDispute(w http.ResponseWriter, r *http.Request) {
	caller, rentalID, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	var req disputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "invalid request body"})
		return
	}

	if err := h.rentalSvc.FileDispute(r.Context(), caller, rentalID, req.Reason); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type rateRequest struct {
	AsRenter bool   `json:"as_renter"`
	Score    uint8  `json:"score"`
	Review   string `json:"review"`
}

func (h *RentalHandler) Rate(w http.ResponseWriter, r *http.Request) {
	caller, rentalID, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "invalid request body"})
		return
	}

	if err := h.rentalSvc.Rate(r.Context(), caller, rentalID, req.AsRenter, req.Score, req.Review); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *RentalHandler) CollectFee(w http.ResponseWriter, r *http.Request) {
	caller, rentalID, ok := h.callerAndID(w, r)
	if !ok {
		return
	}
	fee, err := h.rentalSvc.CollectMarketplaceFee(r.Context(), caller, rentalID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]uint64{"fee": fee})
}

func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rt, err := h.rentalSvc.GetRental(r.Context(), rentalID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rt)
}

func (h *RentalHandler) GetAssetRental(w http.ResponseWriter, r *http.Request) {
	assetID, ok := pathID(w, r, "assetID")
	if !ok {
		return
	}
	id, err := h.rentalSvc.GetAssetRental(r.Context(), assetID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]uint64{"rental_id": id})
}

func (h *RentalHandler) GetDispute(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	d, err := h.rentalSvc.GetDispute(r.Context(), rentalID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (h *RentalHandler) ListRatings(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ratings, err := h.rentalSvc.ListRatings(r.Context(), rentalID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ratings)
}

func (h *RentalHandler) callerAndID(w http.ResponseWriter, r *http.Request) (string, uint64, bool) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		return "", 0, false
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return "", 0, false
	}
	return caller, id, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "invalid id"})
		return 0, false
	}
	return id, true
}
