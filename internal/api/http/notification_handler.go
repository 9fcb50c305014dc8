package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"assetrent-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		return
	}

	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	notes, count, err := h.noteSvc.GetNotifications(r.Context(), caller, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"notifications": notes,
		"total_count":   count,
	})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "invalid id"})
		return
	}

	if err := h.noteSvc.MarkAsRead(r.Context(), caller, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func queryInt32(r *http.Request, name string, def int32) int32 {
	val := r.URL.Query().Get(name)
	if val == "" {
		return def
	}
	parsed, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return def
	}
	return int32(parsed)
}
