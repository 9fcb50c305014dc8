package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"assetrent-backend/internal/security"
)

// NewRouter wires every ledger transition and lookup onto the HTTP surface.
// All routes require a bearer token identifying the caller.
func NewRouter(
	tm security.TokenManager,
	rentalHandler *RentalHandler,
	accountHandler *AccountHandler,
	notificationHandler *NotificationHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tm))

	// Rental lifecycle
	api.HandleFunc("/rentals", rentalHandler.CreateRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.GetRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}/rent", rentalHandler.Rent).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/extend", rentalHandler.Extend).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/end", rentalHandler.EndRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/cancel", rentalHandler.CancelRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/fee", rentalHandler.CollectFee).Methods(http.MethodPost)
	api.HandleFunc("/assets/{assetID:[0-9]+}/rental", rentalHandler.GetAssetRental).Methods(http.MethodGet)

	// Disputes and ratings
	api.HandleFunc("/rentals/{id:[0-9]+}/dispute", rentalHandler.FileDispute).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/dispute", rentalHandler.GetDispute).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}/ratings", rentalHandler.Rate).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/ratings", rentalHandler.ListRatings).Methods(http.MethodGet)

	// Accounts and notifications
	api.HandleFunc("/accounts/me/balance", accountHandler.GetBalance).Methods(http.MethodGet)
	api.HandleFunc("/accounts/me/deposit", accountHandler.Deposit).Methods(http.MethodPost)
	api.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	return r
}
