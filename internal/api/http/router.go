package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carshare-backend/internal/security"
)

// NewRouter wires all handlers under /v1. The payment webhook and the booking
// calendar are the only unauthenticated routes: the webhook authenticates via
// HMAC signature, the calendar is a public read projection.
func NewRouter(
	tokens security.TokenManager,
	reservations *ReservationHandler,
	vehicles *VehicleHandler,
	reports *ReportHandler,
	notifications *NotificationHandler,
	paymentWebhook *PaymentWebhookHandler,
) *mux.Router {
	r := mux.NewRouter()
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)
	v1.HandleFunc("/vehicles/{id:[0-9]+}/calendar", vehicles.Calendar).Methods(http.MethodGet)

	authed := v1.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/vehicles", vehicles.List).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", vehicles.Get).Methods(http.MethodGet)

	authed.HandleFunc("/reservations", reservations.Create).Methods(http.MethodPost)
	authed.HandleFunc("/reservations", reservations.List).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/{id:[0-9]+}", reservations.Get).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/{id:[0-9]+}/accept", reservations.Accept).Methods(http.MethodPost)
	authed.HandleFunc("/reservations/{id:[0-9]+}/reject", reservations.Reject).Methods(http.MethodPost)
	authed.HandleFunc("/reservations/{id:[0-9]+}/cancel", reservations.Cancel).Methods(http.MethodPost)
	authed.HandleFunc("/reservations/{id:[0-9]+}/return", reservations.InitiateReturn).Methods(http.MethodPost)
	authed.HandleFunc("/reservations/{id:[0-9]+}/events", reservations.ListEvents).Methods(http.MethodGet)

	authed.HandleFunc("/reservations/{id:[0-9]+}/reports/{phase}/eligibility", reports.Eligibility).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/{id:[0-9]+}/reports/{phase}", reports.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/reservations/{id:[0-9]+}/reports/{phase}", reports.Get).Methods(http.MethodGet)

	authed.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", notifications.MarkAsRead).Methods(http.MethodPost)

	return r
}
