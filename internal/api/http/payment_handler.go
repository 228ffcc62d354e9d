package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"carshare-backend/internal/logger"
	"carshare-backend/internal/service"
)

// PaymentWebhookHandler is the payment-provider boundary. The provider calls
// it after charge capture or failure; the engine never initiates charges.
type PaymentWebhookHandler struct {
	reservationSvc service.ReservationService
	secret         []byte
}

func NewPaymentWebhookHandler(reservationSvc service.ReservationService, secret string) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{reservationSvc: reservationSvc, secret: []byte(secret)}
}

type paymentWebhookPayload struct {
	Type string `json:"type"`
	Data struct {
		ReservationID   int32  `json:"reservation_id"`
		PaymentIntentID string `json:"payment_intent_id"`
		Reason          string `json:"reason,omitempty"`
	} `json:"data"`
}

func (h *PaymentWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "unreadable body")
		return
	}
	if !h.verifySignature(body, r.Header.Get("X-Webhook-Signature")) {
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid webhook signature")
		return
	}

	var payload paymentWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "malformed JSON body")
		return
	}

	switch payload.Type {
	case "payment.captured":
		_, err = h.reservationSvc.MarkPaid(r.Context(), payload.Data.ReservationID, payload.Data.PaymentIntentID)
	case "payment.failed":
		_, err = h.reservationSvc.MarkPaymentFailed(r.Context(), payload.Data.ReservationID, payload.Data.Reason)
	default:
		logger.Warn("Ignoring unknown payment webhook type", "type", payload.Type)
		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *PaymentWebhookHandler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
