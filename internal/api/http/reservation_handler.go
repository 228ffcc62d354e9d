package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/service"
)

type ReservationHandler struct {
	reservationSvc service.ReservationService
}

func NewReservationHandler(reservationSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc}
}

type createReservationRequest struct {
	VehicleID int32  `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "malformed JSON body")
		return
	}
	start, err := domain.ParseDay(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := domain.ParseDay(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "end_date must be YYYY-MM-DD")
		return
	}

	rsv, err := h.reservationSvc.Create(r.Context(), callerID(r), req.VehicleID, start, end, idempotencyKey(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rsv)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rsv, err := h.reservationSvc.Get(r.Context(), callerID(r), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rsv)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	role := domain.RoleRenter
	if r.URL.Query().Get("role") == "owner" {
		role = domain.RoleOwner
	}
	status := r.URL.Query().Get("status")
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", 20)

	reservations, total, err := h.reservationSvc.ListByRole(r.Context(), callerID(r), role, status, page, pageSize)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reservations": reservations,
		"total_count":  total,
	})
}

func (h *ReservationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.ownerAction(w, r, h.reservationSvc.Accept)
}

func (h *ReservationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.ownerAction(w, r, h.reservationSvc.Reject)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.ownerAction(w, r, h.reservationSvc.Cancel)
}

func (h *ReservationHandler) InitiateReturn(w http.ResponseWriter, r *http.Request) {
	h.ownerAction(w, r, h.reservationSvc.InitiateReturn)
}

func (h *ReservationHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	events, err := h.reservationSvc.ListEvents(r.Context(), callerID(r), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

type ownerActionFunc func(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error)

func (h *ReservationHandler) ownerAction(w http.ResponseWriter, r *http.Request, action ownerActionFunc) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rsv, err := action(r.Context(), callerID(r), id, idempotencyKey(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rsv)
}

// idempotencyKey reads the caller-supplied retry token forwarded to the event
// log; an empty header simply means the request is not replay-protected.
func idempotencyKey(r *http.Request) string {
	return r.Header.Get("Idempotency-Key")
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "validation_error", name+" must be a positive integer")
		return 0, false
	}
	return int32(id), true
}

func queryInt(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}
