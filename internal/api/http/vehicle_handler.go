package http

import (
	"net/http"

	"carshare-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc  service.VehicleService
	calendarSvc service.CalendarService
}

func NewVehicleHandler(vehicleSvc service.VehicleService, calendarSvc service.CalendarService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc, calendarSvc: calendarSvc}
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeError(w, http.StatusBadRequest, "validation_error", "city query parameter is required")
		return
	}
	vehicles, total, err := h.vehicleSvc.ListVehicles(r.Context(), city, queryInt(r, "page", 1), queryInt(r, "page_size", 20))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles":    vehicles,
		"total_count": total,
	})
}

// Calendar serves the blocked-date ranges the booking UI greys out. It is a
// public projection; no auth required.
func (h *VehicleHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ranges, err := h.calendarSvc.ListBlockedRanges(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"blocked_ranges": ranges})
}
