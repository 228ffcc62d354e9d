package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ConditionReportService
}

func NewReportHandler(reportSvc service.ConditionReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	phase, ok := pathPhase(w, r)
	if !ok {
		return
	}
	elig, err := h.reportSvc.Eligibility(r.Context(), callerID(r), id, phase)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, elig)
}

func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	phase, ok := pathPhase(w, r)
	if !ok {
		return
	}
	var submission service.ReportSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "malformed JSON body")
		return
	}
	report, err := h.reportSvc.Submit(r.Context(), callerID(r), id, phase, submission)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	phase, ok := pathPhase(w, r)
	if !ok {
		return
	}
	role := domain.ActorRole(strings.ToUpper(r.URL.Query().Get("role")))
	if role != domain.RoleOwner && role != domain.RoleRenter {
		writeError(w, http.StatusBadRequest, "validation_error", "role must be owner or renter")
		return
	}
	report, err := h.reportSvc.Get(r.Context(), callerID(r), id, phase, role)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func pathPhase(w http.ResponseWriter, r *http.Request) (domain.ReportPhase, bool) {
	switch strings.ToLower(mux.Vars(r)["phase"]) {
	case "checkin":
		return domain.PhaseCheckin, true
	case "checkout":
		return domain.PhaseCheckout, true
	}
	writeError(w, http.StatusBadRequest, "validation_error", "phase must be checkin or checkout")
	return "", false
}
