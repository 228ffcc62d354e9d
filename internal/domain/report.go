package domain

import "time"

// ReportPhase is one of the two points requiring photographic evidence.
type ReportPhase string

const (
	PhaseCheckin  ReportPhase = "CHECKIN"
	PhaseCheckout ReportPhase = "CHECKOUT"
)

// RequiredStatus returns the reservation status a phase's submissions demand.
func (p ReportPhase) RequiredStatus() (ReservationStatus, bool) {
	switch p {
	case PhaseCheckin:
		return ReservationStatusPickupPending, true
	case PhaseCheckout:
		return ReservationStatusDropoffPending, true
	}
	return "", false
}

// RequiredPhotoSlots is the fixed, exhaustive set of mandatory shots. A
// submission missing any slot fails validation before any write.
var RequiredPhotoSlots = []string{"front", "back", "interior", "dashboard"}

// MaxDetailPhotos caps the optional close-up shots per report.
const MaxDetailPhotos = 6

// DetailPhoto is an optional close-up with a short note.
type DetailPhoto struct {
	FileRef string `json:"file_ref"`
	Note    string `json:"note,omitempty"`
}

// ConditionReport is one party's evidence bundle for one phase. Photo and
// video references are opaque storage tokens; the engine never reads file
// bytes. Reports are immutable: there is no update or delete path, and a
// (reservation, phase, role) tuple holds at most one report. Owner and renter
// each file their own so disputes have two independent records.
type ConditionReport struct {
	ID             int32             `json:"id"`
	ReservationID  int32             `json:"reservation_id"`
	Phase          ReportPhase       `json:"phase"`
	Role           ActorRole         `json:"role"`
	RequiredPhotos map[string]string `json:"required_photos"`
	DetailPhotos   []DetailPhoto     `json:"detail_photos,omitempty"`
	VideoRef       string            `json:"video_ref,omitempty"`
	SubmittedBy    int32             `json:"submitted_by"`
	CompletedOn    time.Time         `json:"completed_on"`
}

// ReportEligibility is the precondition check result for a prospective
// submission, with the mismatch detail clients need for messaging.
type ReportEligibility struct {
	CanSubmit        bool              `json:"can_submit"`
	AlreadySubmitted bool              `json:"already_submitted"`
	Role             ActorRole         `json:"role"`
	ExpectedStatus   ReservationStatus `json:"expected_status"`
	CurrentStatus    ReservationStatus `json:"current_status"`
}

// ValidateSubmission checks the required slots and detail-photo cap.
func ValidateSubmission(required map[string]string, details []DetailPhoto) error {
	for _, slot := range RequiredPhotoSlots {
		if required[slot] == "" {
			return &ValidationError{Field: "required_photos", Reason: "missing slot " + slot}
		}
	}
	for slot := range required {
		if !isRequiredSlot(slot) {
			return &ValidationError{Field: "required_photos", Reason: "unknown slot " + slot}
		}
	}
	if len(details) > MaxDetailPhotos {
		return &ValidationError{Field: "detail_photos", Reason: "at most 6 detail photos allowed"}
	}
	for _, d := range details {
		if d.FileRef == "" {
			return &ValidationError{Field: "detail_photos", Reason: "detail photo without file reference"}
		}
	}
	return nil
}

func isRequiredSlot(slot string) bool {
	for _, s := range RequiredPhotoSlots {
		if s == slot {
			return true
		}
	}
	return false
}
