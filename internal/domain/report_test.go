package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allRequiredPhotos() map[string]string {
	return map[string]string{
		"front":     "photos/front.jpg",
		"back":      "photos/back.jpg",
		"interior":  "photos/interior.jpg",
		"dashboard": "photos/dashboard.jpg",
	}
}

func TestReportPhase_RequiredStatus(t *testing.T) {
	status, ok := PhaseCheckin.RequiredStatus()
	assert.True(t, ok)
	assert.Equal(t, ReservationStatusPickupPending, status)

	status, ok = PhaseCheckout.RequiredStatus()
	assert.True(t, ok)
	assert.Equal(t, ReservationStatusDropoffPending, status)

	_, ok = ReportPhase("INSPECTION").RequiredStatus()
	assert.False(t, ok)
}

func TestValidateSubmission(t *testing.T) {
	t.Run("AllSlotsPresent", func(t *testing.T) {
		assert.NoError(t, ValidateSubmission(allRequiredPhotos(), nil))
	})

	t.Run("MissingSlot", func(t *testing.T) {
		photos := allRequiredPhotos()
		delete(photos, "dashboard")
		err := ValidateSubmission(photos, nil)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "required_photos", verr.Field)
		assert.Contains(t, verr.Reason, "dashboard")
	})

	t.Run("EmptySlotValue", func(t *testing.T) {
		photos := allRequiredPhotos()
		photos["front"] = ""
		err := ValidateSubmission(photos, nil)
		assert.Error(t, err)
	})

	t.Run("UnknownSlot", func(t *testing.T) {
		photos := allRequiredPhotos()
		photos["roof"] = "photos/roof.jpg"
		err := ValidateSubmission(photos, nil)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Reason, "roof")
	})

	t.Run("DetailPhotosWithinCap", func(t *testing.T) {
		details := make([]DetailPhoto, MaxDetailPhotos)
		for i := range details {
			details[i] = DetailPhoto{FileRef: "photos/detail.jpg", Note: "scratch"}
		}
		assert.NoError(t, ValidateSubmission(allRequiredPhotos(), details))
	})

	t.Run("TooManyDetailPhotos", func(t *testing.T) {
		details := make([]DetailPhoto, MaxDetailPhotos+1)
		for i := range details {
			details[i] = DetailPhoto{FileRef: "photos/detail.jpg"}
		}
		err := ValidateSubmission(allRequiredPhotos(), details)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "detail_photos", verr.Field)
	})

	t.Run("DetailPhotoWithoutFileRef", func(t *testing.T) {
		err := ValidateSubmission(allRequiredPhotos(), []DetailPhoto{{Note: "dent"}})
		assert.Error(t, err)
	})
}
