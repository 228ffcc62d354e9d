package postgres

import (
	"context"
	"testing"
	"time"

	"carshare-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConditionReportRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewConditionReportRepository(db)
	ctx := context.Background()

	report := func() *domain.ConditionReport {
		return &domain.ConditionReport{
			ReservationID: 7,
			Phase:         domain.PhaseCheckin,
			Role:          domain.RoleRenter,
			RequiredPhotos: map[string]string{
				"front": "f.jpg", "back": "b.jpg", "interior": "i.jpg", "dashboard": "d.jpg",
			},
			SubmittedBy: 2,
		}
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO condition_reports").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		r := report()
		err := repo.Create(ctx, r)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), r.ID)
		assert.False(t, r.CompletedOn.IsZero())
	})

	t.Run("SecondSubmissionRejected", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO condition_reports").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_condition_reports_tuple"})

		err := repo.Create(ctx, report())
		assert.ErrorIs(t, err, domain.ErrReportExists)
	})
}

func TestConditionReportRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewConditionReportRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "reservation_id", "phase", "role", "required_photos", "detail_photos", "video_ref", "submitted_by", "completed_on"}).
			AddRow(3, 7, "CHECKIN", "RENTER",
				[]byte(`{"front":"f.jpg","back":"b.jpg","interior":"i.jpg","dashboard":"d.jpg"}`),
				[]byte(`[{"file_ref":"scratch.jpg","note":"door scratch"}]`),
				"walkaround.mp4", 2, time.Now().UTC())

		mock.ExpectQuery("SELECT (.+) FROM condition_reports").
			WithArgs(int32(7), domain.PhaseCheckin, domain.RoleRenter).
			WillReturnRows(rows)

		r, err := repo.Get(ctx, 7, domain.PhaseCheckin, domain.RoleRenter)
		assert.NoError(t, err)
		assert.Equal(t, "f.jpg", r.RequiredPhotos["front"])
		assert.Len(t, r.DetailPhotos, 1)
		assert.Equal(t, "door scratch", r.DetailPhotos[0].Note)
		assert.Equal(t, "walkaround.mp4", r.VideoRef)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM condition_reports").
			WithArgs(int32(7), domain.PhaseCheckout, domain.RoleOwner).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.Get(ctx, 7, domain.PhaseCheckout, domain.RoleOwner)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestConditionReportRepository_CountByPhase(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewConditionReportRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count").
		WithArgs(int32(7), domain.PhaseCheckin).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByPhase(ctx, 7, domain.PhaseCheckin)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), count)
}
