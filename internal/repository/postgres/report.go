package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/repository"
)

type conditionReportRepository struct {
	db *sql.DB
}

func NewConditionReportRepository(db *sql.DB) repository.ConditionReportRepository {
	return &conditionReportRepository{db: db}
}

// Create writes the one and only row a (reservation, phase, role) tuple will
// ever have. The unique index enforces immutability at the storage layer; no
// UPDATE or DELETE statement exists anywhere for this table.
func (r *conditionReportRepository) Create(ctx context.Context, report *domain.ConditionReport) error {
	required, err := json.Marshal(report.RequiredPhotos)
	if err != nil {
		return fmt.Errorf("marshal required photos: %w", err)
	}
	var details []byte
	if len(report.DetailPhotos) > 0 {
		details, err = json.Marshal(report.DetailPhotos)
		if err != nil {
			return fmt.Errorf("marshal detail photos: %w", err)
		}
	}
	var videoRef interface{}
	if report.VideoRef != "" {
		videoRef = report.VideoRef
	}
	if report.CompletedOn.IsZero() {
		report.CompletedOn = time.Now().UTC()
	}

	query := `INSERT INTO condition_reports (reservation_id, phase, role, required_photos, detail_photos, video_ref, submitted_by, completed_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = r.db.QueryRowContext(ctx, query,
		report.ReservationID, report.Phase, report.Role, required, details, videoRef,
		report.SubmittedBy, report.CompletedOn).Scan(&report.ID)
	if isUniqueViolation(err, "") {
		return domain.ErrReportExists
	}
	if err != nil {
		return fmt.Errorf("insert condition report: %w", err)
	}
	return nil
}

func (r *conditionReportRepository) Get(ctx context.Context, reservationID int32, phase domain.ReportPhase, role domain.ActorRole) (*domain.ConditionReport, error) {
	report := &domain.ConditionReport{}
	var required, details []byte
	var videoRef sql.NullString
	query := `SELECT id, reservation_id, phase, role, required_photos, detail_photos, video_ref, submitted_by, completed_on
	          FROM condition_reports WHERE reservation_id = $1 AND phase = $2 AND role = $3`
	err := r.db.QueryRowContext(ctx, query, reservationID, phase, role).Scan(
		&report.ID, &report.ReservationID, &report.Phase, &report.Role,
		&required, &details, &videoRef, &report.SubmittedBy, &report.CompletedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "condition report", ID: reservationID}
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(required, &report.RequiredPhotos); err != nil {
		return nil, err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &report.DetailPhotos); err != nil {
			return nil, err
		}
	}
	report.VideoRef = videoRef.String
	return report, nil
}

func (r *conditionReportRepository) CountByPhase(ctx context.Context, reservationID int32, phase domain.ReportPhase) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM condition_reports WHERE reservation_id = $1 AND phase = $2`,
		reservationID, phase).Scan(&count)
	return count, err
}
