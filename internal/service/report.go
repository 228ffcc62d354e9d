package service

import (
	"context"
	"errors"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/logger"
	"carshare-backend/internal/repository"
)

type conditionReportService struct {
	reportRepo      repository.ConditionReportRepository
	reservationRepo repository.ReservationRepository
	reservationSvc  ReservationService
}

func NewConditionReportService(
	reportRepo repository.ConditionReportRepository,
	reservationRepo repository.ReservationRepository,
	reservationSvc ReservationService,
) ConditionReportService {
	return &conditionReportService{
		reportRepo:      reportRepo,
		reservationRepo: reservationRepo,
		reservationSvc:  reservationSvc,
	}
}

func (s *conditionReportService) Eligibility(ctx context.Context, callerID, reservationID int32, phase domain.ReportPhase) (*domain.ReportEligibility, error) {
	expected, ok := phase.RequiredStatus()
	if !ok {
		return nil, &domain.ValidationError{Field: "phase", Reason: "must be CHECKIN or CHECKOUT"}
	}

	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	role, isParty := rsv.RoleOf(callerID)
	if !isParty {
		return nil, domain.ErrForbidden
	}

	elig := &domain.ReportEligibility{
		Role:           role,
		ExpectedStatus: expected,
		CurrentStatus:  rsv.Status,
	}
	if _, err := s.reportRepo.Get(ctx, reservationID, phase, role); err == nil {
		elig.AlreadySubmitted = true
		return elig, nil
	} else {
		var notFound *domain.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	elig.CanSubmit = rsv.Status == expected
	return elig, nil
}

func (s *conditionReportService) Submit(ctx context.Context, callerID, reservationID int32, phase domain.ReportPhase, submission ReportSubmission) (*domain.ConditionReport, error) {
	expected, ok := phase.RequiredStatus()
	if !ok {
		return nil, &domain.ValidationError{Field: "phase", Reason: "must be CHECKIN or CHECKOUT"}
	}
	// All validation happens before any write.
	if err := domain.ValidateSubmission(submission.RequiredPhotos, submission.DetailPhotos); err != nil {
		return nil, err
	}

	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	role, isParty := rsv.RoleOf(callerID)
	if !isParty {
		return nil, domain.ErrForbidden
	}
	if rsv.Status != expected {
		op := "checkin report"
		if phase == domain.PhaseCheckout {
			op = "checkout report"
		}
		return nil, &domain.InvalidTransitionError{Op: op, Expected: expected, Actual: rsv.Status}
	}

	report := &domain.ConditionReport{
		ReservationID:  reservationID,
		Phase:          phase,
		Role:           role,
		RequiredPhotos: submission.RequiredPhotos,
		DetailPhotos:   submission.DetailPhotos,
		VideoRef:       submission.VideoRef,
		SubmittedBy:    callerID,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	s.maybeAdvance(ctx, rsv, phase, callerID)
	return report, nil
}

// maybeAdvance moves the reservation forward once both parties have filed
// their reports for the phase. Single-sided submissions never advance: the
// two-sided acknowledgment is what makes the evidence usable in a dispute.
// When both parties submit near-simultaneously each side sees count == 2 and
// races the transition; the version check lets exactly one win and the loser's
// Conflict or InvalidTransition only means the advance already happened.
func (s *conditionReportService) maybeAdvance(ctx context.Context, rsv *domain.Reservation, phase domain.ReportPhase, actorID int32) {
	count, err := s.reportRepo.CountByPhase(ctx, rsv.ID, phase)
	if err != nil {
		logger.Error("Failed to count condition reports", "reservation_id", rsv.ID, "phase", phase, "error", err)
		return
	}
	if count < 2 {
		return
	}

	if phase == domain.PhaseCheckin {
		err = s.reservationSvc.Activate(ctx, rsv.ID, actorID)
	} else {
		err = s.reservationSvc.Complete(ctx, rsv.ID, actorID)
	}
	if err != nil {
		var invalid *domain.InvalidTransitionError
		if errors.Is(err, domain.ErrConflict) || errors.As(err, &invalid) {
			return
		}
		logger.Error("Failed to advance reservation after both reports", "reservation_id", rsv.ID, "phase", phase, "error", err)
	}
}

func (s *conditionReportService) Get(ctx context.Context, callerID, reservationID int32, phase domain.ReportPhase, role domain.ActorRole) (*domain.ConditionReport, error) {
	if _, ok := phase.RequiredStatus(); !ok {
		return nil, &domain.ValidationError{Field: "phase", Reason: "must be CHECKIN or CHECKOUT"}
	}
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if _, isParty := rsv.RoleOf(callerID); !isParty {
		return nil, domain.ErrForbidden
	}
	return s.reportRepo.Get(ctx, reservationID, phase, role)
}
