package services

import (
	"context"
	"fmt"

	"yotei.link/configs/configslog"
	"yotei.link/models"
	"yotei.link/repositories"
)

// AvailabilityServiceError is the typed error family for availability
// submissions.
type AvailabilityServiceError string

func (e AvailabilityServiceError) Error() string { return string(e) }

const (
	ErrInvalidAvailability AvailabilityServiceError = "availability must be 0 (absent), 1 (maybe) or 2 (present)"
)

// IAvailabilityService is the invitee submission path for per-slot answers.
type IAvailabilityService interface {
	UpsertAvailability(ctx context.Context, scheduleID string, candidateID, userID uint, code int) error
}

// AvailabilityService implements IAvailabilityService.
type AvailabilityService struct {
	repo repositories.IAvailabilityRepository
}

func NewAvailabilityService() IAvailabilityService {
	return &AvailabilityService{repo: repositories.NewAvailabilityRepository()}
}

// UpsertAvailability stores the user's tri-state answer for one candidate
// slot, replacing any earlier answer for the same slot.
func (s *AvailabilityService) UpsertAvailability(ctx context.Context, scheduleID string, candidateID, userID uint, code int) error {
	if !models.ValidAvailability(code) {
		return fmt.Errorf("%w: got %d", ErrInvalidAvailability, code)
	}
	err := s.repo.Upsert(ctx, &models.Availability{
		ScheduleID:   scheduleID,
		CandidateID:  candidateID,
		UserID:       userID,
		Availability: code,
	})
	if err != nil {
		return err
	}
	configslog.SLog.Debugw("Availability stored",
		"scheduleID", scheduleID, "candidateID", candidateID, "userID", userID, "code", code)
	return nil
}

var _ IAvailabilityService = (*AvailabilityService)(nil)
