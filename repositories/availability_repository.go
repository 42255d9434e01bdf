package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"yotei.link/configs"
	"yotei.link/configs/configslog"
	"yotei.link/models"
)

// IAvailabilityRepository is the data access surface for availability rows.
type IAvailabilityRepository interface {
	Upsert(ctx context.Context, availability *models.Availability) error
	FindByScheduleID(ctx context.Context, scheduleID string) ([]models.Availability, error)
	Delete(ctx context.Context, id uint) error
}

// AvailabilityRepository implements IAvailabilityRepository on GORM.
type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository() IAvailabilityRepository {
	return &AvailabilityRepository{db: configs.GetDB()}
}

// Upsert creates the (schedule, candidate, user) row or updates its code
// when it already exists. One logical row per slot and user.
func (r *AvailabilityRepository) Upsert(ctx context.Context, availability *models.Availability) error {
	if availability == nil || availability.ScheduleID == "" || availability.CandidateID == 0 || availability.UserID == 0 {
		return errors.New("invalid availability row (schedule, candidate and user are required)")
	}
	err := r.db.WithContext(ctx).
		Where(models.Availability{
			ScheduleID:  availability.ScheduleID,
			CandidateID: availability.CandidateID,
			UserID:      availability.UserID,
		}).
		Assign(map[string]interface{}{"availability": availability.Availability}).
		FirstOrCreate(availability).Error
	if err != nil {
		configslog.Log.Error("Upsert availability error",
			zap.String("scheduleID", availability.ScheduleID),
			zap.Uint("candidateID", availability.CandidateID),
			zap.Uint("userID", availability.UserID), zap.Error(err))
		return err
	}
	return nil
}

// FindByScheduleID returns every availability row for the schedule with the
// answering user preloaded, ordered by username then candidate for stable
// downstream iteration.
func (r *AvailabilityRepository) FindByScheduleID(ctx context.Context, scheduleID string) ([]models.Availability, error) {
	var availabilities []models.Availability
	err := r.db.WithContext(ctx).
		Joins("User").
		Where("availabilities.schedule_id = ?", scheduleID).
		Order("\"User\".username ASC, availabilities.candidate_id ASC").
		Find(&availabilities).Error
	if err != nil {
		configslog.Log.Error("FindByScheduleID availabilities error",
			zap.String("scheduleID", scheduleID), zap.Error(err))
		return nil, err
	}
	return availabilities, nil
}

// Delete removes one availability row; absent rows are a no-op.
func (r *AvailabilityRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Availability{}, id)
	if result.Error != nil {
		configslog.Log.Error("Failed to delete availability", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	return nil
}

var _ IAvailabilityRepository = (*AvailabilityRepository)(nil)
