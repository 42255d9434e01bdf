package repositories

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"yotei.link/configs"
	"yotei.link/configs/configslog"
	"yotei.link/models"
)

// ICandidateRepository is the data access surface for candidate slots.
type ICandidateRepository interface {
	BulkCreate(ctx context.Context, candidates []models.Candidate) error
	FindByScheduleID(ctx context.Context, scheduleID string) ([]models.Candidate, error)
	Delete(ctx context.Context, candidateID uint) error
}

// CandidateRepository implements ICandidateRepository on GORM.
type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository() ICandidateRepository {
	return &CandidateRepository{db: configs.GetDB()}
}

func NewCandidateRepositoryTx(tx *gorm.DB) ICandidateRepository {
	return &CandidateRepository{db: tx}
}

// BulkCreate inserts all candidates in one statement, preserving slice
// order so CandidateID ordering matches the organizer's input order.
func (r *CandidateRepository) BulkCreate(ctx context.Context, candidates []models.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&candidates).Error; err != nil {
		configslog.Log.Error("Failed to bulk create candidates",
			zap.String("scheduleID", candidates[0].ScheduleID),
			zap.Int("count", len(candidates)), zap.Error(err))
		return err
	}
	return nil
}

// FindByScheduleID returns the schedule's candidates ordered by
// CandidateID ascending, the contract every caller relies on.
func (r *CandidateRepository) FindByScheduleID(ctx context.Context, scheduleID string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("candidate_id ASC").
		Find(&candidates).Error
	if err != nil {
		configslog.Log.Error("FindByScheduleID candidates error",
			zap.String("scheduleID", scheduleID), zap.Error(err))
		return nil, err
	}
	return candidates, nil
}

// Delete removes one candidate row; absent rows are a no-op.
func (r *CandidateRepository) Delete(ctx context.Context, candidateID uint) error {
	result := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).Delete(&models.Candidate{})
	if result.Error != nil {
		configslog.Log.Error("Failed to delete candidate",
			zap.Uint("candidateID", candidateID), zap.Error(result.Error))
		return result.Error
	}
	return nil
}

var _ ICandidateRepository = (*CandidateRepository)(nil)
