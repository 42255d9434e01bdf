package repositories

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"yotei.link/configs"
	"yotei.link/configs/configslog"
	"yotei.link/models"
	"yotei.link/pkg/queryparams"
)

// IScheduleRepository is the data access surface for schedules.
type IScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error)
	FindAllByCreatorPaginated(ctx context.Context, creatorID uint, params queryparams.ListParams) ([]models.Schedule, int64, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, scheduleID string) error
}

// ScheduleRepository implements IScheduleRepository on GORM.
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository returns a repository bound to the shared DB handle.
func NewScheduleRepository() IScheduleRepository {
	return &ScheduleRepository{db: configs.GetDB()}
}

// NewScheduleRepositoryTx returns a repository bound to a transaction.
func NewScheduleRepositoryTx(tx *gorm.DB) IScheduleRepository {
	return &ScheduleRepository{db: tx}
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	if err := r.db.WithContext(ctx).Create(schedule).Error; err != nil {
		configslog.Log.Error("Failed to create schedule",
			zap.String("scheduleID", schedule.ScheduleID), zap.Error(err))
		return err
	}
	return nil
}

// FindByID loads a schedule with its creator preloaded for display.
func (r *ScheduleRepository) FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("schedule_id = ?", scheduleID).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FindByID schedule error",
			zap.String("scheduleID", scheduleID), zap.Error(err))
		return nil, err
	}
	return &schedule, nil
}

// scheduleOrderClause resolves the requested sort into an ORDER BY clause.
// Only whitelisted columns are accepted; anything else falls back to
// updated_at so the params can never smuggle SQL into the query.
func scheduleOrderClause(params queryparams.ListParams) string {
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	allowedSortColumns := map[string]string{
		"updated_at":    "updated_at",
		"created_at":    "created_at",
		"schedule_name": "schedule_name",
	}
	column, ok := allowedSortColumns[params.SortBy]
	if !ok {
		if params.SortBy != "" {
			configslog.SLog.Warnw("Unknown schedule sort column requested, using default",
				"requestedSortBy", params.SortBy)
		}
		column = "updated_at"
	}
	return column + " " + orderBy
}

// FindAllByCreatorPaginated lists a user's own schedules for the home
// page, sorted per the validated list params (updated_at DESC by default).
func (r *ScheduleRepository) FindAllByCreatorPaginated(ctx context.Context, creatorID uint, params queryparams.ListParams) ([]models.Schedule, int64, error) {
	var (
		schedules  []models.Schedule
		totalCount int64
	)

	query := r.db.WithContext(ctx).Model(&models.Schedule{}).Where("created_by = ?", creatorID)
	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("Count schedules error", zap.Uint("creatorID", creatorID), zap.Error(err))
		return nil, 0, err
	}

	err := query.
		Order(scheduleOrderClause(params)).
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&schedules).Error
	if err != nil {
		configslog.Log.Error("List schedules error", zap.Uint("creatorID", creatorID), zap.Error(err))
		return nil, 0, err
	}
	return schedules, totalCount, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	if err := r.db.WithContext(ctx).Save(schedule).Error; err != nil {
		configslog.Log.Error("Failed to update schedule",
			zap.String("scheduleID", schedule.ScheduleID), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes the schedule row. Deleting an absent row is a no-op so a
// retried cascade stays safe.
func (r *ScheduleRepository) Delete(ctx context.Context, scheduleID string) error {
	result := r.db.WithContext(ctx).Where("schedule_id = ?", scheduleID).Delete(&models.Schedule{})
	if result.Error != nil {
		configslog.Log.Error("Failed to delete schedule",
			zap.String("scheduleID", scheduleID), zap.Error(result.Error))
		return result.Error
	}
	return nil
}

var _ IScheduleRepository = (*ScheduleRepository)(nil)
