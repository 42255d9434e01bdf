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

// ICommentRepository is the data access surface for schedule comments.
type ICommentRepository interface {
	Upsert(ctx context.Context, comment *models.Comment) error
	FindByScheduleID(ctx context.Context, scheduleID string) ([]models.Comment, error)
	Delete(ctx context.Context, id uint) error
}

// CommentRepository implements ICommentRepository on GORM.
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository() ICommentRepository {
	return &CommentRepository{db: configs.GetDB()}
}

// Upsert stores the user's comment for the schedule, replacing any earlier
// one. Last write wins.
func (r *CommentRepository) Upsert(ctx context.Context, comment *models.Comment) error {
	if comment == nil || comment.ScheduleID == "" || comment.UserID == 0 {
		return errors.New("invalid comment row (schedule and user are required)")
	}
	err := r.db.WithContext(ctx).
		Where(models.Comment{
			ScheduleID: comment.ScheduleID,
			UserID:     comment.UserID,
		}).
		Assign(map[string]interface{}{"comment": comment.Comment}).
		FirstOrCreate(comment).Error
	if err != nil {
		configslog.Log.Error("Upsert comment error",
			zap.String("scheduleID", comment.ScheduleID),
			zap.Uint("userID", comment.UserID), zap.Error(err))
		return err
	}
	return nil
}

func (r *CommentRepository) FindByScheduleID(ctx context.Context, scheduleID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Find(&comments).Error
	if err != nil {
		configslog.Log.Error("FindByScheduleID comments error",
			zap.String("scheduleID", scheduleID), zap.Error(err))
		return nil, err
	}
	return comments, nil
}

// Delete removes one comment row; absent rows are a no-op.
func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		configslog.Log.Error("Failed to delete comment", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	return nil
}

var _ ICommentRepository = (*CommentRepository)(nil)
