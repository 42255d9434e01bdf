package services

import (
	"context"

	"yotei.link/configs/configslog"
	"yotei.link/models"
	"yotei.link/repositories"
)

// ICommentService is the invitee submission path for free-text comments.
type ICommentService interface {
	UpsertComment(ctx context.Context, scheduleID string, userID uint, text string) error
}

// CommentService implements ICommentService.
type CommentService struct {
	repo repositories.ICommentRepository
}

func NewCommentService() ICommentService {
	return &CommentService{repo: repositories.NewCommentRepository()}
}

// UpsertComment stores the user's comment on the schedule. One comment per
// user; a new submission replaces the previous one.
func (s *CommentService) UpsertComment(ctx context.Context, scheduleID string, userID uint, text string) error {
	err := s.repo.Upsert(ctx, &models.Comment{
		ScheduleID: scheduleID,
		UserID:     userID,
		Comment:    text,
	})
	if err != nil {
		return err
	}
	configslog.SLog.Debugw("Comment stored", "scheduleID", scheduleID, "userID", userID)
	return nil
}

var _ ICommentService = (*CommentService)(nil)
