package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yotei.link/configs"
	"yotei.link/configs/configslog"
	"yotei.link/models"
	"yotei.link/pkg/queryparams"
	"yotei.link/repositories"
)

// ScheduleServiceError is the typed error family for schedule operations.
type ScheduleServiceError string

func (e ScheduleServiceError) Error() string { return string(e) }

const (
	// ErrScheduleNotFound covers both a missing schedule and a schedule
	// owned by someone else. The two are deliberately indistinguishable to
	// callers so the existence of other users' schedules never leaks.
	ErrScheduleNotFound ScheduleServiceError = "schedule not found or you are not allowed to touch it"

	ErrScheduleCreationFailed ScheduleServiceError = "schedule could not be created"
	ErrScheduleUpdateFailed   ScheduleServiceError = "schedule could not be updated"
	ErrInvalidMutation        ScheduleServiceError = "unsupported schedule mutation"
)

// ScheduleMutation is the tagged request variant for the owner-only
// mutation endpoint. The route layer decodes the edit/delete query flags
// exactly once into one of these; nothing below the boundary inspects
// flags again.
type ScheduleMutation interface{ isScheduleMutation() }

// EditRequest updates name/memo and appends newly submitted candidates.
type EditRequest struct {
	ScheduleName  string
	Memo          string
	CandidateText string
}

// DeleteRequest removes the schedule and everything hanging off it.
type DeleteRequest struct{}

func (EditRequest) isScheduleMutation()   {}
func (DeleteRequest) isScheduleMutation() {}

// IScheduleService is the invocation surface for organizers and viewers.
type IScheduleService interface {
	CreateSchedule(ctx context.Context, creatorID uint, name, memo, candidateText string) (*models.Schedule, error)
	GetScheduleForView(ctx context.Context, scheduleID string, viewer Viewer) (*ScheduleView, error)
	GetScheduleForEdit(ctx context.Context, scheduleID string, requesterID uint) (*models.Schedule, []models.Candidate, error)
	GetSchedulesForUser(ctx context.Context, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	MutateSchedule(ctx context.Context, scheduleID string, requesterID uint, mutation ScheduleMutation) error
	DeleteScheduleAggregate(ctx context.Context, scheduleID string) error
}

// ScheduleService implements IScheduleService.
type ScheduleService struct {
	repo             repositories.IScheduleRepository
	availabilityRepo repositories.IAvailabilityRepository
	commentRepo      repositories.ICommentRepository
	candidateRepo    repositories.ICandidateRepository
	aggregation      IAggregationService
	inTx             scheduleTxRunner
}

// scheduleTx bundles the write-side repositories bound to one transaction.
type scheduleTx struct {
	schedules  repositories.IScheduleRepository
	candidates ICandidateService
}

// scheduleTxRunner runs fn with every write inside a single transaction;
// if fn returns an error the whole batch rolls back.
type scheduleTxRunner func(ctx context.Context, fn func(scheduleTx) error) error

func gormScheduleTxRunner(db *gorm.DB) scheduleTxRunner {
	return func(ctx context.Context, fn func(scheduleTx) error) error {
		return db.Transaction(func(tx *gorm.DB) error {
			return fn(scheduleTx{
				schedules:  repositories.NewScheduleRepositoryTx(tx),
				candidates: NewCandidateServiceTx(tx),
			})
		})
	}
}

// NewScheduleService wires the service against the shared DB handle.
func NewScheduleService() IScheduleService {
	return &ScheduleService{
		repo:             repositories.NewScheduleRepository(),
		availabilityRepo: repositories.NewAvailabilityRepository(),
		commentRepo:      repositories.NewCommentRepository(),
		candidateRepo:    repositories.NewCandidateRepository(),
		aggregation:      NewAggregationService(),
		inTx:             gormScheduleTxRunner(configs.GetDB()),
	}
}

// IsOwner reports whether the schedule exists and was created by
// requesterID. A nil schedule is false, never an error; callers map false
// to the combined not-found/forbidden outcome. Both sides are uint here —
// string-encoded ids from sessions or paths are normalized at the boundary
// before this predicate runs.
func IsOwner(requesterID uint, schedule *models.Schedule) bool {
	return schedule != nil && schedule.CreatedBy == requesterID
}

// truncateRunes cuts s to at most max runes. Rune-based so multibyte
// names are never split mid-character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// normalizeScheduleName applies the length cap and the untitled
// placeholder for empty input.
func normalizeScheduleName(name string) string {
	name = truncateRunes(name, models.ScheduleNameMaxLen)
	if name == "" {
		return models.UntitledScheduleName
	}
	return name
}

// CreateSchedule stores a new schedule under a fresh uuid and provisions
// the candidates parsed from the organizer's multi-line input. Schedule
// and candidates land in one transaction; a failed candidate insert never
// strands a schedule row.
func (s *ScheduleService) CreateSchedule(ctx context.Context, creatorID uint, name, memo, candidateText string) (*models.Schedule, error) {
	if creatorID == 0 {
		return nil, fmt.Errorf("%w: missing creator", ErrScheduleCreationFailed)
	}

	schedule := &models.Schedule{
		ScheduleID:   uuid.NewString(),
		ScheduleName: normalizeScheduleName(name),
		Memo:         truncateRunes(memo, models.ScheduleMemoMaxLen),
		CreatedBy:    creatorID,
		UpdatedAt:    time.Now().UTC(),
	}
	names := ParseCandidateNames(candidateText)

	err := s.inTx(ctx, func(tx scheduleTx) error {
		if err := tx.schedules.Create(ctx, schedule); err != nil {
			return err
		}
		return tx.candidates.CreateCandidates(ctx, schedule.ScheduleID, names)
	})
	if err != nil {
		return nil, err
	}

	configslog.SLog.Infow("Schedule created",
		"scheduleID", schedule.ScheduleID, "creatorID", creatorID, "candidates", len(names))
	return schedule, nil
}

// GetScheduleForView loads the schedule and hands it to the aggregation
// engine. Absent schedules surface as ErrScheduleNotFound before any
// aggregation work happens.
func (s *ScheduleService) GetScheduleForView(ctx context.Context, scheduleID string, viewer Viewer) (*ScheduleView, error) {
	schedule, err := s.repo.FindByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return s.aggregation.BuildScheduleView(ctx, schedule, viewer)
}

// GetScheduleForEdit returns the schedule and its candidates for the edit
// form, owner only.
func (s *ScheduleService) GetScheduleForEdit(ctx context.Context, scheduleID string, requesterID uint) (*models.Schedule, []models.Candidate, error) {
	schedule, err := s.findOwned(ctx, scheduleID, requesterID)
	if err != nil {
		return nil, nil, err
	}
	candidates, err := s.candidateRepo.FindByScheduleID(ctx, scheduleID)
	if err != nil {
		return nil, nil, err
	}
	return schedule, candidates, nil
}

// GetSchedulesForUser lists the user's own schedules, most recently
// updated first.
func (s *ScheduleService) GetSchedulesForUser(ctx context.Context, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	schedules, totalCount, err := s.repo.FindAllByCreatorPaginated(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: schedules,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// MutateSchedule runs one owner-only mutation. The ownership guard fires
// before the variant is even looked at, so non-owners learn nothing about
// which mutations exist.
func (s *ScheduleService) MutateSchedule(ctx context.Context, scheduleID string, requesterID uint, mutation ScheduleMutation) error {
	schedule, err := s.findOwned(ctx, scheduleID, requesterID)
	if err != nil {
		return err
	}

	switch m := mutation.(type) {
	case EditRequest:
		return s.applyEdit(ctx, schedule, m)
	case DeleteRequest:
		return s.DeleteScheduleAggregate(ctx, schedule.ScheduleID)
	default:
		return ErrInvalidMutation
	}
}

func (s *ScheduleService) findOwned(ctx context.Context, scheduleID string, requesterID uint) (*models.Schedule, error) {
	schedule, err := s.repo.FindByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	if !IsOwner(requesterID, schedule) {
		return nil, ErrScheduleNotFound
	}
	return schedule, nil
}

func (s *ScheduleService) applyEdit(ctx context.Context, schedule *models.Schedule, edit EditRequest) error {
	schedule.ScheduleName = normalizeScheduleName(edit.ScheduleName)
	schedule.Memo = truncateRunes(edit.Memo, models.ScheduleMemoMaxLen)
	schedule.UpdatedAt = time.Now().UTC()

	// Candidates can only be appended, never renamed or removed here.
	names := ParseCandidateNames(edit.CandidateText)

	err := s.inTx(ctx, func(tx scheduleTx) error {
		if err := tx.schedules.Update(ctx, schedule); err != nil {
			return err
		}
		if len(names) == 0 {
			return nil
		}
		return tx.candidates.CreateCandidates(ctx, schedule.ScheduleID, names)
	})
	if err != nil {
		configslog.Log.Error("Schedule edit failed",
			zap.String("scheduleID", schedule.ScheduleID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrScheduleUpdateFailed, err)
	}

	configslog.SLog.Infow("Schedule updated",
		"scheduleID", schedule.ScheduleID, "appendedCandidates", len(names))
	return nil
}

var _ IScheduleService = (*ScheduleService)(nil)
