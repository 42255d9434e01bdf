package services

import (
	"context"
	"sort"

	"yotei.link/models"
	"yotei.link/repositories"
)

// Viewer is the already-authenticated identity a view is built for.
type Viewer struct {
	UserID   uint
	Username string
}

// ViewUser is one row of the attendance table.
type ViewUser struct {
	UserID   uint
	Username string
	IsSelf   bool
}

// ScheduleView is the display-ready aggregate for one schedule: every
// user crossed with every candidate, no missing cells.
type ScheduleView struct {
	Schedule   *models.Schedule
	Candidates []models.Candidate
	// Users lists the viewer first (IsSelf), then every user who ever
	// answered, username ascending with UserID as tiebreak.
	Users []ViewUser
	// Availabilities maps userID -> candidateID -> code and is dense:
	// every (user, candidate) pair of this view has an entry, defaulting
	// to models.AvailabilityAbsent when nothing was stored.
	Availabilities map[uint]map[uint]int
	// Comments maps userID -> comment. No entry means no comment; an
	// empty string is never synthesized.
	Comments map[uint]string
}

// Lookup is a total function over the matrix: any (user, candidate) pair
// resolves to a code, falling back to the absent default for pairs outside
// the view. It never fails.
func (v *ScheduleView) Lookup(userID, candidateID uint) int {
	if row, ok := v.Availabilities[userID]; ok {
		if code, ok := row[candidateID]; ok {
			return code
		}
	}
	return models.AvailabilityAbsent
}

// IAggregationService turns sparse availability rows into a ScheduleView.
type IAggregationService interface {
	BuildScheduleView(ctx context.Context, schedule *models.Schedule, viewer Viewer) (*ScheduleView, error)
}

// AggregationService implements IAggregationService. Read-only; it assumes
// the caller has already established that the schedule exists.
type AggregationService struct {
	candidateRepo    repositories.ICandidateRepository
	availabilityRepo repositories.IAvailabilityRepository
	commentRepo      repositories.ICommentRepository
}

// NewAggregationService wires the engine against the shared DB handle.
func NewAggregationService() IAggregationService {
	return &AggregationService{
		candidateRepo:    repositories.NewCandidateRepository(),
		availabilityRepo: repositories.NewAvailabilityRepository(),
		commentRepo:      repositories.NewCommentRepository(),
	}
}

// BuildScheduleView fetches the schedule's candidates, availabilities and
// comments and assembles the dense matrix. Store errors bubble unmasked.
func (s *AggregationService) BuildScheduleView(ctx context.Context, schedule *models.Schedule, viewer Viewer) (*ScheduleView, error) {
	candidates, err := s.candidateRepo.FindByScheduleID(ctx, schedule.ScheduleID)
	if err != nil {
		return nil, err
	}
	availabilities, err := s.availabilityRepo.FindByScheduleID(ctx, schedule.ScheduleID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FindByScheduleID(ctx, schedule.ScheduleID)
	if err != nil {
		return nil, err
	}
	return assembleScheduleView(schedule, candidates, availabilities, comments, viewer), nil
}

// assembleScheduleView is the pure core of the engine.
func assembleScheduleView(
	schedule *models.Schedule,
	candidates []models.Candidate,
	availabilities []models.Availability,
	comments []models.Comment,
	viewer Viewer,
) *ScheduleView {
	// Sparse matrix from the stored rows: userID -> candidateID -> code.
	matrix := make(map[uint]map[uint]int)
	for _, a := range availabilities {
		row := matrix[a.UserID]
		if row == nil {
			row = make(map[uint]int)
			matrix[a.UserID] = row
		}
		row[a.CandidateID] = a.Availability
	}

	// Display users: the viewer always leads, even without a single
	// stored answer; everyone else follows username ascending.
	users := []ViewUser{{UserID: viewer.UserID, Username: viewer.Username, IsSelf: true}}
	seen := map[uint]bool{viewer.UserID: true}
	var others []ViewUser
	for _, a := range availabilities {
		if seen[a.UserID] {
			continue
		}
		seen[a.UserID] = true
		others = append(others, ViewUser{UserID: a.UserID, Username: a.User.Username})
	}
	sort.Slice(others, func(i, j int) bool {
		if others[i].Username != others[j].Username {
			return others[i].Username < others[j].Username
		}
		return others[i].UserID < others[j].UserID
	})
	users = append(users, others...)

	// Densify: every (user, candidate) cell exists afterwards.
	for _, u := range users {
		row := matrix[u.UserID]
		if row == nil {
			row = make(map[uint]int)
			matrix[u.UserID] = row
		}
		for _, c := range candidates {
			if _, ok := row[c.CandidateID]; !ok {
				row[c.CandidateID] = models.AvailabilityAbsent
			}
		}
	}

	commentMap := make(map[uint]string, len(comments))
	for _, c := range comments {
		commentMap[c.UserID] = c.Comment
	}

	return &ScheduleView{
		Schedule:       schedule,
		Candidates:     candidates,
		Users:          users,
		Availabilities: matrix,
		Comments:       commentMap,
	}
}

var _ IAggregationService = (*AggregationService)(nil)
