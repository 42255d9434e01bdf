package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"yotei.link/models"
	"yotei.link/repositories"
)

// ICandidateService provisions candidate slots for a schedule.
type ICandidateService interface {
	CreateCandidates(ctx context.Context, scheduleID string, names []string) error
}

// CandidateService implements ICandidateService.
type CandidateService struct {
	repo repositories.ICandidateRepository
}

// NewCandidateServiceTx binds the service to a transaction handle so
// candidate writes commit or roll back with their schedule. Candidate
// writes only ever happen alongside a schedule write, so there is no
// non-transactional constructor.
func NewCandidateServiceTx(tx *gorm.DB) ICandidateService {
	return &CandidateService{repo: repositories.NewCandidateRepositoryTx(tx)}
}

// ParseCandidateNames splits the organizer's multi-line input into slot
// names: one per line, trimmed, blank lines dropped, order preserved.
// Duplicates stay; they become distinct candidates.
func ParseCandidateNames(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// CreateCandidates bulk-inserts one candidate per name under scheduleID.
// An empty name list is a no-op, not an error.
func (s *CandidateService) CreateCandidates(ctx context.Context, scheduleID string, names []string) error {
	if len(names) == 0 {
		return nil
	}
	candidates := make([]models.Candidate, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, models.Candidate{
			CandidateName: name,
			ScheduleID:    scheduleID,
		})
	}
	return s.repo.BulkCreate(ctx, candidates)
}

var _ ICandidateService = (*CandidateService)(nil)
