package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"yotei.link/configs/configslog"
)

// cascadeStage is one step of the schedule deletion cascade. Stages run
// strictly in order; a stage's deletions may run concurrently with each
// other but the next stage starts only after the whole previous stage
// finished.
type cascadeStage struct {
	name string
	run  func(ctx context.Context) error
}

// deleteConcurrently fires one delete per row and waits for the full
// batch. The first failure cancels the group and is returned.
func deleteConcurrently(ctx context.Context, count int, del func(ctx context.Context, i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error { return del(ctx, i) })
	}
	return g.Wait()
}

// DeleteScheduleAggregate removes the schedule and every dependent record
// in dependency order: availabilities, then comments, then candidates,
// then the schedule row itself. Children go first so no stage ever leaves
// a dangling reference to a parent that is already gone.
//
// The stages are not wrapped in one transaction: per-row deletions inside
// a stage run concurrently and a transaction handle cannot be shared
// across goroutines. Instead every stage delete is idempotent (removing an
// absent row is a no-op), so a cascade that failed partway is repaired by
// simply retrying the call. The first stage error halts the cascade and is
// surfaced; later stages are not attempted.
func (s *ScheduleService) DeleteScheduleAggregate(ctx context.Context, scheduleID string) error {
	stages := []cascadeStage{
		{name: "availabilities", run: func(ctx context.Context) error {
			rows, err := s.availabilityRepo.FindByScheduleID(ctx, scheduleID)
			if err != nil {
				return err
			}
			return deleteConcurrently(ctx, len(rows), func(ctx context.Context, i int) error {
				return s.availabilityRepo.Delete(ctx, rows[i].ID)
			})
		}},
		{name: "comments", run: func(ctx context.Context) error {
			rows, err := s.commentRepo.FindByScheduleID(ctx, scheduleID)
			if err != nil {
				return err
			}
			return deleteConcurrently(ctx, len(rows), func(ctx context.Context, i int) error {
				return s.commentRepo.Delete(ctx, rows[i].ID)
			})
		}},
		{name: "candidates", run: func(ctx context.Context) error {
			rows, err := s.candidateRepo.FindByScheduleID(ctx, scheduleID)
			if err != nil {
				return err
			}
			return deleteConcurrently(ctx, len(rows), func(ctx context.Context, i int) error {
				return s.candidateRepo.Delete(ctx, rows[i].CandidateID)
			})
		}},
		{name: "schedule", run: func(ctx context.Context) error {
			return s.repo.Delete(ctx, scheduleID)
		}},
	}

	for _, stage := range stages {
		if err := stage.run(ctx); err != nil {
			configslog.SLog.Errorw("Schedule deletion cascade halted",
				"scheduleID", scheduleID, "stage", stage.name, "error", err)
			return fmt.Errorf("delete schedule %s: %s stage: %w", scheduleID, stage.name, err)
		}
	}

	configslog.SLog.Infow("Schedule and all dependent records deleted", "scheduleID", scheduleID)
	return nil
}
