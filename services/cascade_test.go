package services

import (
	"context"
	"errors"
	"testing"

	"yotei.link/models"
)

// seedAggregate fills the fakes with a schedule, three candidates, answers
// from two users and one comment, plus unrelated rows under another
// schedule that must survive every cascade.
func seedAggregate(t *testing.T) (*fakeScheduleRepo, *fakeCandidateRepo, *fakeAvailabilityRepo, *fakeCommentRepo) {
	t.Helper()
	schedules := newFakeScheduleRepo()
	candidates := newFakeCandidateRepo()
	availabilities := newFakeAvailabilityRepo()
	comments := newFakeCommentRepo()

	schedules.schedules["s1"] = &models.Schedule{ScheduleID: "s1", CreatedBy: 1}
	schedules.schedules["other"] = &models.Schedule{ScheduleID: "other", CreatedBy: 1}

	if err := candidates.BulkCreate(context.Background(), []models.Candidate{
		{CandidateName: "Fri", ScheduleID: "s1"},
		{CandidateName: "Sat", ScheduleID: "s1"},
		{CandidateName: "Sun", ScheduleID: "s1"},
		{CandidateName: "keep", ScheduleID: "other"},
	}); err != nil {
		t.Fatal(err)
	}

	for _, a := range []models.Availability{
		{ScheduleID: "s1", CandidateID: 1, UserID: 2, Availability: models.AvailabilityPresent},
		{ScheduleID: "s1", CandidateID: 2, UserID: 2, Availability: models.AvailabilityMaybe},
		{ScheduleID: "s1", CandidateID: 1, UserID: 3, Availability: models.AvailabilityPresent},
		{ScheduleID: "other", CandidateID: 4, UserID: 2, Availability: models.AvailabilityPresent},
	} {
		a := a
		if err := availabilities.Upsert(context.Background(), &a); err != nil {
			t.Fatal(err)
		}
	}

	for _, c := range []models.Comment{
		{ScheduleID: "s1", UserID: 2, Comment: "works for me"},
		{ScheduleID: "other", UserID: 2, Comment: "keep"},
	} {
		c := c
		if err := comments.Upsert(context.Background(), &c); err != nil {
			t.Fatal(err)
		}
	}
	return schedules, candidates, availabilities, comments
}

func countBySchedule[T any](rows []T, match func(T) bool) int {
	n := 0
	for _, r := range rows {
		if match(r) {
			n++
		}
	}
	return n
}

func TestDeleteScheduleAggregateRemovesEverything(t *testing.T) {
	schedules, candidates, availabilities, comments := seedAggregate(t)
	svc := newTestScheduleService(schedules, candidates, availabilities, comments)

	if err := svc.DeleteScheduleAggregate(context.Background(), "s1"); err != nil {
		t.Fatalf("DeleteScheduleAggregate: %v", err)
	}

	if n := countBySchedule(availabilities.rows, func(a models.Availability) bool { return a.ScheduleID == "s1" }); n != 0 {
		t.Errorf("%d availability rows remain", n)
	}
	if n := countBySchedule(comments.rows, func(c models.Comment) bool { return c.ScheduleID == "s1" }); n != 0 {
		t.Errorf("%d comment rows remain", n)
	}
	if n := countBySchedule(candidates.candidates, func(c models.Candidate) bool { return c.ScheduleID == "s1" }); n != 0 {
		t.Errorf("%d candidate rows remain", n)
	}
	if _, err := schedules.FindByID(context.Background(), "s1"); err == nil {
		t.Error("schedule row still present")
	}

	// Unrelated schedule untouched.
	if _, err := schedules.FindByID(context.Background(), "other"); err != nil {
		t.Error("unrelated schedule was deleted")
	}
	if n := countBySchedule(candidates.candidates, func(c models.Candidate) bool { return c.ScheduleID == "other" }); n != 1 {
		t.Errorf("unrelated candidates = %d, want 1", n)
	}
	if n := countBySchedule(availabilities.rows, func(a models.Availability) bool { return a.ScheduleID == "other" }); n != 1 {
		t.Errorf("unrelated availabilities = %d, want 1", n)
	}
	if n := countBySchedule(comments.rows, func(c models.Comment) bool { return c.ScheduleID == "other" }); n != 1 {
		t.Errorf("unrelated comments = %d, want 1", n)
	}
}

// A fault in the candidate stage must leave the earlier stages applied
// (availabilities and comments already gone) and the later stage not yet
// run (schedule still present). That is the stage-ordering contract, not
// mere eventual consistency.
func TestDeleteScheduleAggregateStageOrderingUnderFault(t *testing.T) {
	schedules, candidates, availabilities, comments := seedAggregate(t)
	injected := errors.New("candidate store unavailable")
	candidates.deleteErr = injected

	svc := newTestScheduleService(schedules, candidates, availabilities, comments)

	err := svc.DeleteScheduleAggregate(context.Background(), "s1")
	if !errors.Is(err, injected) {
		t.Fatalf("cascade error = %v, want injected fault", err)
	}

	if n := countBySchedule(availabilities.rows, func(a models.Availability) bool { return a.ScheduleID == "s1" }); n != 0 {
		t.Errorf("availability stage should have completed, %d rows remain", n)
	}
	if n := countBySchedule(comments.rows, func(c models.Comment) bool { return c.ScheduleID == "s1" }); n != 0 {
		t.Errorf("comment stage should have completed, %d rows remain", n)
	}
	if _, findErr := schedules.FindByID(context.Background(), "s1"); findErr != nil {
		t.Error("schedule stage ran despite earlier fault")
	}

	// Retrying after the fault clears finishes the job.
	candidates.deleteErr = nil
	if err := svc.DeleteScheduleAggregate(context.Background(), "s1"); err != nil {
		t.Fatalf("retry after fault: %v", err)
	}
	if _, findErr := schedules.FindByID(context.Background(), "s1"); findErr == nil {
		t.Error("schedule still present after successful retry")
	}
}

func TestDeleteScheduleAggregateFaultInFirstStage(t *testing.T) {
	schedules, candidates, availabilities, comments := seedAggregate(t)
	injected := errors.New("availability store unavailable")
	availabilities.deleteErr = injected

	svc := newTestScheduleService(schedules, candidates, availabilities, comments)

	if err := svc.DeleteScheduleAggregate(context.Background(), "s1"); !errors.Is(err, injected) {
		t.Fatalf("cascade error = %v, want injected fault", err)
	}

	// Nothing past stage one may have run.
	if n := countBySchedule(comments.rows, func(c models.Comment) bool { return c.ScheduleID == "s1" }); n != 1 {
		t.Errorf("comment stage ran despite stage-one fault (rows = %d)", n)
	}
	if n := countBySchedule(candidates.candidates, func(c models.Candidate) bool { return c.ScheduleID == "s1" }); n != 3 {
		t.Errorf("candidate stage ran despite stage-one fault (rows = %d)", n)
	}
	if _, findErr := schedules.FindByID(context.Background(), "s1"); findErr != nil {
		t.Error("schedule stage ran despite stage-one fault")
	}
}

func TestDeleteScheduleAggregateEmptySchedule(t *testing.T) {
	schedules := newFakeScheduleRepo()
	schedules.schedules["bare"] = &models.Schedule{ScheduleID: "bare", CreatedBy: 1}
	svc := newTestScheduleService(schedules, newFakeCandidateRepo(), newFakeAvailabilityRepo(), newFakeCommentRepo())

	if err := svc.DeleteScheduleAggregate(context.Background(), "bare"); err != nil {
		t.Fatalf("cascade over empty aggregate: %v", err)
	}
	if _, err := schedules.FindByID(context.Background(), "bare"); err == nil {
		t.Error("schedule survived")
	}
}
