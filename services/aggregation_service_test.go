package services

import (
	"context"
	"reflect"
	"testing"

	"yotei.link/models"
)

func availabilityRow(id uint, scheduleID string, candidateID, userID uint, username string, code int) models.Availability {
	a := models.Availability{
		ScheduleID:   scheduleID,
		CandidateID:  candidateID,
		UserID:       userID,
		Availability: code,
	}
	a.ID = id
	a.User = models.User{Username: username}
	a.User.ID = userID
	return a
}

func TestAssembleScheduleViewDensification(t *testing.T) {
	schedule := &models.Schedule{ScheduleID: "s1", ScheduleName: "Dinner", CreatedBy: 1}
	candidates := []models.Candidate{
		{CandidateID: 10, CandidateName: "Fri", ScheduleID: "s1"},
		{CandidateID: 11, CandidateName: "Sat", ScheduleID: "s1"},
		{CandidateID: 12, CandidateName: "Sun", ScheduleID: "s1"},
	}
	// Sparse input: two users answered, neither for every slot, and the
	// viewer answered nothing at all.
	availabilities := []models.Availability{
		availabilityRow(1, "s1", 10, 2, "bob", models.AvailabilityPresent),
		availabilityRow(2, "s1", 11, 3, "alice", models.AvailabilityMaybe),
	}

	view := assembleScheduleView(schedule, candidates, availabilities, nil, Viewer{UserID: 1, Username: "carol"})

	if got, want := len(view.Users), 3; got != want {
		t.Fatalf("user count = %d, want %d", got, want)
	}
	// Every (user, candidate) cell must exist.
	cells := 0
	for _, u := range view.Users {
		row, ok := view.Availabilities[u.UserID]
		if !ok {
			t.Fatalf("no matrix row for user %d", u.UserID)
		}
		for _, c := range candidates {
			code, ok := row[c.CandidateID]
			if !ok {
				t.Fatalf("missing cell for user %d candidate %d", u.UserID, c.CandidateID)
			}
			if !models.ValidAvailability(code) {
				t.Fatalf("cell (%d,%d) has invalid code %d", u.UserID, c.CandidateID, code)
			}
			cells++
		}
	}
	if want := len(view.Users) * len(candidates); cells != want {
		t.Fatalf("matrix has %d cells, want exactly %d", cells, want)
	}

	// Stored values survive, everything else defaults to absent.
	if got := view.Availabilities[2][10]; got != models.AvailabilityPresent {
		t.Errorf("stored cell (2,10) = %d, want %d", got, models.AvailabilityPresent)
	}
	if got := view.Availabilities[2][11]; got != models.AvailabilityAbsent {
		t.Errorf("unstored cell (2,11) = %d, want default %d", got, models.AvailabilityAbsent)
	}
	if got := view.Availabilities[1][12]; got != models.AvailabilityAbsent {
		t.Errorf("viewer cell (1,12) = %d, want default %d", got, models.AvailabilityAbsent)
	}
}

func TestAssembleScheduleViewViewerInclusion(t *testing.T) {
	schedule := &models.Schedule{ScheduleID: "s1", CreatedBy: 9}
	candidates := []models.Candidate{{CandidateID: 1, ScheduleID: "s1"}}

	tests := []struct {
		name           string
		availabilities []models.Availability
		viewer         Viewer
	}{
		{
			name:   "viewer never answered",
			viewer: Viewer{UserID: 7, Username: "greta"},
			availabilities: []models.Availability{
				availabilityRow(1, "s1", 1, 2, "bob", models.AvailabilityPresent),
			},
		},
		{
			name:   "viewer answered too",
			viewer: Viewer{UserID: 2, Username: "bob"},
			availabilities: []models.Availability{
				availabilityRow(1, "s1", 1, 2, "bob", models.AvailabilityPresent),
				availabilityRow(2, "s1", 1, 3, "alice", models.AvailabilityMaybe),
			},
		},
		{
			name:   "no answers at all",
			viewer: Viewer{UserID: 4, Username: "dora"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := assembleScheduleView(schedule, candidates, tt.availabilities, nil, tt.viewer)

			selfCount := 0
			for i, u := range view.Users {
				if u.UserID == tt.viewer.UserID {
					if !u.IsSelf {
						t.Errorf("viewer not tagged IsSelf")
					}
					if i != 0 {
						t.Errorf("viewer at position %d, want 0", i)
					}
					selfCount++
				} else if u.IsSelf {
					t.Errorf("user %d wrongly tagged IsSelf", u.UserID)
				}
			}
			if selfCount != 1 {
				t.Fatalf("viewer appears %d times, want exactly once", selfCount)
			}
		})
	}
}

func TestAssembleScheduleViewDeterministicOrdering(t *testing.T) {
	schedule := &models.Schedule{ScheduleID: "s1", CreatedBy: 1}
	candidates := []models.Candidate{
		{CandidateID: 5, ScheduleID: "s1"},
		{CandidateID: 6, ScheduleID: "s1"},
	}
	// Deliberately unsorted input, plus a username tie resolved by user id.
	availabilities := []models.Availability{
		availabilityRow(1, "s1", 5, 30, "zoe", models.AvailabilityPresent),
		availabilityRow(2, "s1", 5, 20, "alice", models.AvailabilityMaybe),
		availabilityRow(3, "s1", 6, 40, "alice", models.AvailabilityPresent),
		availabilityRow(4, "s1", 5, 25, "mallory", models.AvailabilityAbsent),
	}
	viewer := Viewer{UserID: 99, Username: "viewer"}

	first := assembleScheduleView(schedule, candidates, availabilities, nil, viewer)

	wantOrder := []uint{99, 20, 40, 25, 30}
	var gotOrder []uint
	for _, u := range first.Users {
		gotOrder = append(gotOrder, u.UserID)
	}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Fatalf("user order = %v, want %v", gotOrder, wantOrder)
	}

	// Re-running over unchanged data yields the identical result.
	for i := 0; i < 10; i++ {
		again := assembleScheduleView(schedule, candidates, availabilities, nil, viewer)
		if !reflect.DeepEqual(again.Users, first.Users) {
			t.Fatalf("run %d changed user order: %v vs %v", i, again.Users, first.Users)
		}
	}
}

func TestScheduleViewLookupIsTotal(t *testing.T) {
	schedule := &models.Schedule{ScheduleID: "s1", CreatedBy: 1}
	candidates := []models.Candidate{{CandidateID: 1, ScheduleID: "s1"}}
	availabilities := []models.Availability{
		availabilityRow(1, "s1", 1, 2, "bob", models.AvailabilityPresent),
	}

	view := assembleScheduleView(schedule, candidates, availabilities, nil, Viewer{UserID: 1, Username: "carol"})

	if got := view.Lookup(2, 1); got != models.AvailabilityPresent {
		t.Errorf("Lookup(2,1) = %d, want %d", got, models.AvailabilityPresent)
	}
	if got := view.Lookup(1, 1); got != models.AvailabilityAbsent {
		t.Errorf("Lookup(1,1) = %d, want default %d", got, models.AvailabilityAbsent)
	}
	// Pairs entirely outside the view still resolve.
	if got := view.Lookup(777, 888); got != models.AvailabilityAbsent {
		t.Errorf("Lookup outside view = %d, want default %d", got, models.AvailabilityAbsent)
	}
}

func TestAssembleScheduleViewComments(t *testing.T) {
	schedule := &models.Schedule{ScheduleID: "s1", CreatedBy: 1}
	comments := []models.Comment{
		{ScheduleID: "s1", UserID: 2, Comment: "looking forward to it"},
	}

	view := assembleScheduleView(schedule, nil, nil, comments, Viewer{UserID: 1, Username: "carol"})

	if got := view.Comments[2]; got != "looking forward to it" {
		t.Errorf("comment for user 2 = %q", got)
	}
	// No comment row means no entry, not an empty string.
	if _, ok := view.Comments[1]; ok {
		t.Errorf("viewer without a comment row got a comment entry")
	}
}

func TestBuildScheduleViewFetchesThroughRepos(t *testing.T) {
	candidates := newFakeCandidateRepo()
	availabilities := newFakeAvailabilityRepo()
	comments := newFakeCommentRepo()

	if err := candidates.BulkCreate(context.Background(), []models.Candidate{
		{CandidateName: "Fri", ScheduleID: "s1"},
		{CandidateName: "Sat", ScheduleID: "s1"},
		{CandidateName: "other", ScheduleID: "s2"},
	}); err != nil {
		t.Fatal(err)
	}
	availabilities.rows = append(availabilities.rows,
		availabilityRow(1, "s1", 1, 2, "bob", models.AvailabilityPresent),
		availabilityRow(2, "s2", 3, 2, "bob", models.AvailabilityPresent),
	)
	if err := comments.Upsert(context.Background(), &models.Comment{ScheduleID: "s1", UserID: 2, Comment: "ok"}); err != nil {
		t.Fatal(err)
	}

	svc := &AggregationService{
		candidateRepo:    candidates,
		availabilityRepo: availabilities,
		commentRepo:      comments,
	}
	view, err := svc.BuildScheduleView(context.Background(), &models.Schedule{ScheduleID: "s1"}, Viewer{UserID: 5, Username: "eve"})
	if err != nil {
		t.Fatalf("BuildScheduleView: %v", err)
	}

	if got := len(view.Candidates); got != 2 {
		t.Errorf("candidates from other schedules leaked in: got %d, want 2", got)
	}
	if got := len(view.Users); got != 2 {
		t.Errorf("users = %d, want viewer + one submitter", got)
	}
	if got := view.Comments[2]; got != "ok" {
		t.Errorf("comment = %q, want %q", got, "ok")
	}
}
