package services

import (
	"context"
	"errors"
	"testing"

	"yotei.link/models"
)

func TestUpsertAvailabilityRejectsUnknownCodes(t *testing.T) {
	svc := &AvailabilityService{repo: newFakeAvailabilityRepo()}

	for _, code := range []int{-1, 3, 99} {
		if err := svc.UpsertAvailability(context.Background(), "s1", 1, 2, code); !errors.Is(err, ErrInvalidAvailability) {
			t.Errorf("code %d: err = %v, want ErrInvalidAvailability", code, err)
		}
	}
}

func TestUpsertAvailabilityReplacesExistingRow(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &AvailabilityService{repo: repo}

	if err := svc.UpsertAvailability(context.Background(), "s1", 1, 2, models.AvailabilityMaybe); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := svc.UpsertAvailability(context.Background(), "s1", 1, 2, models.AvailabilityPresent); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, _ := repo.FindByScheduleID(context.Background(), "s1")
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want one logical row per (candidate, user)", len(rows))
	}
	if rows[0].Availability != models.AvailabilityPresent {
		t.Errorf("stored code = %d, want last write %d", rows[0].Availability, models.AvailabilityPresent)
	}
}

func TestUpsertCommentLastWriteWins(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := &CommentService{repo: repo}

	if err := svc.UpsertComment(context.Background(), "s1", 2, "first"); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := svc.UpsertComment(context.Background(), "s1", 2, "second"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, _ := repo.FindByScheduleID(context.Background(), "s1")
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want one per (schedule, user)", len(rows))
	}
	if rows[0].Comment != "second" {
		t.Errorf("stored comment = %q, want %q", rows[0].Comment, "second")
	}
}
