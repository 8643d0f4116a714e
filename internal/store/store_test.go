package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/quiz"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCredential_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	got, err := s.Credential(ctx)
	if err != nil {
		t.Fatalf("Credential (empty): %v", err)
	}
	if got != nil {
		t.Fatalf("Credential = %+v, want nil before save", got)
	}

	user := api.User{ID: "u1", Name: "Arjun", Email: "arjun@example.edu", Role: "senior", Verified: true}
	if err := s.SaveCredential(ctx, "tok-abc", user); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}

	got, err = s.Credential(ctx)
	if err != nil {
		t.Fatalf("Credential: %v", err)
	}
	if got == nil || got.Token != "tok-abc" || got.User != user {
		t.Errorf("Credential = %+v", got)
	}
	if got.SavedAt.IsZero() {
		t.Error("SavedAt not recorded")
	}
}

func TestCredential_ReplaceAndClear(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.SaveCredential(ctx, "old", api.User{ID: "u1", Name: "A"}); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}
	if err := s.SaveCredential(ctx, "new", api.User{ID: "u2", Name: "B"}); err != nil {
		t.Fatalf("SaveCredential (replace): %v", err)
	}

	got, err := s.Credential(ctx)
	if err != nil {
		t.Fatalf("Credential: %v", err)
	}
	if got.Token != "new" || got.User.ID != "u2" {
		t.Errorf("Credential = %+v, want replaced", got)
	}

	if err := s.ClearCredential(ctx); err != nil {
		t.Fatalf("ClearCredential: %v", err)
	}
	got, err = s.Credential(ctx)
	if err != nil {
		t.Fatalf("Credential (cleared): %v", err)
	}
	if got != nil {
		t.Errorf("Credential = %+v, want nil after clear", got)
	}
}

func TestResult_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	got, err := s.LastResult(ctx)
	if err != nil {
		t.Fatalf("LastResult (empty): %v", err)
	}
	if got != nil {
		t.Fatalf("LastResult = %+v, want nil before save", got)
	}

	result := &quiz.Result{
		PersonalityType:        "Creative Innovator",
		PersonalityDescription: "You express yourself through art.",
		Recommendations: []quiz.Recommendation{
			{ClubID: "c1", ClubName: "Drama Society", MatchPercentage: 88, Reason: "creative mindset"},
			{ClubID: "c2", ClubName: "Music Club", MatchPercentage: 74, Reason: "creative mindset"},
		},
	}
	if err := s.SaveResult(ctx, result); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	got, err = s.LastResult(ctx)
	if err != nil {
		t.Fatalf("LastResult: %v", err)
	}
	if got.PersonalityType != result.PersonalityType {
		t.Errorf("PersonalityType = %q", got.PersonalityType)
	}
	if len(got.Recommendations) != 2 || got.Recommendations[0].ClubID != "c1" {
		t.Errorf("Recommendations = %+v, want stored order preserved", got.Recommendations)
	}

	if err := s.ClearResult(ctx); err != nil {
		t.Fatalf("ClearResult: %v", err)
	}
	got, err = s.LastResult(ctx)
	if err != nil {
		t.Fatalf("LastResult (cleared): %v", err)
	}
	if got != nil {
		t.Errorf("LastResult = %+v, want nil after clear", got)
	}
}
