package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.db")
}

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func seedTestStore(t *testing.T) *BBoltStore {
	t.Helper()
	s, err := NewBBoltStore(tempDBPath(t))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	err = s.SeedUsers([]UserRecord{
		{ID: "u-alice", Name: "Alice Founder", Email: "alice@x.com", UserType: "founder"},
		{ID: "u-bob", Name: "Bob Investor", Email: "Bob@X.com", UserType: "investor"},
		{ID: "u-charlie", Name: "Charlie Investor", Email: "charlie@x.com", UserType: "investor"},
	})
	if err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	err = s.SeedMeetings(map[string]MeetingRecord{
		"m-001": {
			RequestedBy: "u-alice",
			RequestedTo: "u-bob",
			Title:       "Seed round intro",
			Description: "First call",
			DateTime:    baseTime.Add(48 * time.Hour),
			Duration:    30,
			Status:      StatusPending,
			MeetingLink: "https://meet.example/aaa",
			CreatedAt:   baseTime,
			UpdatedAt:   baseTime,
		},
		"m-002": {
			RequestedBy: "u-charlie",
			RequestedTo: "u-alice",
			Title:       "Follow-up",
			Description: "Terms",
			DateTime:    baseTime.Add(72 * time.Hour),
			Duration:    45,
			Status:      StatusAccepted,
			CreatedAt:   baseTime.Add(time.Hour),
			UpdatedAt:   baseTime.Add(time.Hour),
		},
	})
	if err != nil {
		t.Fatalf("failed to seed meetings: %v", err)
	}
	return s
}

func TestNewBBoltStore_InvalidPath(t *testing.T) {
	_, err := NewBBoltStore(filepath.Join(os.DevNull, "impossible", "path.db"))
	if err == nil {
		t.Fatal("expected error for invalid path")
	}
}

func TestNewBBoltStore_Reopen(t *testing.T) {
	path := tempDBPath(t)
	s, err := NewBBoltStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := s.SeedUsers([]UserRecord{{ID: "u-1", Name: "One", Email: "one@x.com", UserType: "founder"}}); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	s.Close()

	s, err = NewBBoltStore(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer s.Close()

	u, err := s.GetUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.Email != "one@x.com" {
		t.Fatalf("expected persisted user, got %+v", u)
	}
}
