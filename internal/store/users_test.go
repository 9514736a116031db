package store

import (
	"context"
	"errors"
	"testing"
)

func TestGetUserByEmail_CaseInsensitive(t *testing.T) {
	s := seedTestStore(t)

	u, err := s.GetUserByEmail(context.Background(), "  bob@x.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.ID != "u-bob" {
		t.Fatalf("expected u-bob, got %+v", u)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	s := seedTestStore(t)

	u, err := s.GetUserByEmail(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Fatal("expected nil for unknown email")
	}
}

func TestCreateUser_EmailTaken(t *testing.T) {
	s := seedTestStore(t)

	err := s.CreateUser(context.Background(), UserRecord{ID: "u-other", Name: "Imposter", Email: "ALICE@x.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	u, _ := s.GetUser(context.Background(), "u-other")
	if u != nil {
		t.Fatal("rejected user must not be stored")
	}
}

func TestListUsers_SortedByName(t *testing.T) {
	s := seedTestStore(t)

	users, err := s.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"u-alice", "u-bob", "u-charlie"}
	if len(users) != len(want) {
		t.Fatalf("expected %d users, got %d", len(want), len(users))
	}
	for i, id := range want {
		if users[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, users[i].ID)
		}
	}
}

func TestSeedUsers_SkipsExistingEmail(t *testing.T) {
	s := seedTestStore(t)

	err := s.SeedUsers([]UserRecord{{ID: "u-alice-2", Name: "Second Alice", Email: "alice@x.com"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, _ := s.GetUserByEmail(context.Background(), "alice@x.com")
	if u.ID != "u-alice" {
		t.Fatalf("expected original owner u-alice, got %s", u.ID)
	}
}

func TestSeedUsers_SkipsExistingID(t *testing.T) {
	s := seedTestStore(t)
	ctx := context.Background()

	err := s.SeedUsers([]UserRecord{{ID: "u-alice", Name: "Imposter", Email: "imposter@x.com"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, _ := s.GetUser(ctx, "u-alice")
	if u.Email != "alice@x.com" {
		t.Fatalf("expected u-alice untouched, got %+v", u)
	}
	if other, _ := s.GetUserByEmail(ctx, "imposter@x.com"); other != nil {
		t.Fatalf("expected no user for skipped email, got %+v", other)
	}
}

func TestCreateUser_RewriteReleasesOldEmail(t *testing.T) {
	s := seedTestStore(t)
	ctx := context.Background()

	u, _ := s.GetUser(ctx, "u-alice")
	u.Email = "alice@new.com"
	if err := s.CreateUser(ctx, *u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if old, _ := s.GetUserByEmail(ctx, "alice@x.com"); old != nil {
		t.Fatalf("old email must no longer resolve, got %+v", old)
	}
	got, _ := s.GetUserByEmail(ctx, "alice@new.com")
	if got == nil || got.ID != "u-alice" {
		t.Fatalf("expected new email to resolve to u-alice, got %+v", got)
	}

	// the released address can be claimed again
	if err := s.CreateUser(ctx, UserRecord{ID: "u-alice-2", Email: "alice@x.com"}); err != nil {
		t.Fatalf("expected released email to be reusable, got %v", err)
	}
}
