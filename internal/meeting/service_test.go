package meeting

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Khetesh-Deore/backend-Arthankur/internal/store"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/users"
)

var (
	testNow      = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	testDateTime = time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)
)

type fixture struct {
	svc   *Service
	store *store.BBoltStore
}

func setupService(t *testing.T) *fixture {
	t.Helper()

	s, err := store.NewBBoltStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	err = s.SeedUsers([]store.UserRecord{
		{ID: "alice", Name: "Alice", Email: "alice@x.com", UserType: users.TypeFounder},
		{ID: "bob", Name: "Bob", Email: "bob@x.com", UserType: users.TypeInvestor},
		{ID: "charlie", Name: "Charlie", Email: "charlie@x.com", UserType: users.TypeInvestor},
	})
	if err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	clock := testNow
	svc := NewService(s, users.NewService(s), Options{
		MeetingLinkBase:     "https://meet.example",
		VirtualPitchBaseURL: "/virtual-pitch",
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	})
	return &fixture{svc: svc, store: s}
}

func (f *fixture) create(t *testing.T, caller, email string) *Meeting {
	t.Helper()
	m, err := f.svc.Create(context.Background(), caller, CreateInput{
		TargetEmail: email,
		Title:       "Pitch",
		Description: "Seed round",
		DateTime:    testDateTime,
		Duration:    30,
	})
	if err != nil {
		t.Fatalf("failed to create meeting: %v", err)
	}
	return m
}

func TestCreate_Expected(t *testing.T) {
	f := setupService(t)

	m := f.create(t, "alice", "BOB@x.com")

	if m.Status != store.StatusPending {
		t.Fatalf("expected pending, got %q", m.Status)
	}
	if m.RequestedBy != "alice" || m.RequestedTo != "bob" {
		t.Fatalf("unexpected participants %s -> %s", m.RequestedBy, m.RequestedTo)
	}
	if !strings.HasPrefix(m.MeetingLink, "https://meet.example/") || len(m.MeetingLink) == len("https://meet.example/") {
		t.Fatalf("expected generated meeting link, got %q", m.MeetingLink)
	}
	if len(m.VirtualPitchRoomID) != 32 {
		t.Fatalf("expected 128-bit hex room id, got %q", m.VirtualPitchRoomID)
	}
	if m.Requester.Name != "Alice" || m.Target.Email != "bob@x.com" {
		t.Fatalf("expected resolved participants, got %+v / %+v", m.Requester, m.Target)
	}

	stored, _ := f.store.GetMeeting(context.Background(), m.ID)
	if stored == nil || stored.Status != store.StatusPending {
		t.Fatalf("expected stored pending meeting, got %+v", stored)
	}
}

func TestCreate_UnknownEmailPersistsNothing(t *testing.T) {
	f := setupService(t)

	_, err := f.svc.Create(context.Background(), "alice", CreateInput{
		TargetEmail: "nobody@x.com",
		Title:       "Pitch",
		Description: "Seed round",
		DateTime:    testDateTime,
		Duration:    30,
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	all, _ := f.store.GetAllMeetings(context.Background())
	if len(all) != 0 {
		t.Fatalf("expected no meetings stored, got %d", len(all))
	}
}

func TestCreate_Validation(t *testing.T) {
	f := setupService(t)

	valid := CreateInput{TargetEmail: "bob@x.com", Title: "Pitch", Description: "d", DateTime: testDateTime, Duration: 30}
	cases := map[string]func(in *CreateInput){
		"missing email":       func(in *CreateInput) { in.TargetEmail = "" },
		"missing title":       func(in *CreateInput) { in.Title = "  " },
		"missing description": func(in *CreateInput) { in.Description = "" },
		"missing dateTime":    func(in *CreateInput) { in.DateTime = time.Time{} },
		"zero duration":       func(in *CreateInput) { in.Duration = 0 },
		"self invite":         func(in *CreateInput) { in.TargetEmail = "alice@x.com" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, err := f.svc.Create(context.Background(), "alice", in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestListForCaller(t *testing.T) {
	f := setupService(t)

	first := f.create(t, "alice", "bob@x.com")
	second := f.create(t, "charlie", "alice@x.com")
	f.create(t, "bob", "charlie@x.com")

	list, err := f.svc.ListForCaller(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 meetings, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s, %s", list[0].ID, list[1].ID)
	}
	if list[0].Requester.Name != "Charlie" {
		t.Fatalf("expected resolved requester, got %+v", list[0].Requester)
	}
}

func TestGet_OnlyParticipants(t *testing.T) {
	f := setupService(t)
	m := f.create(t, "alice", "bob@x.com")

	for _, caller := range []string{"alice", "bob"} {
		if _, err := f.svc.Get(context.Background(), caller, m.ID); err != nil {
			t.Fatalf("%s: unexpected error: %v", caller, err)
		}
	}
	if _, err := f.svc.Get(context.Background(), "charlie", m.ID); !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound for outsider, got %v", err)
	}
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	f := setupService(t)
	m := f.create(t, "alice", "bob@x.com")

	for _, status := range []store.MeetingStatus{"pending", "maybe", ""} {
		_, err := f.svc.SetStatus(context.Background(), "bob", m.ID, status)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("status %q: expected ValidationError, got %v", status, err)
		}
	}
}

func TestSetStatus_OnlyTargetMayAnswer(t *testing.T) {
	f := setupService(t)
	m := f.create(t, "alice", "bob@x.com")

	for _, caller := range []string{"alice", "charlie", ""} {
		_, err := f.svc.SetStatus(context.Background(), caller, m.ID, store.StatusAccepted)
		if !errors.Is(err, ErrMeetingNotFound) {
			t.Fatalf("caller %q: expected ErrMeetingNotFound, got %v", caller, err)
		}
	}

	_, errMissing := f.svc.SetStatus(context.Background(), "charlie", "does-not-exist", store.StatusAccepted)
	if !errors.Is(errMissing, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound for missing meeting, got %v", errMissing)
	}

	stored, _ := f.store.GetMeeting(context.Background(), m.ID)
	if stored.Status != store.StatusPending || !stored.UpdatedAt.Equal(m.UpdatedAt) {
		t.Fatalf("expected meeting untouched, got %+v", stored)
	}
}

func TestSetStatus_AcceptKeepsExistingRoom(t *testing.T) {
	f := setupService(t)
	m := f.create(t, "alice", "bob@x.com")

	accepted, err := f.svc.SetStatus(context.Background(), "bob", m.ID, store.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accepted.Status != store.StatusAccepted {
		t.Fatalf("expected accepted, got %q", accepted.Status)
	}
	if accepted.VirtualPitchRoomID != m.VirtualPitchRoomID {
		t.Fatalf("expected room id kept, got %q want %q", accepted.VirtualPitchRoomID, m.VirtualPitchRoomID)
	}
}

func TestSetStatus_AcceptAssignsMissingRoom(t *testing.T) {
	f := setupService(t)

	err := f.store.CreateMeeting(context.Background(), store.MeetingRecord{
		ID:          "legacy",
		RequestedBy: "alice",
		RequestedTo: "bob",
		Title:       "Imported",
		Status:      store.StatusPending,
		CreatedAt:   testNow,
	})
	if err != nil {
		t.Fatalf("failed to store meeting: %v", err)
	}

	m, err := f.svc.SetStatus(context.Background(), "bob", "legacy", store.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.VirtualPitchRoomID == "" {
		t.Fatal("expected room id assigned on accept")
	}

	again, err := f.svc.SetStatus(context.Background(), "bob", "legacy", store.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.VirtualPitchRoomID != m.VirtualPitchRoomID {
		t.Fatal("re-accepting must not replace the room id")
	}
}

func TestSetStatus_DeclineDoesNotAssignRoom(t *testing.T) {
	f := setupService(t)

	_ = f.store.CreateMeeting(context.Background(), store.MeetingRecord{
		ID: "legacy", RequestedBy: "alice", RequestedTo: "bob", Status: store.StatusPending, CreatedAt: testNow,
	})

	m, err := f.svc.SetStatus(context.Background(), "bob", "legacy", store.StatusDeclined)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != store.StatusDeclined || m.VirtualPitchRoomID != "" {
		t.Fatalf("expected declined without room, got %+v", m.MeetingRecord)
	}
}

func TestSetStatus_ReanswerOverwrites(t *testing.T) {
	f := setupService(t)
	m := f.create(t, "alice", "bob@x.com")

	if _, err := f.svc.SetStatus(context.Background(), "bob", m.ID, store.StatusDeclined); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := f.svc.SetStatus(context.Background(), "bob", m.ID, store.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Status != store.StatusAccepted {
		t.Fatalf("expected accepted after re-answer, got %q", again.Status)
	}
}

func TestUpdateLink(t *testing.T) {
	f := setupService(t)
	m := f.create(t, "alice", "bob@x.com")

	updated, err := f.svc.UpdateLink(context.Background(), "bob", m.ID, "https://zoom.example/123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.MeetingLink != "https://zoom.example/123" {
		t.Fatalf("expected new link, got %q", updated.MeetingLink)
	}

	same, err := f.svc.UpdateLink(context.Background(), "alice", m.ID, "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same.MeetingLink != "https://zoom.example/123" {
		t.Fatalf("empty link must be a no-op, got %q", same.MeetingLink)
	}

	if _, err := f.svc.UpdateLink(context.Background(), "charlie", m.ID, "https://evil.example"); !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound for outsider, got %v", err)
	}
	if _, err := f.svc.UpdateLink(context.Background(), "charlie", m.ID, ""); !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound for outsider no-op, got %v", err)
	}
}

func TestPitchRoom(t *testing.T) {
	f := setupService(t)
	m := f.create(t, "alice", "bob@x.com")

	room, err := f.svc.PitchRoom(context.Background(), "bob", m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.MeetingID != m.ID || room.Title != "Pitch" {
		t.Fatalf("unexpected room %+v", room)
	}
	if room.URL != "/virtual-pitch/"+m.VirtualPitchRoomID {
		t.Fatalf("unexpected url %q", room.URL)
	}

	if _, err := f.svc.PitchRoom(context.Background(), "charlie", m.ID); !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestPitchRoom_UnsetRoomIsNotGenerated(t *testing.T) {
	f := setupService(t)
	_ = f.store.CreateMeeting(context.Background(), store.MeetingRecord{
		ID: "legacy", RequestedBy: "alice", RequestedTo: "bob", Title: "Old", Status: store.StatusPending, CreatedAt: testNow,
	})

	room, err := f.svc.PitchRoom(context.Background(), "alice", "legacy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.RoomID != "" || room.URL != "" {
		t.Fatalf("expected empty room, got %+v", room)
	}

	stored, _ := f.store.GetMeeting(context.Background(), "legacy")
	if stored.VirtualPitchRoomID != "" {
		t.Fatal("reading the room must not assign one")
	}
}

func TestRefreshPitchRoom_RequiresAccepted(t *testing.T) {
	f := setupService(t)
	m := f.create(t, "alice", "bob@x.com")

	if _, err := f.svc.RefreshPitchRoom(context.Background(), "alice", m.ID); !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound while pending, got %v", err)
	}

	_, _ = f.svc.SetStatus(context.Background(), "bob", m.ID, store.StatusDeclined)
	if _, err := f.svc.RefreshPitchRoom(context.Background(), "bob", m.ID); !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound while declined, got %v", err)
	}

	stored, _ := f.store.GetMeeting(context.Background(), m.ID)
	if stored.VirtualPitchRoomID != m.VirtualPitchRoomID {
		t.Fatal("failed refresh must not change the room id")
	}
}

func TestRefreshPitchRoom_OutsiderRejected(t *testing.T) {
	f := setupService(t)
	m := f.create(t, "alice", "bob@x.com")
	_, _ = f.svc.SetStatus(context.Background(), "bob", m.ID, store.StatusAccepted)

	if _, err := f.svc.RefreshPitchRoom(context.Background(), "charlie", m.ID); !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestRefreshPitchRoom_RetriesOnCollision(t *testing.T) {
	f := setupService(t)
	m := f.create(t, "alice", "bob@x.com")
	_, _ = f.svc.SetStatus(context.Background(), "bob", m.ID, store.StatusAccepted)

	tokens := []string{m.VirtualPitchRoomID, m.VirtualPitchRoomID, "fresh-room"}
	f.svc.newToken = func() string {
		tok := tokens[0]
		tokens = tokens[1:]
		return tok
	}

	room, err := f.svc.RefreshPitchRoom(context.Background(), "alice", m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.RoomID != "fresh-room" {
		t.Fatalf("expected fresh-room, got %q", room.RoomID)
	}
}

// Alice invites Bob, Bob accepts, Alice rotates the pitch room.
func TestScenario_RequestAcceptRefresh(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	created := f.create(t, "alice", "bob@x.com")
	if created.Status != store.StatusPending || created.MeetingLink == "" || created.VirtualPitchRoomID == "" {
		t.Fatalf("unexpected created meeting %+v", created.MeetingRecord)
	}

	accepted, err := f.svc.SetStatus(ctx, "bob", created.ID, store.StatusAccepted)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != store.StatusAccepted || accepted.VirtualPitchRoomID != created.VirtualPitchRoomID {
		t.Fatalf("unexpected accepted meeting %+v", accepted.MeetingRecord)
	}

	room, err := f.svc.RefreshPitchRoom(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if room.RoomID == "" || room.RoomID == created.VirtualPitchRoomID {
		t.Fatalf("expected a new room id, got %q", room.RoomID)
	}

	_, err = f.svc.SetStatus(ctx, "charlie", created.ID, store.StatusDeclined)
	if !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected outsider rejected, got %v", err)
	}
	stored, _ := f.store.GetMeeting(ctx, created.ID)
	if stored.Status != store.StatusAccepted || stored.VirtualPitchRoomID != room.RoomID {
		t.Fatalf("outsider changed state: %+v", stored)
	}
}

func TestListOtherUsers(t *testing.T) {
	f := setupService(t)

	list, err := f.svc.ListOtherUsers(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "alice" || list[1].ID != "charlie" {
		t.Fatalf("unexpected users %+v", list)
	}
}

func TestNewToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := NewToken()
		if len(tok) != 32 {
			t.Fatalf("expected 32 hex chars, got %d", len(tok))
		}
		if seen[tok] {
			t.Fatalf("duplicate token %s", tok)
		}
		seen[tok] = true
	}
}
