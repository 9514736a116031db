// Package meeting implements the meeting lifecycle between two users: a
// request, a one-time answer from the invited user, the conferencing link and
// the virtual pitch room token attached to the meeting.
//
// Every operation is scoped to the caller. A meeting the caller may not act
// on is reported exactly like a meeting that does not exist.
package meeting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Khetesh-Deore/backend-Arthankur/internal/store"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/users"
)

var (
	// ErrUserNotFound is returned when the invited email has no account.
	ErrUserNotFound = users.ErrUserNotFound
	// ErrMeetingNotFound covers a missing meeting, a caller who is not
	// allowed to act on it, and a refresh of a room that is not open.
	ErrMeetingNotFound = errors.New("meeting not found")
)

// ValidationError carries a message that is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Directory resolves users. GetByID and GetByEmail fail with
// users.ErrUserNotFound when nobody matches.
type Directory interface {
	GetByID(ctx context.Context, id string) (*store.UserRecord, error)
	GetByEmail(ctx context.Context, email string) (*store.UserRecord, error)
	ListOthers(ctx context.Context, callerID string) ([]users.Profile, error)
}

type Participant struct {
	ID    string
	Name  string
	Email string
}

// Meeting is a stored record with both participants resolved.
type Meeting struct {
	store.MeetingRecord
	Requester Participant
	Target    Participant
}

// PitchRoom describes the virtual pitch room of a meeting. RoomID and URL
// are empty when no room has been assigned.
type PitchRoom struct {
	MeetingID string
	Title     string
	RoomID    string
	URL       string
}

type CreateInput struct {
	TargetEmail string
	Title       string
	Description string
	DateTime    time.Time
	Duration    int
}

type Options struct {
	MeetingLinkBase     string
	VirtualPitchBaseURL string
	Now                 func() time.Time
}

type Service struct {
	meetings  store.MeetingStore
	directory Directory
	linkBase  string
	pitchBase string
	now       func() time.Time
	newToken  func() string
}

func NewService(meetings store.MeetingStore, directory Directory, opts Options) *Service {
	if opts.MeetingLinkBase == "" {
		opts.MeetingLinkBase = "https://meet.arthankur.app/"
	}
	if opts.VirtualPitchBaseURL == "" {
		opts.VirtualPitchBaseURL = "/virtual-pitch/"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		meetings:  meetings,
		directory: directory,
		linkBase:  strings.TrimSuffix(opts.MeetingLinkBase, "/") + "/",
		pitchBase: strings.TrimSuffix(opts.VirtualPitchBaseURL, "/") + "/",
		now:       opts.Now,
		newToken:  NewToken,
	}
}

// ListForCaller returns the caller's meetings, newest first.
func (s *Service) ListForCaller(ctx context.Context, callerID string) ([]Meeting, error) {
	recs, err := s.meetings.ListMeetingsFor(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("listing meetings: %w", err)
	}

	r := s.newResolver()
	out := make([]Meeting, 0, len(recs))
	for _, rec := range recs {
		m, err := r.meeting(ctx, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, nil
}

// Create stores a pending meeting from callerID to the user owning
// in.TargetEmail. The link and the pitch room token are generated here.
func (s *Service) Create(ctx context.Context, callerID string, in CreateInput) (*Meeting, error) {
	in.TargetEmail = strings.TrimSpace(in.TargetEmail)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	switch {
	case in.TargetEmail == "":
		return nil, &ValidationError{Message: "email is required"}
	case in.Title == "":
		return nil, &ValidationError{Message: "title is required"}
	case in.Description == "":
		return nil, &ValidationError{Message: "description is required"}
	case in.DateTime.IsZero():
		return nil, &ValidationError{Message: "dateTime is required"}
	case in.Duration <= 0:
		return nil, &ValidationError{Message: "duration must be a positive number of minutes"}
	}

	target, err := s.directory.GetByEmail(ctx, in.TargetEmail)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolving target user: %w", err)
	}
	if target.ID == callerID {
		return nil, &ValidationError{Message: "cannot request a meeting with yourself"}
	}

	now := s.now().UTC()
	rec := store.MeetingRecord{
		ID:                 uuid.NewString(),
		RequestedBy:        callerID,
		RequestedTo:        target.ID,
		Title:              in.Title,
		Description:        in.Description,
		DateTime:           in.DateTime.UTC(),
		Duration:           in.Duration,
		Status:             store.StatusPending,
		MeetingLink:        s.linkBase + s.newToken(),
		VirtualPitchRoomID: s.newToken(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.meetings.CreateMeeting(ctx, rec); err != nil {
		return nil, fmt.Errorf("storing meeting: %w", err)
	}

	return s.newResolver().meeting(ctx, rec)
}

// Get returns one meeting to either participant.
func (s *Service) Get(ctx context.Context, callerID, meetingID string) (*Meeting, error) {
	rec, err := s.load(ctx, callerID, meetingID)
	if err != nil {
		return nil, err
	}
	return s.newResolver().meeting(ctx, *rec)
}

// SetStatus records the invited user's answer. Only requestedTo may call it.
// Answering again overwrites the previous answer. Accepting a meeting that
// has no pitch room assigns one.
func (s *Service) SetStatus(ctx context.Context, callerID, meetingID string, status store.MeetingStatus) (*Meeting, error) {
	if status != store.StatusAccepted && status != store.StatusDeclined {
		return nil, &ValidationError{Message: "status must be accepted or declined"}
	}

	rec, err := s.update(ctx, meetingID, func(m *store.MeetingRecord) error {
		if callerID == "" || m.RequestedTo != callerID {
			return ErrMeetingNotFound
		}
		m.Status = status
		if status == store.StatusAccepted && m.VirtualPitchRoomID == "" {
			m.VirtualPitchRoomID = s.newToken()
		}
		m.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.newResolver().meeting(ctx, *rec)
}

// UpdateLink replaces the conferencing link. An empty link leaves the
// meeting as it is.
func (s *Service) UpdateLink(ctx context.Context, callerID, meetingID, link string) (*Meeting, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return s.Get(ctx, callerID, meetingID)
	}

	rec, err := s.update(ctx, meetingID, func(m *store.MeetingRecord) error {
		if !m.HasParticipant(callerID) {
			return ErrMeetingNotFound
		}
		m.MeetingLink = link
		m.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.newResolver().meeting(ctx, *rec)
}

// PitchRoom reports the current pitch room without assigning one.
func (s *Service) PitchRoom(ctx context.Context, callerID, meetingID string) (*PitchRoom, error) {
	rec, err := s.load(ctx, callerID, meetingID)
	if err != nil {
		return nil, err
	}
	return s.pitchRoom(rec), nil
}

// RefreshPitchRoom replaces the pitch room token of an accepted meeting.
// The previous room is dropped.
func (s *Service) RefreshPitchRoom(ctx context.Context, callerID, meetingID string) (*PitchRoom, error) {
	rec, err := s.update(ctx, meetingID, func(m *store.MeetingRecord) error {
		if !m.HasParticipant(callerID) || m.Status != store.StatusAccepted {
			return ErrMeetingNotFound
		}
		prev := m.VirtualPitchRoomID
		next := s.newToken()
		for next == prev {
			next = s.newToken()
		}
		m.VirtualPitchRoomID = next
		m.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.pitchRoom(rec), nil
}

// ListOtherUsers returns everyone the caller could invite.
func (s *Service) ListOtherUsers(ctx context.Context, callerID string) ([]users.Profile, error) {
	out, err := s.directory.ListOthers(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return out, nil
}

// PitchURL derives the room URL from a room id.
func (s *Service) PitchURL(roomID string) string {
	if roomID == "" {
		return ""
	}
	return s.pitchBase + roomID
}

func (s *Service) pitchRoom(rec *store.MeetingRecord) *PitchRoom {
	return &PitchRoom{
		MeetingID: rec.ID,
		Title:     rec.Title,
		RoomID:    rec.VirtualPitchRoomID,
		URL:       s.PitchURL(rec.VirtualPitchRoomID),
	}
}

func (s *Service) load(ctx context.Context, callerID, meetingID string) (*store.MeetingRecord, error) {
	rec, err := s.meetings.GetMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("loading meeting %s: %w", meetingID, err)
	}
	if rec == nil || !rec.HasParticipant(callerID) {
		return nil, ErrMeetingNotFound
	}
	return rec, nil
}

func (s *Service) update(ctx context.Context, meetingID string, fn store.MeetingMutator) (*store.MeetingRecord, error) {
	rec, err := s.meetings.UpdateMeeting(ctx, meetingID, fn)
	if err != nil {
		if errors.Is(err, ErrMeetingNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("updating meeting %s: %w", meetingID, err)
	}
	if rec == nil {
		return nil, ErrMeetingNotFound
	}
	return rec, nil
}

// resolver memoises participant lookups for one request.
type resolver struct {
	dir   Directory
	cache map[string]Participant
}

func (s *Service) newResolver() *resolver {
	return &resolver{dir: s.directory, cache: make(map[string]Participant)}
}

func (r *resolver) participant(ctx context.Context, id string) (Participant, error) {
	if p, ok := r.cache[id]; ok {
		return p, nil
	}

	p := Participant{ID: id}
	u, err := r.dir.GetByID(ctx, id)
	switch {
	case err == nil:
		p.Name, p.Email = u.Name, u.Email
	case errors.Is(err, users.ErrUserNotFound):
		// account removed; keep the bare id
	default:
		return Participant{}, fmt.Errorf("resolving participant %s: %w", id, err)
	}

	r.cache[id] = p
	return p, nil
}

func (r *resolver) meeting(ctx context.Context, rec store.MeetingRecord) (*Meeting, error) {
	by, err := r.participant(ctx, rec.RequestedBy)
	if err != nil {
		return nil, err
	}
	to, err := r.participant(ctx, rec.RequestedTo)
	if err != nil {
		return nil, err
	}
	return &Meeting{MeetingRecord: rec, Requester: by, Target: to}, nil
}
