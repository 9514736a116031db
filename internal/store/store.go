package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmailTaken     = errors.New("email already registered")
	ErrMeetingExists  = errors.New("meeting already exists")
	ErrInvalidMeeting = errors.New("invalid meeting record")
)

type MeetingStatus string

const (
	StatusPending  MeetingStatus = "pending"
	StatusAccepted MeetingStatus = "accepted"
	StatusDeclined MeetingStatus = "declined"
)

type MeetingRecord struct {
	ID                 string        `json:"id"`
	RequestedBy        string        `json:"requested_by"`
	RequestedTo        string        `json:"requested_to"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	DateTime           time.Time     `json:"date_time"`
	Duration           int           `json:"duration"`
	Status             MeetingStatus `json:"status"`
	MeetingLink        string        `json:"meeting_link"`
	VirtualPitchRoomID string        `json:"virtual_pitch_room_id,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// HasParticipant reports whether userID is the requester or the target.
func (m *MeetingRecord) HasParticipant(userID string) bool {
	return userID != "" && (m.RequestedBy == userID || m.RequestedTo == userID)
}

// Validate checks a record that did not come through the lifecycle service:
// two distinct participants and a known status. An empty status becomes
// pending.
func (m *MeetingRecord) Validate() error {
	switch {
	case m.RequestedBy == "" || m.RequestedTo == "":
		return fmt.Errorf("%w: both participants are required", ErrInvalidMeeting)
	case m.RequestedBy == m.RequestedTo:
		return fmt.Errorf("%w: participants must differ", ErrInvalidMeeting)
	}

	switch m.Status {
	case "":
		m.Status = StatusPending
	case StatusPending, StatusAccepted, StatusDeclined:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidMeeting, m.Status)
	}
	return nil
}

type UserRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	UserType     string    `json:"user_type"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// MeetingMutator edits a meeting in place inside a write transaction.
// Returning an error aborts the transaction and leaves the record untouched.
type MeetingMutator func(m *MeetingRecord) error

// MeetingStore is the Meeting Record Store. Lookups return (nil, nil) when
// the meeting does not exist.
type MeetingStore interface {
	CreateMeeting(ctx context.Context, rec MeetingRecord) error
	GetMeeting(ctx context.Context, id string) (*MeetingRecord, error)
	ListMeetingsFor(ctx context.Context, userID string) ([]MeetingRecord, error)
	UpdateMeeting(ctx context.Context, id string, fn MeetingMutator) (*MeetingRecord, error)
}

// UserStore backs the Identity Directory. Lookups return (nil, nil) when
// the user does not exist.
type UserStore interface {
	CreateUser(ctx context.Context, rec UserRecord) error
	GetUser(ctx context.Context, id string) (*UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*UserRecord, error)
	ListUsers(ctx context.Context) ([]UserRecord, error)
}
