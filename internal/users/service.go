// Package users is the Identity Directory: account registration, credential
// checks and the lookups the meeting lifecycle needs.
package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Khetesh-Deore/backend-Arthankur/internal/store"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries a message that is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const (
	TypeFounder  = "founder"
	TypeInvestor = "investor"

	minPasswordLen = 8
)

// Profile is the public view of a user.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

func ProfileOf(r *store.UserRecord) Profile {
	return Profile{ID: r.ID, Name: r.Name, Email: r.Email, UserType: r.UserType}
}

type Service struct {
	store store.UserStore
	now   func() time.Time
	cost  int
}

func NewService(s store.UserStore) *Service {
	return &Service{store: s, now: time.Now, cost: bcrypt.DefaultCost}
}

// HashPassword returns the bcrypt hash stored for password.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func (s *Service) Register(ctx context.Context, name, email, password, userType string) (*store.UserRecord, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	switch {
	case name == "":
		return nil, &ValidationError{Message: "name is required"}
	case email == "":
		return nil, &ValidationError{Message: "email is required"}
	case !validEmail(email):
		return nil, &ValidationError{Message: "email is invalid"}
	case len(password) < minPasswordLen:
		return nil, &ValidationError{Message: fmt.Sprintf("password must be at least %d characters", minPasswordLen)}
	case userType != TypeFounder && userType != TypeInvestor:
		return nil, &ValidationError{Message: "userType must be founder or investor"}
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	rec := store.UserRecord{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		UserType:     userType,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.CreateUser(ctx, rec); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &rec, nil
}

// Authenticate checks email and password. Unknown email and wrong password
// both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*store.UserRecord, error) {
	u, err := s.store.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if u == nil || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*store.UserRecord, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading user %s: %w", id, err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*store.UserRecord, error) {
	u, err := s.store.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("loading user by email: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ListOthers returns every user except callerID.
func (s *Service) ListOthers(ctx context.Context, callerID string) ([]Profile, error) {
	all, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	out := make([]Profile, 0, len(all))
	for i := range all {
		if all[i].ID == callerID {
			continue
		}
		out = append(out, ProfileOf(&all[i]))
	}
	return out, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
