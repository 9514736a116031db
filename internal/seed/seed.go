// Package seed loads demo users and meetings from a JSON file at startup.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Khetesh-Deore/backend-Arthankur/internal/store"
)

type SeedUser struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

type SeedData struct {
	Users    []SeedUser                     `json:"users"`
	Meetings map[string]store.MeetingRecord `json:"meetings"`
}

// PasswordHasher turns a plaintext seed password into the stored hash.
type PasswordHasher func(password string) (string, error)

// LoadFromFile reads seed data from a JSON file and populates the store.
// Returns nil if path is empty (seeding disabled). Users whose email or id
// is already registered and meetings whose id already exists are skipped.
// An invalid meeting fails the whole seed before anything is written.
func LoadFromFile(path string, s *store.BBoltStore, hash PasswordHasher) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file %s: %w", path, err)
	}

	var sd SeedData
	if err := json.Unmarshal(data, &sd); err != nil {
		return fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	for id, rec := range sd.Meetings {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("seed file %s: meeting %s: %w", path, id, err)
		}
	}

	records, err := userRecords(sd.Users, hash)
	if err != nil {
		return fmt.Errorf("preparing seed users from %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"users":    len(records),
		"meetings": len(sd.Meetings),
	}).Info("seeding from file")

	if err := s.SeedUsers(records); err != nil {
		return err
	}
	return s.SeedMeetings(sd.Meetings)
}

func userRecords(in []SeedUser, hash PasswordHasher) ([]store.UserRecord, error) {
	now := time.Now().UTC()
	out := make([]store.UserRecord, 0, len(in))

	for _, u := range in {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if email == "" || u.Password == "" {
			return nil, fmt.Errorf("seed user %q needs an email and a password", u.Name)
		}

		h, err := hash(u.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %s: %w", email, err)
		}

		id := u.ID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, store.UserRecord{
			ID:           id,
			Name:         strings.TrimSpace(u.Name),
			Email:        email,
			UserType:     u.UserType,
			PasswordHash: h,
			CreatedAt:    now,
		})
	}
	return out, nil
}
