package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

func emailKey(email string) []byte {
	return []byte(strings.ToLower(strings.TrimSpace(email)))
}

// CreateUser stores rec and claims its email. Fails with ErrEmailTaken when
// another user already owns the email.
func (s *BBoltStore) CreateUser(_ context.Context, rec UserRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return putUser(tx, rec)
	})
}

func (s *BBoltStore) GetUser(_ context.Context, id string) (*UserRecord, error) {
	var record *UserRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		r, err := getUser(tx, id)
		if err != nil {
			return err
		}
		record = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (s *BBoltStore) GetUserByEmail(_ context.Context, email string) (*UserRecord, error) {
	var record *UserRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(userEmailsBucket).Get(emailKey(email))
		if id == nil {
			return nil
		}
		r, err := getUser(tx, string(id))
		if err != nil {
			return err
		}
		record = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListUsers returns every user ordered by name, then email.
func (s *BBoltStore) ListUsers(_ context.Context) ([]UserRecord, error) {
	result := []UserRecord{}

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(usersBucket).ForEach(func(k, v []byte) error {
			var r UserRecord
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshaling user %s: %w", string(k), err)
			}
			result = append(result, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].Email < result[j].Email
	})
	return result, nil
}

// SeedUsers loads user records, skipping emails that are already registered.
func (s *BBoltStore) SeedUsers(users []UserRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, rec := range users {
			if tx.Bucket(userEmailsBucket).Get(emailKey(rec.Email)) != nil {
				log.WithField("email", rec.Email).Debug("seed: user already exists, skipping")
				continue
			}
			if tx.Bucket(usersBucket).Get([]byte(rec.ID)) != nil {
				log.WithField("id", rec.ID).Debug("seed: user id already taken, skipping")
				continue
			}
			if err := putUser(tx, rec); err != nil {
				return fmt.Errorf("seeding user %s: %w", rec.Email, err)
			}
			log.WithField("id", rec.ID).Info("seeded user")
		}
		return nil
	})
}

func getUser(tx *bolt.Tx, id string) (*UserRecord, error) {
	data := tx.Bucket(usersBucket).Get([]byte(id))
	if data == nil {
		return nil, nil
	}

	var r UserRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshaling user %s: %w", id, err)
	}
	return &r, nil
}

func putUser(tx *bolt.Tx, rec UserRecord) error {
	emails := tx.Bucket(userEmailsBucket)
	key := emailKey(rec.Email)
	if owner := emails.Get(key); owner != nil && string(owner) != rec.ID {
		return fmt.Errorf("creating user %s: %w", rec.Email, ErrEmailTaken)
	}

	// release the old email when an existing user is rewritten
	prev, err := getUser(tx, rec.ID)
	if err != nil {
		return err
	}
	if prev != nil {
		if old := emailKey(prev.Email); string(old) != string(key) {
			if err := emails.Delete(old); err != nil {
				return fmt.Errorf("releasing email for user %s: %w", rec.ID, err)
			}
		}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling user %s: %w", rec.ID, err)
	}
	if err := tx.Bucket(usersBucket).Put([]byte(rec.ID), data); err != nil {
		return fmt.Errorf("writing user %s: %w", rec.ID, err)
	}
	if err := emails.Put(key, []byte(rec.ID)); err != nil {
		return fmt.Errorf("indexing email for user %s: %w", rec.ID, err)
	}
	return nil
}
