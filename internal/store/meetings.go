package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

func (s *BBoltStore) CreateMeeting(_ context.Context, rec MeetingRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(meetingsBucket)
		if b.Get([]byte(rec.ID)) != nil {
			return fmt.Errorf("creating meeting %s: %w", rec.ID, ErrMeetingExists)
		}
		return putMeeting(tx, rec)
	})
}

func (s *BBoltStore) GetMeeting(_ context.Context, id string) (*MeetingRecord, error) {
	var record *MeetingRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		r, err := getMeeting(tx, id)
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

// ListMeetingsFor returns every meeting userID participates in, newest first.
func (s *BBoltStore) ListMeetingsFor(_ context.Context, userID string) ([]MeetingRecord, error) {
	result := []MeetingRecord{}

	err := s.db.View(func(tx *bolt.Tx) error {
		idx := tx.Bucket(participantsBucket).Bucket([]byte(userID))
		if idx == nil {
			return nil
		}
		return idx.ForEach(func(k, _ []byte) error {
			r, err := getMeeting(tx, string(k))
			if err != nil {
				return err
			}
			if r == nil {
				log.WithField("meeting_id", string(k)).Warn("participant index points at missing meeting")
				return nil
			}
			result = append(result, *r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(result)
	return result, nil
}

// UpdateMeeting loads the meeting, applies fn and writes the result back in a
// single transaction. Concurrent updates of the same meeting are serialised.
func (s *BBoltStore) UpdateMeeting(_ context.Context, id string, fn MeetingMutator) (*MeetingRecord, error) {
	var record *MeetingRecord

	err := s.db.Update(func(tx *bolt.Tx) error {
		r, err := getMeeting(tx, id)
		if err != nil {
			return err
		}
		if r == nil {
			return nil
		}

		if err := fn(r); err != nil {
			return err
		}
		// Reason: the mutator must not move the record to another key
		r.ID = id

		if err := putMeeting(tx, *r); err != nil {
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

// SeedMeetings inserts meetings, skipping ids that already exist.
func (s *BBoltStore) SeedMeetings(meetings map[string]MeetingRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(meetingsBucket)
		for id, rec := range meetings {
			if err := rec.Validate(); err != nil {
				return fmt.Errorf("seeding meeting %s: %w", id, err)
			}
			if b.Get([]byte(id)) != nil {
				log.WithField("id", id).Debug("seed: meeting already exists, skipping")
				continue
			}
			rec.ID = id
			if err := putMeeting(tx, rec); err != nil {
				return fmt.Errorf("seeding meeting %s: %w", id, err)
			}
			log.WithField("id", id).Info("seeded meeting")
		}
		return nil
	})
}

func (s *BBoltStore) GetAllMeetings(_ context.Context) (map[string]MeetingRecord, error) {
	result := make(map[string]MeetingRecord)

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(meetingsBucket)
		return b.ForEach(func(k, v []byte) error {
			var r MeetingRecord
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshaling meeting %s: %w", string(k), err)
			}
			result[string(k)] = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ReplaceAllMeetings drops every meeting and the participant index, then
// writes meetings in their place. Nothing is replaced if any record fails
// Validate.
func (s *BBoltStore) ReplaceAllMeetings(_ context.Context, meetings map[string]MeetingRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{meetingsBucket, participantsBucket} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("deleting %s bucket: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("recreating %s bucket: %w", name, err)
			}
		}
		for id, rec := range meetings {
			rec.ID = id
			if err := rec.Validate(); err != nil {
				return fmt.Errorf("meeting %s: %w", id, err)
			}
			if err := putMeeting(tx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func getMeeting(tx *bolt.Tx, id string) (*MeetingRecord, error) {
	data := tx.Bucket(meetingsBucket).Get([]byte(id))
	if data == nil {
		return nil, nil
	}

	var r MeetingRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshaling meeting %s: %w", id, err)
	}
	return &r, nil
}

// putMeeting writes the record and makes sure both participants index it.
func putMeeting(tx *bolt.Tx, rec MeetingRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling meeting %s: %w", rec.ID, err)
	}
	if err := tx.Bucket(meetingsBucket).Put([]byte(rec.ID), data); err != nil {
		return fmt.Errorf("writing meeting %s: %w", rec.ID, err)
	}

	idx := tx.Bucket(participantsBucket)
	for _, userID := range []string{rec.RequestedBy, rec.RequestedTo} {
		if userID == "" {
			continue
		}
		ub, err := idx.CreateBucketIfNotExists([]byte(userID))
		if err != nil {
			return fmt.Errorf("indexing meeting %s for %s: %w", rec.ID, userID, err)
		}
		if err := ub.Put([]byte(rec.ID), []byte(rec.CreatedAt.UTC().Format(time.RFC3339Nano))); err != nil {
			return fmt.Errorf("indexing meeting %s for %s: %w", rec.ID, userID, err)
		}
	}
	return nil
}

func sortNewestFirst(ms []MeetingRecord) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].CreatedAt.After(ms[j].CreatedAt)
	})
}
