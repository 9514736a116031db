package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	meetingsBucket     = []byte("meetings")
	participantsBucket = []byte("meeting_participants")
	usersBucket        = []byte("users")
	userEmailsBucket   = []byte("user_emails")
)

// BBoltStore keeps meetings and users in a single bbolt file. Meeting records
// live in the meetings bucket keyed by id; meeting_participants holds one
// nested bucket per user id listing the meetings that user takes part in.
// user_emails maps a lower-cased email to the owning user id.
type BBoltStore struct {
	db *bolt.DB
}

var (
	_ MeetingStore = (*BBoltStore)(nil)
	_ UserStore    = (*BBoltStore)(nil)
)

func NewBBoltStore(path string) (*BBoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bbolt db at %s: %w", path, err)
	}

	// Reason: buckets must exist before any read/write operations
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{meetingsBucket, participantsBucket, usersBucket, userEmailsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("creating %s bucket: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BBoltStore{db: db}, nil
}

func (s *BBoltStore) Close() error {
	return s.db.Close()
}
