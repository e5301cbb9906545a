// Package records holds the office's in-memory aggregate and every named
// operation allowed to change it. Each mutation validates first, applies
// the change, then hands the whole aggregate to the Persister.
package records

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"alkhair/internal/metrics"
	"alkhair/pkg/types"

	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// Persister stores and returns the entire aggregate. There is no partial
// save.
type Persister interface {
	Load(ctx context.Context) (*types.AppData, error)
	Save(ctx context.Context, data *types.AppData) error
}

// SaveError is returned when a mutation was applied in memory but the
// following save failed. The change is not rolled back.
type SaveError struct {
	Op  string
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save after %s: %v", e.Op, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

type Option func(*Store)

// WithClock replaces time.Now for ids and default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store serializes all reads and writes with one mutex; saves run while
// the lock is held so two writes never interleave.
type Store struct {
	mu        sync.Mutex
	data      *types.AppData
	persister Persister
	logger    logrus.FieldLogger
	now       func() time.Time
	lastID    int64
}

// New returns an empty store. A nil persister keeps everything in memory.
func New(persister Persister, opts ...Option) *Store {
	s := &Store{
		data:      types.NewAppData(),
		persister: persister,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.logger = l
	}
	return s
}

// Open returns a store populated from the persister.
func Open(ctx context.Context, persister Persister, opts ...Option) (*Store, error) {
	s := New(persister, opts...)
	if persister == nil {
		return s, nil
	}

	data, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load office data: %w", err)
	}
	if data == nil {
		data = types.NewAppData()
	}
	data.Normalize()

	s.data = data
	s.lastID = data.MaxID()

	s.logger.WithFields(logrus.Fields{
		"cases":      len(data.Cases),
		"donations":  len(data.Donations),
		"expenses":   len(data.Expenses),
		"volunteers": len(data.Volunteers),
		"affidavits": len(data.Affidavits),
	}).Info("office data loaded")

	return s, nil
}

// Snapshot returns a deep copy of the aggregate.
func (s *Store) Snapshot() *types.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Replace swaps in a whole aggregate (file import) and saves it.
func (s *Store) Replace(ctx context.Context, data *types.AppData) error {
	if data == nil {
		return &types.ValidationError{Reason: "no data to import"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data = data.Clone()
	data.Normalize()
	s.data = data
	if highest := data.MaxID(); highest > s.lastID {
		s.lastID = highest
	}
	return s.commit(ctx, "replace")
}

// nextID hands out creation-time ids: the current Unix millisecond, bumped
// when needed so ids stay unique and increasing.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}

func (s *Store) commit(ctx context.Context, op string) error {
	metrics.Mutations.WithLabelValues(op).Inc()
	if s.persister == nil {
		return nil
	}

	started := time.Now()
	err := s.persister.Save(ctx, s.data)
	metrics.SaveDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.SaveFailures.Inc()
		s.logger.WithError(err).WithField("operation", op).Error("failed to save office data")
		return &SaveError{Op: op, Err: err}
	}

	s.logger.WithField("operation", op).Debug("office data saved")
	return nil
}

func (s *Store) caseIndex(id int64) int {
	for i := range s.data.Cases {
		if s.data.Cases[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) donationIndex(id int64) int {
	for i := range s.data.Donations {
		if s.data.Donations[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) expenseIndex(id int64) int {
	for i := range s.data.Expenses {
		if s.data.Expenses[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) volunteerIndex(id int64) int {
	for i := range s.data.Volunteers {
		if s.data.Volunteers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) affidavitIndex(id int64) int {
	for i := range s.data.Affidavits {
		if s.data.Affidavits[i].ID == id {
			return i
		}
	}
	return -1
}
