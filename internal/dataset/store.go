package dataset

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Provider is the read surface the dashboard handlers depend on.
type Provider interface {
	Get(ctx context.Context) (*Dataset, error)
	Generation() string
	LoadedAt() time.Time
}

// Store memoizes the loaded dataset for the process lifetime. The dataset
// itself is immutable; Reload swaps the pointer wholesale so readers either
// see the old generation or the new one, never a partial load.
type Store struct {
	src    Source
	logger *slog.Logger

	mu         sync.RWMutex
	ds         *Dataset
	generation string
	loadedAt   time.Time
}

var _ Provider = (*Store)(nil)

// NewStore creates a Store. Nothing is loaded until the first Get.
func NewStore(src Source, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{src: src, logger: logger}
}

// Get returns the cached dataset, loading it on first use.
func (s *Store) Get(ctx context.Context) (*Dataset, error) {
	s.mu.RLock()
	ds := s.ds
	s.mu.RUnlock()
	if ds != nil {
		return ds, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds != nil {
		// Another caller won the race while we waited for the lock.
		return s.ds, nil
	}
	return s.loadLocked(ctx)
}

// Reload discards the cached dataset and loads a fresh generation. Callers
// holding the old *Dataset keep a consistent view until their pass finishes.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.loadLocked(ctx)
	return err
}

// Generation identifies the currently cached load. Empty before first load.
func (s *Store) Generation() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// LoadedAt reports when the current generation was loaded.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *Store) loadLocked(ctx context.Context) (*Dataset, error) {
	ds, err := Load(ctx, s.src, s.logger)
	if err != nil {
		return nil, err
	}

	s.ds = ds
	s.generation = uuid.NewString()
	s.loadedAt = time.Now()
	s.logger.Info("dataset generation cached", "generation", s.generation, "rows", ds.Len())
	return ds, nil
}
