package metrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/garden-api/internal/domain"
	"github.com/phrazzld/garden-api/internal/store"
)

// InstrumentedGardenStore records a metric for every call to the wrapped store.
type InstrumentedGardenStore struct {
	next      store.GardenStore
	collector *Collector
	now       func() time.Time
}

var _ store.GardenStore = (*InstrumentedGardenStore)(nil)

// NewInstrumentedGardenStore wraps next.
func NewInstrumentedGardenStore(next store.GardenStore, collector *Collector) *InstrumentedGardenStore {
	return &InstrumentedGardenStore{next: next, collector: collector, now: time.Now}
}

func (s *InstrumentedGardenStore) observe(operation string, start time.Time, err error) {
	s.collector.RecordStoreOperation(operation, err, s.now().Sub(start))
}

// Create implements store.GardenStore.Create
func (s *InstrumentedGardenStore) Create(
	ctx context.Context,
	username, name string,
	description *string,
) (*domain.OwnedGarden, error) {
	start := s.now()
	g, err := s.next.Create(ctx, username, name, description)
	s.observe("create", start, err)
	return g, err
}

// Get implements store.GardenStore.Get
func (s *InstrumentedGardenStore) Get(ctx context.Context, id int64) (*domain.GardenDetail, error) {
	start := s.now()
	g, err := s.next.Get(ctx, id)
	s.observe("get", start, err)
	return g, err
}

// FindAll implements store.GardenStore.FindAll
func (s *InstrumentedGardenStore) FindAll(ctx context.Context, username string) ([]domain.OwnedGarden, error) {
	start := s.now()
	gardens, err := s.next.FindAll(ctx, username)
	s.observe("find_all", start, err)
	if err == nil {
		s.collector.RecordGardensListed(len(gardens))
	}
	return gardens, err
}

// Update implements store.GardenStore.Update
func (s *InstrumentedGardenStore) Update(
	ctx context.Context,
	id int64,
	patch domain.GardenUpdate,
) (*domain.Garden, error) {
	start := s.now()
	g, err := s.next.Update(ctx, id, patch)
	s.observe("update", start, err)
	return g, err
}

// Remove implements store.GardenStore.Remove
func (s *InstrumentedGardenStore) Remove(ctx context.Context, id int64) (*domain.GardenRef, error) {
	start := s.now()
	ref, err := s.next.Remove(ctx, id)
	s.observe("remove", start, err)
	return ref, err
}

// IsOwner implements store.GardenStore.IsOwner
func (s *InstrumentedGardenStore) IsOwner(ctx context.Context, id int64, username string) (bool, error) {
	start := s.now()
	owns, err := s.next.IsOwner(ctx, id, username)
	s.observe("is_owner", start, err)
	return owns, err
}

// WithTx implements store.GardenStore.WithTx
// The transactional store stays instrumented.
func (s *InstrumentedGardenStore) WithTx(tx *sql.Tx) store.GardenStore {
	return &InstrumentedGardenStore{
		next:      s.next.WithTx(tx),
		collector: s.collector,
		now:       s.now,
	}
}
