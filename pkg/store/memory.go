package store

import (
	"context"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/teapotframework/teabrew/pkg/model"
)

// MemoryStore implements Store using in-process maps. A single mutex
// guards every collection so cross-entity operations such as the brew
// delete cascade stay atomic.
type MemoryStore struct {
	log logrus.FieldLogger

	mu      sync.Mutex
	teapots collection[model.Teapot]
	teas    collection[model.Tea]
	brews   collection[model.Brew]
	steeps  collection[model.Steep]
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore(log logrus.FieldLogger) Store {
	return &MemoryStore{
		log:     log.WithField("component", "store"),
		teapots: newCollection[model.Teapot](),
		teas:    newCollection[model.Tea](),
		brews:   newCollection[model.Brew](),
		steeps:  newCollection[model.Steep](),
	}
}

// Start marks the store ready. Nothing is persisted, so there is no
// connection to open.
func (s *MemoryStore) Start(ctx context.Context) error {
	s.log.Info("Starting in-memory store")

	return nil
}

// Stop releases the store. All data is discarded with the process.
func (s *MemoryStore) Stop() error {
	return nil
}

// Ping reports storage health. The in-memory store is healthy as long
// as the process is running.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// =============================================================================
// Teapots
// =============================================================================

func (s *MemoryStore) CreateTeapot(ctx context.Context, teapot model.Teapot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teapots.set(teapot.ID, teapot)

	return nil
}

func (s *MemoryStore) GetTeapot(ctx context.Context, id string) (*model.Teapot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teapot, ok := s.teapots.get(id)
	if !ok {
		return nil, nil
	}

	return &teapot, nil
}

func (s *MemoryStore) ListTeapots(ctx context.Context, query model.TeapotQuery) ([]model.Teapot, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := filterItems(s.teapots.list(), func(t model.Teapot) bool {
		if query.Material != nil && t.Material != *query.Material {
			return false
		}

		if query.Style != nil && t.Style != *query.Style {
			return false
		}

		return true
	})

	return paginate(items, query.Page, query.Limit), len(items), nil
}

func (s *MemoryStore) UpdateTeapot(ctx context.Context, teapot model.Teapot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teapots.set(teapot.ID, teapot)

	return nil
}

func (s *MemoryStore) DeleteTeapot(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.teapots.delete(id), nil
}

// =============================================================================
// Teas
// =============================================================================

func (s *MemoryStore) CreateTea(ctx context.Context, tea model.Tea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teas.set(tea.ID, tea)

	return nil
}

func (s *MemoryStore) GetTea(ctx context.Context, id string) (*model.Tea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tea, ok := s.teas.get(id)
	if !ok {
		return nil, nil
	}

	return &tea, nil
}

func (s *MemoryStore) ListTeas(ctx context.Context, query model.TeaQuery) ([]model.Tea, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := filterItems(s.teas.list(), func(t model.Tea) bool {
		if query.Type != nil && t.Type != *query.Type {
			return false
		}

		if query.CaffeineLevel != nil && t.CaffeineLevel != *query.CaffeineLevel {
			return false
		}

		return true
	})

	return paginate(items, query.Page, query.Limit), len(items), nil
}

func (s *MemoryStore) UpdateTea(ctx context.Context, tea model.Tea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teas.set(tea.ID, tea)

	return nil
}

func (s *MemoryStore) DeleteTea(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.teas.delete(id), nil
}

// =============================================================================
// Brews
// =============================================================================

func (s *MemoryStore) CreateBrew(ctx context.Context, brew model.Brew) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.brews.set(brew.ID, brew)

	return nil
}

func (s *MemoryStore) GetBrew(ctx context.Context, id string) (*model.Brew, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	brew, ok := s.brews.get(id)
	if !ok {
		return nil, nil
	}

	return &brew, nil
}

func (s *MemoryStore) ListBrews(ctx context.Context, query model.BrewQuery) ([]model.Brew, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := filterItems(s.brews.list(), func(b model.Brew) bool {
		if query.Status != nil && b.Status != *query.Status {
			return false
		}

		if query.TeapotID != "" && b.TeapotID != query.TeapotID {
			return false
		}

		if query.TeaID != "" && b.TeaID != query.TeaID {
			return false
		}

		return true
	})

	return paginate(items, query.Page, query.Limit), len(items), nil
}

func (s *MemoryStore) ListBrewsByTeapot(ctx context.Context, teapotID string, page model.PageQuery) ([]model.Brew, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := filterItems(s.brews.list(), func(b model.Brew) bool {
		return b.TeapotID == teapotID
	})

	return paginate(items, page.Page, page.Limit), len(items), nil
}

func (s *MemoryStore) UpdateBrew(ctx context.Context, brew model.Brew) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.brews.set(brew.ID, brew)

	return nil
}

// DeleteBrew removes a brew and cascades to its steeps.
func (s *MemoryStore) DeleteBrew(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.brews.delete(id) {
		return false, nil
	}

	for _, steep := range s.steeps.list() {
		if steep.BrewID == id {
			s.steeps.delete(steep.ID)
		}
	}

	return true, nil
}

// =============================================================================
// Steeps
// =============================================================================

// CreateSteep stores a new steep, assigning the next steep number for
// its brew.
func (s *MemoryStore) CreateSteep(ctx context.Context, steep model.Steep) (model.Steep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1

	for _, existing := range s.steeps.list() {
		if existing.BrewID == steep.BrewID && existing.SteepNumber >= next {
			next = existing.SteepNumber + 1
		}
	}

	steep.SteepNumber = next
	s.steeps.set(steep.ID, steep)

	return steep, nil
}

// ListSteepsByBrew returns a brew's steeps ordered by steep number.
func (s *MemoryStore) ListSteepsByBrew(ctx context.Context, brewID string, page model.PageQuery) ([]model.Steep, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := filterItems(s.steeps.list(), func(st model.Steep) bool {
		return st.BrewID == brewID
	})

	slices.SortFunc(items, func(a, b model.Steep) int {
		return a.SteepNumber - b.SteepNumber
	})

	return paginate(items, page.Page, page.Limit), len(items), nil
}

// =============================================================================
// Collections
// =============================================================================

// collection keeps items addressable by id while preserving insertion
// order for listings.
type collection[T any] struct {
	items map[string]T
	order []string
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) set(id string, item T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}

	c.items[id] = item
}

func (c *collection[T]) get(id string) (T, bool) {
	item, ok := c.items[id]

	return item, ok
}

func (c *collection[T]) delete(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}

	delete(c.items, id)

	c.order = slices.DeleteFunc(c.order, func(existing string) bool {
		return existing == id
	})

	return true
}

func (c *collection[T]) list() []T {
	items := make([]T, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.items[id])
	}

	return items
}

// filterItems returns the items matching keep, preserving order.
func filterItems[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))

	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}

	return out
}

// paginate slices items down to the requested page. The returned slice
// is never nil, so empty pages serialize as [] rather than null.
func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+limit, len(items))

	return items[start:end:end]
}
