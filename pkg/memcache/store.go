// pkg/memcache/store.go
package mem

import (
	"sync"

	"travelplanner/internal/models/db_models"
)

type Identifiable interface {
	GetID() string
}

// Store is the process-lifetime list used when the durable store is missing or failing.
// Items go in and come out as copies, so callers never share memory with the list.
type Store[T Identifiable] struct {
	mu    sync.RWMutex
	items []T
	clone func(T) T
}

func NewStore[T Identifiable](clone func(T) T) *Store[T] {
	return &Store[T]{clone: clone}
}

// Upsert replaces the item with the same id, or appends it.
func (s *Store[T]) Upsert(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item = s.clone(item)
	for i, existing := range s.items {
		if existing.GetID() == item.GetID() {
			s.items[i] = item
			return
		}
	}
	s.items = append(s.items, item)
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.GetID() == id {
			return s.clone(item), true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the item and reports whether it was present.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.GetID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Filter returns copies of the matching items in insertion order.
func (s *Store[T]) Filter(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range s.items {
		if match(item) {
			out = append(out, s.clone(item))
		}
	}
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

type PlanCache = Store[*db_models.TravelPlan]
type ExpenseCache = Store[*db_models.Expense]

func NewPlanCache() *PlanCache {
	return NewStore(func(p *db_models.TravelPlan) *db_models.TravelPlan { return p.Clone() })
}

func NewExpenseCache() *ExpenseCache {
	return NewStore(func(e *db_models.Expense) *db_models.Expense { return e.Clone() })
}
