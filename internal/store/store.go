package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"greengarden/internal/model"
)

// Store is the append-only order collection for one session. Orders are
// immutable once appended; Clear discards them wholesale but never rewinds
// the id counter, so identifiers stay unique for the whole session even
// across clears.
type Store struct {
	mu        sync.RWMutex
	sessionID string
	orders    []model.Order
	seq       int
}

func New() *Store {
	return &Store{sessionID: uuid.NewString()}
}

// SessionID identifies this store instance in logs.
func (s *Store) SessionID() string { return s.sessionID }

// NextID allocates the next order identifier: ORD0001, ORD0002, ...
func (s *Store) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("ORD%04d", s.seq)
}

// Append adds an order. The item map is copied so later mutation of the
// caller's map cannot reach the stored record.
func (s *Store) Append(order model.Order) {
	order.Items = order.CloneItems()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
}

// List returns a snapshot in insertion order.
func (s *Store) List() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.orders))
	for i, o := range s.orders {
		o.Items = o.CloneItems()
		out[i] = o
	}
	return out
}

// Get returns the order with the given id.
func (s *Store) Get(id string) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			o.Items = o.CloneItems()
			return o, true
		}
	}
	return model.Order{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// Clear discards all orders and reports how many were dropped. The sequence
// counter is left untouched.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.orders)
	s.orders = nil
	return n
}
