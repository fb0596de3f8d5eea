// Package catalog, as part of the product catalog module.
// This file, `store.go`, implements the Catalog Store: the ordered, mutable,
// in-memory collection of products. In the original backend this was a
// module-level `let products = [...]` array; here it is an owned object
// injected into the handlers, so tests get a fresh store each and the storage
// could be swapped without touching handler logic.
package catalog

import (
	"fmt"
	"sync"
	"time"

	"github.com/user/market-go/apperror"
)

// notFoundMessage is the contract string for a missing product id.
const notFoundMessage = "Producto no encontrado"

// Store holds the authoritative in-memory set of products for the process
// lifetime, most-recently-created first.
//
// Go handlers run on a preemptive runtime, so unlike the original's
// single-threaded event loop the slice needs an explicit mutual-exclusion
// guard: every read and mutation happens under `mu`.
type Store struct {
	mu       sync.Mutex
	products []Product
	// lastID is the highest id issued so far. Ids are seeded from wall-clock
	// milliseconds (keeping the original's id scheme and magnitude) but are
	// forced strictly monotonic, so rapid successive inserts within the same
	// millisecond can never collide.
	lastID int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore returns a store preloaded with the demo catalog.
func NewSeededStore() *Store {
	s := NewStore()
	s.products = seedProducts()
	for _, p := range s.products {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	return s
}

// nextID issues a unique id. Must be called with `mu` held.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// List returns the full ordered sequence of products, most recent first.
// It always succeeds. The returned slice is a copy, so callers can't reach
// into the store's internal state.
func (s *Store) List() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the matching id.
// Linear scan: O(n) is fine at demo-catalog scale.
func (s *Store) Get(id int64) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, apperror.NewNotFoundError(notFoundMessage, nil)
}

// Insert assigns a unique id to the record, prepends it to the sequence and
// returns the stored record. Prepending is what makes List() most-recent-first;
// that ordering is a product of this design, not an accident.
func (s *Store) Insert(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID()
	s.products = append([]Product{p}, s.products...)
	return p
}

// Remove deletes the first record with the matching id and returns it.
// Delete is not idempotent: once a record is gone, removing the same id
// again reports not-found.
func (s *Store) Remove(id int64) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return p, nil
		}
	}
	return Product{}, apperror.NewNotFoundError(notFoundMessage, nil)
}

// Len reports the number of products currently stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

// String implements fmt.Stringer for debug logging.
func (s *Store) String() string {
	return fmt.Sprintf("catalog.Store(%d products)", s.Len())
}
