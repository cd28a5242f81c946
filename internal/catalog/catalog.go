// Package catalog holds the in-memory product catalog of the demo
// storefront. The store is seeded at construction and injected into
// its consumers; nothing in this package is process-global.
package catalog

import (
	"sort"
	"sync"

	"github.com/ManabBehera342/biztab-order-validation/internal/model"
)

// Store is a mutex-guarded product table. Stock is the only field
// mutated at runtime, by the fulfillment stage.
type Store struct {
	mu sync.RWMutex
	m  map[string]model.Product
}

// New creates a Store seeded with the demo catalog.
func New() *Store {
	s := &Store{m: make(map[string]model.Product, len(demoProducts))}
	for _, p := range demoProducts {
		s.m[p.ID] = p
	}
	return s
}

// Get returns a copy of the product with the given id.
func (s *Store) Get(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.m[id]
	return p, ok
}

// List returns all products sorted by id for stable rendering.
func (s *Store) List() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DecrementStock reduces a product's stock by qty. There is no
// sufficiency guard here: the inventory check preceding fulfillment is
// the only gate, and a stale check double-decrements. Unknown ids are
// a no-op.
func (s *Store) DecrementStock(id string, qty int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.m[id]
	if !ok {
		return
	}
	p.Stock -= qty
	s.m[id] = p
}

var demoProducts = []model.Product{
	{
		ID:          "P001",
		Name:        "Wireless Mouse",
		Price:       799,
		Stock:       15,
		Image:       "https://cdn-icons-png.flaticon.com/512/2919/2919592.png",
		Description: "Ergonomic wireless mouse with adjustable DPI and long battery life.",
	},
	{
		ID:          "P002",
		Name:        "Mechanical Keyboard",
		Price:       2499,
		Stock:       5,
		Image:       "https://cdn-icons-png.flaticon.com/512/2920/2920244.png",
		Description: "Compact mechanical keyboard with tactile switches and RGB backlight.",
	},
	{
		ID:          "P003",
		Name:        "USB-C Charger",
		Price:       999,
		Stock:       0,
		Image:       "https://cdn-icons-png.flaticon.com/512/2910/2910768.png",
		Description: "Fast charging USB-C charger compatible with phones and laptops.",
	},
	{
		ID:          "P004",
		Name:        "Noise Cancelling Headphones",
		Price:       5999,
		Stock:       8,
		Image:       "https://cdn-icons-png.flaticon.com/512/2921/2921822.png",
		Description: "Over-ear headphones with active noise cancellation and rich sound.",
	},
	{
		ID:          "P005",
		Name:        "Laptop Stand",
		Price:       1299,
		Stock:       20,
		Image:       "https://cdn-icons-png.flaticon.com/512/2920/2920329.png",
		Description: "Adjustable aluminum laptop stand for better posture and airflow.",
	},
}
