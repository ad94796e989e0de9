package application

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dentalcare360/storefront/internal/domain/entity"
	"github.com/dentalcare360/storefront/internal/domain/repository"
)

const keyCart = "cart"

// CartStore owns the cart aggregate: an ordered list of lines plus the
// drawer-open flag. Every mutation updates memory first and then writes the
// full line list through to storage; persisted state may lag memory at a
// crash but is never ahead of it.
type CartStore struct {
	mu     sync.Mutex
	kv     repository.KVStore
	logger *logrus.Logger
	lines  []entity.CartLine
	open   bool
}

// NewCartStore hydrates the cart from storage. A missing or malformed record
// yields an empty cart, never an error.
func NewCartStore(ctx context.Context, kv repository.KVStore, logger *logrus.Logger) *CartStore {
	s := &CartStore{kv: kv, logger: logger}
	if raw, ok := kv.Get(ctx, keyCart); ok {
		if err := json.Unmarshal([]byte(raw), &s.lines); err != nil {
			if logger != nil {
				logger.WithError(err).Warn("stored cart unreadable, starting empty")
			}
			s.lines = nil
		}
	}
	return s
}

// AddItem merges the product into the cart: an existing line for the same
// product id has its quantity incremented, otherwise a new line is appended.
// Adding always opens the drawer. Quantities below one count as one.
func (s *CartStore) AddItem(ctx context.Context, product entity.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := false
	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, entity.CartLine{Product: product, Quantity: quantity})
	}
	s.open = true
	s.persistLocked(ctx)
}

// RemoveItem deletes the line for the product id; unknown ids are a no-op.
func (s *CartStore) RemoveItem(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, productID)
}

// UpdateQuantity replaces the line's quantity. A quantity of zero or less
// removes the line instead, keeping every remaining line at quantity >= 1.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(ctx, productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.persistLocked(ctx)
}

// Clear empties the cart. Called by checkout after an order is placed.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persistLocked(ctx)
}

// Lines returns a copy of the current lines in insertion order.
func (s *CartStore) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// ItemCount is the sum of line quantities.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Total is the sum of line subtotals at effective prices. Computed on demand
// so it can never go stale.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// Open marks the cart drawer visible.
func (s *CartStore) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

// Close hides the cart drawer.
func (s *CartStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// IsOpen reports the drawer flag. The flag is ephemeral and not persisted.
func (s *CartStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *CartStore) removeLocked(ctx context.Context, productID int) {
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.Product.ID != productID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	s.persistLocked(ctx)
}

// persistLocked writes the full line list through to storage. Cart mutations
// never fail; a write error is logged and memory stays authoritative.
func (s *CartStore) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.lines)
	if err == nil {
		err = s.kv.Set(ctx, keyCart, string(raw))
	}
	if err != nil && s.logger != nil {
		s.logger.WithError(err).Warn("cart write-through failed")
	}
}
