package store

import (
	"sync"

	"github.com/google/btree"
	"github.com/lfreitas/stocktrade/internal/domain"
)

// orderEntry keys an order by its insertion sequence so the tree
// iterates in creation order.
type orderEntry struct {
	seq   uint64
	order *domain.Order
}

func entryLess(a, b orderEntry) bool {
	return a.seq < b.seq
}

// OrderStore is a thread-safe in-memory store holding two insertion-ordered
// collections, one per order kind. It never rejects a well-formed order;
// validation is the workflow's responsibility. There are no update or
// delete operations.
//
// Reads take an O(1) copy-on-write clone of the tree and iterate it outside
// the lock, so returned snapshots are unaffected by concurrent writes.
// Clone mutates the tree's copy-on-write context, so it needs the same
// mutual exclusion as Add.
type OrderStore struct {
	mu    sync.Mutex
	seq   uint64
	buys  *btree.BTreeG[orderEntry]
	sells *btree.BTreeG[orderEntry]
}

// NewOrderStore creates an empty OrderStore.
func NewOrderStore() *OrderStore {
	const degree = 32
	return &OrderStore{
		buys:  btree.NewG(degree, entryLess),
		sells: btree.NewG(degree, entryLess),
	}
}

// tree selects the collection for a kind, or nil for an unknown kind.
func (s *OrderStore) tree(kind domain.OrderKind) *btree.BTreeG[orderEntry] {
	switch kind {
	case domain.OrderKindBuy:
		return s.buys
	case domain.OrderKindSell:
		return s.sells
	}
	return nil
}

// Add appends an order to the collection for its kind.
func (s *OrderStore) Add(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tree(o.Kind)
	if t == nil {
		return
	}
	s.seq++
	t.ReplaceOrInsert(orderEntry{seq: s.seq, order: o})
}

// List returns a snapshot of all orders of the given kind in insertion
// order. Mutating the returned slice does not affect the store.
func (s *OrderStore) List(kind domain.OrderKind) []*domain.Order {
	s.mu.Lock()
	t := s.tree(kind)
	if t == nil {
		s.mu.Unlock()
		return []*domain.Order{}
	}
	clone := t.Clone()
	s.mu.Unlock()

	orders := make([]*domain.Order, 0, clone.Len())
	clone.Ascend(func(e orderEntry) bool {
		orders = append(orders, e.order)
		return true
	})
	return orders
}

// Count returns the number of orders of the given kind.
func (s *OrderStore) Count(kind domain.OrderKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tree(kind)
	if t == nil {
		return 0
	}
	return t.Len()
}
