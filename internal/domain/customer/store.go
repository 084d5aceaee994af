package customer

import (
	"context"
	"customer-catalog/internal/pkg/apperrors"
	"fmt"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ErrPositionOutOfRange is returned by FindByPosition for a position outside
// [0, count). It also matches apperrors.ErrOutOfRange.
var ErrPositionOutOfRange = fmt.Errorf("customer %w", apperrors.ErrOutOfRange)

// Store serves the customer catalog. Positions are zero-based indexes into
// the stored sequence and are unrelated to Customer.ID. FindByPosition
// signals a bad position with an error matching apperrors.ErrOutOfRange.
type Store interface {
	FindByPosition(ctx context.Context, position int) (Customer, error)

	FindAll(ctx context.Context) []Customer
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an immutable in-memory catalog, safe for concurrent reads.
type MemoryStore struct {
	customers []Customer
}

// NewMemoryStore copies customers; later changes to the argument are not seen.
func NewMemoryStore(customers []Customer) *MemoryStore {
	return &MemoryStore{customers: slices.Clone(customers)}
}

// NewReferenceStore seeds the reference catalog.
func NewReferenceStore(size int, firstReference int32) *MemoryStore {
	return &MemoryStore{customers: SeedReferenceCatalog(size, firstReference)}
}

func (s *MemoryStore) FindByPosition(_ context.Context, position int) (Customer, error) {
	if position < 0 || position >= len(s.customers) {
		return Customer{}, fmt.Errorf("%w: position %d, count %d", ErrPositionOutOfRange, position, len(s.customers))
	}
	return s.customers[position], nil
}

// FindAll returns the records in insertion order. The slice is a copy.
func (s *MemoryStore) FindAll(_ context.Context) []Customer {
	if s.customers == nil {
		return []Customer{}
	}
	return slices.Clone(s.customers)
}

func (s *MemoryStore) Count() int {
	return len(s.customers)
}

// Fingerprint hashes every attribute of customers in order.
func Fingerprint(customers []Customer) uint64 {
	d := xxhash.New()
	var buf []byte
	for i := range customers {
		c := &customers[i]
		buf = strconv.AppendInt(buf[:0], int64(c.ID), 10)
		buf = append(buf, 0)
		_, _ = d.Write(buf)
		for _, f := range textFields {
			_, _ = d.WriteString(*f.Ref(c))
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.Write([]byte{'\n'})
	}
	return d.Sum64()
}
