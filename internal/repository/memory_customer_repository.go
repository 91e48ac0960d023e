package repository

import (
	"context"
	"sync"
	"time"

	"github.com/icconsult/customer-service/internal/domain"
)

// MemoryCustomerRepository is an in-memory CustomerRepository.
// It is safe for concurrent use and hands out copies, never shared pointers.
type MemoryCustomerRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Customer
	now  func() time.Time
}

// NewMemoryCustomerRepository returns a store seeded with the given records.
func NewMemoryCustomerRepository(seed ...domain.Customer) *MemoryCustomerRepository {
	r := &MemoryCustomerRepository{
		byID: make(map[string]domain.Customer, len(seed)),
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, c := range seed {
		r.byID[c.ID] = c
	}
	return r
}

func (r *MemoryCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return &c, nil
}

func (r *MemoryCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[customer.ID]
	if !ok {
		return ErrCustomerNotFound
	}
	existing.Overwrite(customer.Fields())
	existing.UpdatedAt = r.now()
	r.byID[customer.ID] = existing
	customer.UpdatedAt = existing.UpdatedAt
	return nil
}

// Len returns the number of stored records.
func (r *MemoryCustomerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
