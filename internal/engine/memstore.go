package engine

import (
	"sync"
	"time"

	"github.com/crmforge-dev/crmforge/pkg/schema"
)

// MemStore is the thread-safe in-memory record store. It owns its records
// exclusively for the lifetime of the process; there is no durability.
type MemStore struct {
	mu        sync.RWMutex
	customers []schema.Customer
	nextID    int
}

// NewMemStore initializes a store with the given records. The id counter
// starts above the highest seeded id and is never reused, even after deletes.
func NewMemStore(initial []schema.Customer) *MemStore {
	maxID := 0
	customers := make([]schema.Customer, 0, len(initial))
	for _, c := range initial {
		if c.ID > maxID {
			maxID = c.ID
		}
		customers = append(customers, c.Clone())
	}
	return &MemStore{
		customers: customers,
		nextID:    maxID + 1,
	}
}

// --- Interface Implementation ---

func (m *MemStore) GetAll() []schema.Customer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]schema.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c.Clone())
	}
	return out
}

func (m *MemStore) GetByID(id int) (schema.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.customers {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return schema.Customer{}, ErrCustomerNotFound
}

func (m *MemStore) Insert(in schema.CustomerInput) schema.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	c := fromInput(in)
	c.ID = m.nextID
	c.DateCreated = now
	c.LastUpdated = now
	m.nextID++

	m.customers = append(m.customers, c)
	return c.Clone()
}

// Update is a full replace, not a partial merge: every caller-supplied field
// is overwritten wholesale. Only id and dateCreated survive.
func (m *MemStore) Update(id int, in schema.CustomerInput) (schema.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.customers {
		if c.ID != id {
			continue
		}
		updated := fromInput(in)
		updated.ID = c.ID
		updated.DateCreated = c.DateCreated
		updated.LastUpdated = time.Now().UTC()
		m.customers[i] = updated
		return updated.Clone(), nil
	}
	return schema.Customer{}, ErrCustomerNotFound
}

func (m *MemStore) Delete(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.customers {
		if c.ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the number of live records.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.customers)
}

// fromInput copies the caller-supplied fields into a fresh record, leaving
// id and timestamps zero for the caller to assign.
func fromInput(in schema.CustomerInput) schema.Customer {
	tags := make([]string, len(in.Tags))
	copy(tags, in.Tags)
	return schema.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Position:  in.Position,
		Status:    in.Status,
		Address:   in.Address,
		Tags:      tags,
		Revenue:   in.Revenue,
	}
}
