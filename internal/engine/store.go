// Package engine holds the authoritative in-memory customer store.
package engine

import (
	"errors"

	"github.com/crmforge-dev/crmforge/pkg/schema"
)

// ErrCustomerNotFound is returned when no live record carries the requested id.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerStore is the contract for the record store. Reads hand out copies;
// no caller ever holds a mutable reference to stored state.
type CustomerStore interface {
	// GetAll returns every live record. Order is insertion order, but callers
	// must not rely on it: the query pipeline re-sorts.
	GetAll() []schema.Customer
	// GetByID returns the record with the given id, or ErrCustomerNotFound.
	GetByID(id int) (schema.Customer, error)
	// Insert stores a new record, assigning the next id and both timestamps.
	Insert(in schema.CustomerInput) schema.Customer
	// Update replaces every caller-supplied field of an existing record,
	// preserving id and dateCreated and refreshing lastUpdated.
	Update(id int, in schema.CustomerInput) (schema.Customer, error)
	// Delete removes the record if present and reports whether it did.
	// A missing id is not an error.
	Delete(id int) bool
}
