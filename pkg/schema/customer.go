// Package schema defines the customer record types shared across the crmforge platform.
package schema

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Status is the lifecycle state of a customer relationship.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// Address is the structured mailing address attached to a customer.
type Address struct {
	Street  string `json:"street" binding:"required" validate:"required"`
	City    string `json:"city" binding:"required" validate:"required"`
	State   string `json:"state" binding:"required" validate:"required"`
	ZipCode string `json:"zipCode" binding:"required" validate:"required"`
}

// Customer is one customer record. The id and both timestamps are assigned by
// the store and are never accepted from callers.
type Customer struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Status      Status    `json:"status"`
	DateCreated time.Time `json:"dateCreated"`
	LastUpdated time.Time `json:"lastUpdated"`
	Address     Address   `json:"address"`
	Tags        []string  `json:"tags"`
	Revenue     float64   `json:"revenue"`
}

// CustomerInput carries every caller-supplied field for create and update.
// Updates are a full replace: fields left empty come back empty.
// The email rule is substring "@", matching the entry form, not full RFC 5322.
type CustomerInput struct {
	FirstName string   `json:"firstName" binding:"required" validate:"required"`
	LastName  string   `json:"lastName" binding:"required" validate:"required"`
	Email     string   `json:"email" binding:"required,contains=@" validate:"required,contains=@"`
	Phone     string   `json:"phone" binding:"required" validate:"required"`
	Company   string   `json:"company" binding:"required" validate:"required"`
	Position  string   `json:"position" binding:"required" validate:"required"`
	Status    Status   `json:"status" binding:"required,oneof=active inactive pending" validate:"required,oneof=active inactive pending"`
	Address   Address  `json:"address" binding:"required" validate:"required"`
	Tags      []string `json:"tags"`
	Revenue   float64  `json:"revenue" binding:"gte=0" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a CustomerInput against the same rules the API applies, so
// out-of-process callers can reject bad input before sending it.
func (in CustomerInput) Validate() error {
	return validate.Struct(in)
}

// Clone returns a deep copy of the record. Tags are the only field that would
// otherwise share backing storage.
func (c Customer) Clone() Customer {
	out := c
	if c.Tags != nil {
		out.Tags = make([]string, len(c.Tags))
		copy(out.Tags, c.Tags)
	}
	return out
}
