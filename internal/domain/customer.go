package domain

import (
	"fmt"
	"regexp"
	"time"
)

// CustomerNotFoundTemplate formats the lookup failure message.
const CustomerNotFoundTemplate = "Customer with id: %s not found"

var customerIDPattern = regexp.MustCompile(`^[a-z0-9-]*$`)

// Customer is the persisted customer profile keyed by its cross-system id.
type Customer struct {
	ID         string
	GivenName  string
	FamilyName string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CustomerFields holds the mutable part of a customer record.
type CustomerFields struct {
	GivenName  string
	FamilyName string
	Email      string
}

// Overwrite replaces all mutable fields.
func (c *Customer) Overwrite(fields CustomerFields) {
	c.GivenName = fields.GivenName
	c.FamilyName = fields.FamilyName
	c.Email = fields.Email
}

// Fields returns the mutable part of the record.
func (c Customer) Fields() CustomerFields {
	return CustomerFields{GivenName: c.GivenName, FamilyName: c.FamilyName, Email: c.Email}
}

// ValidCustomerID reports whether id consists of lowercase alphanumerics and hyphens.
func ValidCustomerID(id string) bool {
	return customerIDPattern.MatchString(id)
}

// CustomerNotFoundMessage renders the lookup failure message for id.
func CustomerNotFoundMessage(id string) string {
	return fmt.Sprintf(CustomerNotFoundTemplate, id)
}
