package dto

import "github.com/icconsult/customer-service/internal/domain"

// CustomerRequest replaces every mutable field of a customer.
type CustomerRequest struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email"`
}

// CustomerResponse is the public view of a customer.
type CustomerResponse struct {
	ID         string `json:"id"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email"`
}

// Fields converts the request into domain fields.
func (r CustomerRequest) Fields() domain.CustomerFields {
	return domain.CustomerFields{
		GivenName:  r.GivenName,
		FamilyName: r.FamilyName,
		Email:      r.Email,
	}
}

// NewCustomerResponse maps a domain customer to its response shape.
func NewCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		GivenName:  c.GivenName,
		FamilyName: c.FamilyName,
		Email:      c.Email,
	}
}
