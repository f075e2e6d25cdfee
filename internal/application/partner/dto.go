package partner

import (
	"time"

	"github.com/fakturo/backend/internal/domain/partner"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"max=200"`
	CompanyName string `json:"company_name" binding:"max=200"`
	Email       string `json:"email" binding:"omitempty,max=200"`
	Phone       string `json:"phone" binding:"max=50"`
	Address     string `json:"address" binding:"max=500"`
	TaxID       string `json:"tax_id" binding:"max=50"`
	Notes       string `json:"notes"`
}

// UpdateCustomerRequest represents a partial update to a customer.
// Only the fields present in the request body are applied.
type UpdateCustomerRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=200"`
	Email       *string `json:"email" binding:"omitempty,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	TaxID       *string `json:"tax_id" binding:"omitempty,max=50"`
	Notes       *string `json:"notes"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	TaxID       string    `json:"tax_id"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		TaxID:       c.TaxID,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, ToCustomerResponse(&customers[i]))
	}
	return responses
}
