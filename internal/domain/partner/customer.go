package partner

import (
	"strings"

	"github.com/fakturo/backend/internal/domain/shared"
)

// Customer represents a billing party referenced by commercial documents.
// At least one of Name and CompanyName must be set; email, phone and tax ID
// are optional but globally unique when present.
type Customer struct {
	shared.BaseEntity
	Name        string
	CompanyName string
	Email       string
	Phone       string
	Address     string
	TaxID       string
	Notes       string
}

// NewCustomer creates a new customer. Either a display name or a company name
// is required.
func NewCustomer(name, companyName string) (*Customer, error) {
	name = strings.TrimSpace(name)
	companyName = strings.TrimSpace(companyName)
	if name == "" && companyName == "" {
		return nil, shared.NewValidationError("Either name or company name is required")
	}

	return &Customer{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		CompanyName: companyName,
	}, nil
}

// Rename updates name and company name, keeping the at-least-one invariant.
func (c *Customer) Rename(name, companyName string) error {
	name = strings.TrimSpace(name)
	companyName = strings.TrimSpace(companyName)
	if name == "" && companyName == "" {
		return shared.NewValidationError("Either name or company name is required")
	}
	c.Name = name
	c.CompanyName = companyName
	c.Touch()
	return nil
}

// SetEmail validates and assigns the contact email. An empty value clears it.
// Uniqueness is checked by the application service.
func (c *Customer) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" {
		if err := shared.ValidateEmail(email); err != nil {
			return err
		}
		email = strings.ToLower(email)
	}
	c.Email = email
	c.Touch()
	return nil
}

// SetPhone assigns the phone number. An empty value clears it.
func (c *Customer) SetPhone(phone string) {
	c.Phone = strings.TrimSpace(phone)
	c.Touch()
}

// SetAddress assigns the postal address.
func (c *Customer) SetAddress(address string) {
	c.Address = strings.TrimSpace(address)
	c.Touch()
}

// SetTaxID assigns the tax identifier. An empty value clears it.
func (c *Customer) SetTaxID(taxID string) {
	c.TaxID = strings.TrimSpace(taxID)
	c.Touch()
}

// SetNotes assigns free-text notes.
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.Touch()
}

// DisplayName returns the company name if set, otherwise the personal name.
func (c *Customer) DisplayName() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return c.Name
}
