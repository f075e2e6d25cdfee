package catalog

import (
	"strings"

	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable article or service with a current list price.
// Document items capture the price at the time they are created, so later
// price changes never rewrite existing documents.
type Product struct {
	shared.BaseEntity
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Unit        UnitType
}

// NewProduct creates a new product.
func NewProduct(name, description string, unitPrice decimal.Decimal, unit UnitType) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Product name cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewValidationError("Unit price cannot be negative")
	}
	if !unit.IsValid() {
		return nil, shared.NewValidationError("Invalid unit type: " + string(unit))
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice,
		Unit:        unit,
	}, nil
}

// Rename updates the product name. Uniqueness is checked by the application
// service.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Product name cannot be empty")
	}
	p.Name = name
	p.Touch()
	return nil
}

// SetDescription updates the free-text description.
func (p *Product) SetDescription(description string) {
	p.Description = description
	p.Touch()
}

// ChangePrice updates the current list price.
func (p *Product) ChangePrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewValidationError("Unit price cannot be negative")
	}
	p.UnitPrice = unitPrice
	p.Touch()
	return nil
}

// ChangeUnit updates the measurement unit.
func (p *Product) ChangeUnit(unit UnitType) error {
	if !unit.IsValid() {
		return shared.NewValidationError("Invalid unit type: " + string(unit))
	}
	p.Unit = unit
	p.Touch()
	return nil
}
