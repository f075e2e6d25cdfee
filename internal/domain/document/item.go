package document

import (
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Item represents a single product line within a document. The unit price is
// captured when the item is created and never auto-synced to the product's
// current price, preserving historical pricing.
type Item struct {
	shared.BaseEntity
	DocumentID uint
	ProductID  uint
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
}

// NewItem creates a new line item.
func NewItem(documentID, productID uint, quantity, unitPrice decimal.Decimal) (*Item, error) {
	if documentID == 0 {
		return nil, shared.NewValidationError("Document reference is required")
	}
	if productID == 0 {
		return nil, shared.NewValidationError("Product reference is required")
	}
	if quantity.IsNegative() {
		return nil, shared.NewValidationError("Quantity cannot be negative")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewValidationError("Unit price cannot be negative")
	}

	return &Item{
		BaseEntity: shared.NewBaseEntity(),
		DocumentID: documentID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	}, nil
}

// Update replaces quantity and unit price together. Both fields are
// re-validated; a failed update leaves the item unchanged.
func (i *Item) Update(quantity, unitPrice decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewValidationError("Quantity cannot be negative")
	}
	if unitPrice.IsNegative() {
		return shared.NewValidationError("Unit price cannot be negative")
	}
	i.Quantity = quantity
	i.UnitPrice = unitPrice
	i.Touch()
	return nil
}

// LineTotal returns quantity × unit price rounded to 2 decimal places.
func (i *Item) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice).Round(2)
}
