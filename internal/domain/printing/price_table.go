// Package printing holds the pricing math used when a document is
// rendered: per-line totals, subtotal, tax and gross amount.
package printing

import "github.com/shopspring/decimal"

// DefaultTaxRate is applied when no explicit rate is configured.
var DefaultTaxRate = decimal.NewFromFloat(0.19)

// LineInput is a single billable line fed into the price table.
type LineInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitSymbol  string
	UnitPrice   decimal.Decimal
}

// PriceRow is one rendered line with its rounded total. Position is
// 1-based and follows the input order.
type PriceRow struct {
	Position    int
	Description string
	Quantity    decimal.Decimal
	UnitSymbol  string
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// PriceTable is the complete monetary summary of a document.
type PriceTable struct {
	Rows     []PriceRow
	Subtotal decimal.Decimal
	TaxRate  decimal.Decimal
	Tax      decimal.Decimal
	Gross    decimal.Decimal
}

// BuildPriceTable computes totals in two rounding stages: each line
// total is rounded to two decimal places before summing, then the tax
// amount is rounded once on the subtotal. The gross is the exact sum
// of the two rounded figures.
func BuildPriceTable(lines []LineInput, taxRate decimal.Decimal) PriceTable {
	rows := make([]PriceRow, 0, len(lines))
	subtotal := decimal.Zero
	for i, line := range lines {
		total := line.Quantity.Mul(line.UnitPrice).Round(2)
		rows = append(rows, PriceRow{
			Position:    i + 1,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitSymbol:  line.UnitSymbol,
			UnitPrice:   line.UnitPrice,
			LineTotal:   total,
		})
		subtotal = subtotal.Add(total)
	}

	tax := subtotal.Mul(taxRate).Round(2)
	return PriceTable{
		Rows:     rows,
		Subtotal: subtotal,
		TaxRate:  taxRate,
		Tax:      tax,
		Gross:    subtotal.Add(tax),
	}
}
