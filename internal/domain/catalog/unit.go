package catalog

import (
	"strings"

	"github.com/fakturo/backend/internal/domain/shared"
)

// UnitType represents the measurement unit of a product
type UnitType string

const (
	UnitPiece    UnitType = "PIECE"
	UnitKilogram UnitType = "KILOGRAM"
	UnitHour     UnitType = "HOUR"
)

// unitSymbols maps unit types to the short symbols printed on documents.
var unitSymbols = map[UnitType]string{
	UnitPiece:    "pcs",
	UnitKilogram: "kg",
	UnitHour:     "h",
}

// IsValid checks if the unit type is recognized
func (u UnitType) IsValid() bool {
	_, ok := unitSymbols[u]
	return ok
}

// String returns the canonical string representation
func (u UnitType) String() string {
	return string(u)
}

// Symbol returns the short symbol used on printed documents.
func (u UnitType) Symbol() string {
	return unitSymbols[u]
}

// ParseUnitType parses a unit type name case-insensitively.
func ParseUnitType(s string) (UnitType, error) {
	unit := UnitType(strings.ToUpper(strings.TrimSpace(s)))
	if !unit.IsValid() {
		return "", shared.NewValidationError("Invalid unit type: " + s)
	}
	return unit, nil
}
