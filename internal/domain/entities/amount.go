package entities

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// CurrencyPHP is the only currency this deployment sells in.
const CurrencyPHP = "PHP"

// MinorUnitExponent is the flat scale between pesos and centavos (10^2).
const MinorUnitExponent = 2

var ErrInvalidAmount = errors.New("invalid amount")

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// maxMajorIntegerDigits bounds the integer digits of an amount whose minor
// units can still fit in an int64 (10^17 pesos is already 10^19 centavos).
const maxMajorIntegerDigits = 19 - MinorUnitExponent

// MinorUnitsFromMajor converts a major-unit amount (pesos) into the gateway's
// integer minor units (centavos).
//
// The amount is scaled exactly and rounded half away from zero, so 19.99 is
// always 1999 and never 1998. The result must be strictly positive and fit in
// an int64. Magnitude is checked from the digit count and exponent before
// any rescaling, so inputs like 1e20000000 are rejected without building the
// full integer.
func MinorUnitsFromMajor(amount decimal.Decimal) (int64, error) {
	magnitude := amount.NumDigits() + int(amount.Exponent())
	if magnitude > maxMajorIntegerDigits || magnitude < -MinorUnitExponent {
		return 0, ErrInvalidAmount
	}
	scaled := amount.Shift(MinorUnitExponent).Round(0)
	if !scaled.IsPositive() {
		return 0, ErrInvalidAmount
	}
	if scaled.GreaterThan(maxMinorUnits) {
		return 0, ErrInvalidAmount
	}
	return scaled.IntPart(), nil
}

// MajorFromMinorUnits is the display inverse of MinorUnitsFromMajor.
func MajorFromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -MinorUnitExponent)
}
