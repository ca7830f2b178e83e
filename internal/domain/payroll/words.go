package payroll

import (
	"errors"
	"math"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrAmountTooLarge = errors.New("amount too large to spell out")
)

var titleCaser = cases.Title(language.English)

// AmountInWords spells the whole-rupee part of amount as title-cased
// cardinal words with the printed-payslip suffix, e.g. 15000.00 becomes
// "Fifteen Thousand Rupees Only". Negative amounts are a caller error;
// Compute guarantees the salary fed to this is never negative.
func AmountInWords(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", ErrNegativeAmount
	}
	whole := amount.IntPart()
	// num2words takes an int; cap at int32 so the conversion is safe on
	// 32-bit platforms too.
	if whole > math.MaxInt32 {
		return "", ErrAmountTooLarge
	}
	words := num2words.Convert(int(whole))
	return titleCaser.String(words) + " Rupees Only", nil
}
