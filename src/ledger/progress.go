package ledger

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Progress is the percentage of target reached, capped at 100. A non-positive
// target yields 0. Negative current amounts are passed through unclamped.
func Progress(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	p := current.Div(target).Mul(hundred)
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
