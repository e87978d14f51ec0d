package fee

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	// maxAmount is the largest value a NUMERIC(14, 2) money column holds.
	maxAmount = decimal.RequireFromString("999999999999.99")
)

// GST is the tax breakdown of a fee amount.
type GST struct {
	Rate         decimal.Decimal
	Amount       decimal.Decimal
	TotalWithGST decimal.Decimal
}

// ComputeGST returns the tax on amount at rate percent. When enabled is false
// the effective rate is zero whatever rate says.
func ComputeGST(amount decimal.Decimal, enabled bool, rate decimal.Decimal) GST {
	if !enabled {
		rate = decimal.Zero
	}

	tax := amount.Mul(rate).Div(hundred).Round(2)

	return GST{
		Rate:         rate,
		Amount:       tax,
		TotalWithGST: amount.Add(tax).Round(2),
	}
}
