package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/loanworks/loancalc/internal/domain"
)

// roundMoney quantizes a monetary value to cents. decimal.Round rounds half
// away from zero, which for non-negative money is round-half-up, matching how
// lenders quantize interest and payments.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RegularPayment computes the level periodic payment that fully amortizes the
// net principal over the total number of payments:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero period rate degenerates to straight-line repayment. The result is
// quantized to cents; no unrounded value escapes this function.
func RegularPayment(terms *domain.NormalizedTerms) decimal.Decimal {
	n := decimal.NewFromInt(int64(terms.TotalPayments))

	if terms.PeriodRate.IsZero() {
		return roundMoney(terms.NetPrincipal.Div(n))
	}

	growth := decimal.NewFromInt(1).Add(terms.PeriodRate).Pow(n)
	numerator := terms.NetPrincipal.Mul(terms.PeriodRate).Mul(growth)
	denominator := growth.Sub(decimal.NewFromInt(1))
	return roundMoney(numerator.Div(denominator))
}
