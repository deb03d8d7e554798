package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loancalc/internal/domain"
)

// Standard debt-to-income thresholds, in percent. 43 is the common qualified
// mortgage ceiling; 28 is the conventional front-end guideline.
var (
	dtiComfortable = decimal.NewFromInt(28)
	dtiManageable  = decimal.NewFromInt(36)
	dtiAffordable  = decimal.NewFromInt(43)

	recommendedPaymentShare = decimal.NewFromFloat(0.28)
)

// AnalyzeAffordability classifies the repayment burden of the regular payment
// against a monthly income. It depends only on the payment calculator's
// output, never on the schedule. A non-positive income is rejected rather
// than defining a ratio by convention.
func AnalyzeAffordability(regularPayment decimal.Decimal, frequency domain.PaymentFrequency, monthlyIncome decimal.Decimal) (*domain.AffordabilityResult, error) {
	if monthlyIncome.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: monthly_income must be positive, got %s", domain.ErrInvalidNumericInput, monthlyIncome)
	}

	paymentsPerYear, ok := frequency.PaymentsPerYear()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFrequency, frequency)
	}

	monthlyEquivalent := regularPayment
	if frequency != domain.FrequencyMonthly {
		monthlyEquivalent = regularPayment.Mul(decimal.NewFromInt(int64(paymentsPerYear))).Div(monthsPerYear)
	}

	ratio := monthlyEquivalent.Div(monthlyIncome).Mul(oneHundred)

	var comfort domain.ComfortLevel
	switch {
	case ratio.LessThanOrEqual(dtiComfortable):
		comfort = domain.ComfortComfortable
	case ratio.LessThanOrEqual(dtiManageable):
		comfort = domain.ComfortManageable
	case ratio.LessThanOrEqual(dtiAffordable):
		comfort = domain.ComfortStretched
	default:
		comfort = domain.ComfortRisky
	}

	return &domain.AffordabilityResult{
		MonthlyPaymentEquivalent: monthlyEquivalent,
		MonthlyIncome:            monthlyIncome,
		DebtToIncomeRatio:        ratio,
		IsAffordable:             ratio.LessThanOrEqual(dtiAffordable),
		ComfortLevel:             comfort,
		RecommendedMaxPayment:    monthlyIncome.Mul(recommendedPaymentShare),
	}, nil
}
