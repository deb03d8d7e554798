package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loancalc/internal/domain"
)

// DefaultMaxSchedulePeriods caps how many payment periods a single request may
// imply. Without a cap a malformed or malicious tenure could make one request
// monopolize a worker; 1200 covers a 100-year monthly loan.
const DefaultMaxSchedulePeriods = 1200

var (
	oneHundred    = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

// NormalizeTerms converts validated loan terms into the per-period quantities
// every downstream component consumes. A maxPeriods of 0 applies
// DefaultMaxSchedulePeriods.
func NormalizeTerms(terms domain.LoanTerms, maxPeriods int) (*domain.NormalizedTerms, error) {
	paymentsPerYear, ok := terms.PaymentFrequency.PaymentsPerYear()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFrequency, terms.PaymentFrequency)
	}

	totalPayments := terms.TenureMonths
	if terms.PaymentFrequency != domain.FrequencyMonthly {
		totalPayments = terms.TenureMonths * paymentsPerYear / 12
	}
	if totalPayments <= 0 {
		return nil, fmt.Errorf("%w: tenure of %d months yields no payment periods", domain.ErrInvalidNumericInput, terms.TenureMonths)
	}

	if maxPeriods <= 0 {
		maxPeriods = DefaultMaxSchedulePeriods
	}
	if totalPayments > maxPeriods {
		return nil, fmt.Errorf("%w: %d periods exceeds cap of %d", domain.ErrScheduleTooLarge, totalPayments, maxPeriods)
	}

	periodRate := terms.AnnualRate.Div(oneHundred).Div(decimal.NewFromInt(int64(paymentsPerYear)))

	return &domain.NormalizedTerms{
		LoanTerms:       terms,
		PaymentsPerYear: paymentsPerYear,
		TotalPayments:   totalPayments,
		PeriodRate:      periodRate,
		NetPrincipal:    terms.Principal.Sub(terms.DownPayment),
	}, nil
}
