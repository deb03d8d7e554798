package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanworks/loancalc/internal/domain"
)

func TestNormalizeTerms_Frequencies(t *testing.T) {
	tests := []struct {
		name            string
		frequency       domain.PaymentFrequency
		tenureMonths    int
		paymentsPerYear int
		totalPayments   int
	}{
		{"monthly", domain.FrequencyMonthly, 24, 12, 24},
		{"bi-weekly", domain.FrequencyBiWeekly, 12, 26, 26},
		{"weekly", domain.FrequencyWeekly, 12, 52, 52},
		{"bi-weekly floors partial periods", domain.FrequencyBiWeekly, 7, 26, 15},
		{"weekly floors partial periods", domain.FrequencyWeekly, 5, 52, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, err := NormalizeTerms(testTerms(100000, 5, tt.tenureMonths, tt.frequency), 0)
			require.NoError(t, err)
			assert.Equal(t, tt.paymentsPerYear, terms.PaymentsPerYear)
			assert.Equal(t, tt.totalPayments, terms.TotalPayments)
		})
	}
}

func TestNormalizeTerms_PeriodRate(t *testing.T) {
	terms, err := NormalizeTerms(testTerms(100000, 10, 24, domain.FrequencyMonthly), 0)
	require.NoError(t, err)

	// 10% / 100 / 12 payments per year
	assert.Equal(t, "0.0083333333333333", terms.PeriodRate.StringFixed(16))
}

func TestNormalizeTerms_InvalidFrequency(t *testing.T) {
	badTerms := testTerms(100000, 5, 12, domain.PaymentFrequency("quarterly"))

	_, err := NormalizeTerms(badTerms, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
}

func TestNormalizeTerms_ScheduleCap(t *testing.T) {
	_, err := NormalizeTerms(testTerms(100000, 5, 1201, domain.FrequencyMonthly), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleTooLarge)

	// A custom cap overrides the default.
	_, err = NormalizeTerms(testTerms(100000, 5, 60, domain.FrequencyMonthly), 36)
	assert.ErrorIs(t, err, domain.ErrScheduleTooLarge)

	_, err = NormalizeTerms(testTerms(100000, 5, 1200, domain.FrequencyMonthly), 0)
	assert.NoError(t, err, "default cap should admit exactly 1200 periods")
}

func TestNormalizeTerms_NetPrincipal(t *testing.T) {
	terms := testTerms(250000, 5, 12, domain.FrequencyMonthly)
	terms.DownPayment = decimal.NewFromInt(50000)

	normalized, err := NormalizeTerms(terms, 0)
	require.NoError(t, err)

	assert.Equal(t, "200000.00", normalized.NetPrincipal.StringFixed(2))
}
