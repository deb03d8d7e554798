package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanworks/loancalc/internal/domain"
)

func fixedClockParser() *InputParser {
	parser := NewInputParser()
	parser.Clock = func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}
	return parser
}

func TestParse_MinimalJSONRequest(t *testing.T) {
	parser := fixedClockParser()

	input, err := parser.Parse([]byte(`{"principal": 500000, "annual_rate": 10, "tenure_months": 24}`))
	require.NoError(t, err)

	assert.Equal(t, "500000", input.Terms.Principal.String())
	assert.Equal(t, "10", input.Terms.AnnualRate.String())
	assert.Equal(t, 24, input.Terms.TenureMonths)
	assert.Equal(t, domain.FrequencyMonthly, input.Terms.PaymentFrequency, "frequency defaults to monthly")
	assert.Equal(t, "fixed", input.Terms.LoanType, "loan type defaults to fixed")
	assert.Equal(t, "2025-06-01", input.Terms.StartDate.Format(DateLayout), "start date defaults to the clock")
	assert.Nil(t, input.MonthlyIncome)
}

func TestParse_FullYAMLRequest(t *testing.T) {
	parser := fixedClockParser()

	document := []byte(`
principal: 250000
annual_rate: 7.5
tenure_months: 36
payment_frequency: bi-weekly
start_date: 2025-03-15
loan_type: auto
down_payment: 25000
fees:
  origination: 1500
extra_payments:
  - payment_number: 6
    amount: 5000
payment_holidays:
  - start_payment: 10
    end_payment: 12
monthly_income: 80000
`)

	input, err := parser.Parse(document)
	require.NoError(t, err)

	assert.Equal(t, domain.FrequencyBiWeekly, input.Terms.PaymentFrequency)
	assert.Equal(t, "2025-03-15", input.Terms.StartDate.Format(DateLayout))
	assert.Equal(t, "auto", input.Terms.LoanType)
	assert.Equal(t, "25000", input.Terms.DownPayment.String())
	assert.Equal(t, "1500", input.Terms.Fees["origination"].String())
	require.Len(t, input.ExtraPayments, 1)
	assert.Equal(t, 6, input.ExtraPayments[0].PaymentNumber)
	require.Len(t, input.PaymentHolidays, 1)
	assert.Equal(t, 12, input.PaymentHolidays[0].EndPayment)
	require.NotNil(t, input.MonthlyIncome)
	assert.Equal(t, "80000", input.MonthlyIncome.String())
}

func TestParse_MissingRequiredFields(t *testing.T) {
	parser := fixedClockParser()

	tests := []struct {
		name     string
		document string
	}{
		{"missing principal", `{"annual_rate": 10, "tenure_months": 24}`},
		{"missing annual_rate", `{"principal": 100000, "tenure_months": 24}`},
		{"missing tenure_months", `{"principal": 100000, "annual_rate": 10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.document))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
		})
	}
}

func TestParse_InvalidNumericInput(t *testing.T) {
	parser := fixedClockParser()

	tests := []struct {
		name     string
		document string
	}{
		{"negative principal", `{"principal": -1, "annual_rate": 10, "tenure_months": 24}`},
		{"negative rate", `{"principal": 100000, "annual_rate": -2, "tenure_months": 24}`},
		{"zero tenure", `{"principal": 100000, "annual_rate": 10, "tenure_months": 0}`},
		{"down payment exceeds principal", `{"principal": 100000, "annual_rate": 10, "tenure_months": 24, "down_payment": 100001}`},
		{"negative fee", `{"principal": 100000, "annual_rate": 10, "tenure_months": 24, "fees": {"late": -5}}`},
		{"non-positive extra payment number", `{"principal": 100000, "annual_rate": 10, "tenure_months": 24, "extra_payments": [{"payment_number": 0, "amount": 100}]}`},
		{"holiday ends before start", `{"principal": 100000, "annual_rate": 10, "tenure_months": 24, "payment_holidays": [{"start_payment": 5, "end_payment": 3}]}`},
		{"zero monthly income", `{"principal": 100000, "annual_rate": 10, "tenure_months": 24, "monthly_income": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.document))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidNumericInput)
		})
	}
}

func TestParse_InvalidFrequency(t *testing.T) {
	parser := fixedClockParser()

	_, err := parser.Parse([]byte(`{"principal": 100000, "annual_rate": 10, "tenure_months": 24, "payment_frequency": "quarterly"}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
}

func TestParse_BadStartDate(t *testing.T) {
	parser := fixedClockParser()

	_, err := parser.Parse([]byte(`{"principal": 100000, "annual_rate": 10, "tenure_months": 24, "start_date": "15/03/2025"}`))

	assert.Error(t, err)
}

func TestParse_ZeroRateIsValid(t *testing.T) {
	parser := fixedClockParser()

	input, err := parser.Parse([]byte(`{"principal": 120000, "annual_rate": 0, "tenure_months": 12}`))

	require.NoError(t, err)
	assert.True(t, input.Terms.AnnualRate.IsZero())
}

func TestBuildInput_CustomDefaultFrequency(t *testing.T) {
	parser := fixedClockParser()
	parser.DefaultFrequency = domain.FrequencyWeekly

	principal := decimal.NewFromInt(100000)
	rate := decimal.NewFromInt(5)
	tenure := 12

	input, err := parser.BuildInput(&domain.LoanRequest{
		Principal:    &principal,
		AnnualRate:   &rate,
		TenureMonths: &tenure,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.FrequencyWeekly, input.Terms.PaymentFrequency)
}
