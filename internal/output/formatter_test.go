package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanworks/loancalc/internal/domain"
)

func sampleResult() *domain.LoanResult {
	return &domain.LoanResult{
		Summary: &domain.LoanSummary{
			RegularPayment:    decimal.NewFromFloat(23072.46),
			TotalPayments:     2,
			ActualPayments:    1,
			TotalPrincipal:    decimal.NewFromInt(500000),
			TotalInterest:     decimal.NewFromFloat(4166.67),
			TotalFees:         decimal.NewFromInt(1500),
			TotalCost:         decimal.NewFromFloat(505666.67),
			TotalPaid:         decimal.NewFromFloat(23072.46),
			DownPayment:       decimal.Zero,
			OriginalPrincipal: decimal.NewFromInt(500000),
			PaymentFrequency:  domain.FrequencyMonthly,
			AnnualRate:        decimal.NewFromInt(10),
			TenureMonths:      24,
			LoanType:          "fixed",
		},
		Schedule: []domain.ScheduleEntry{
			{
				PaymentNumber:    1,
				PaymentDate:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
				ScheduledPayment: decimal.NewFromFloat(23072.46),
				Principal:        decimal.NewFromFloat(18905.79),
				Interest:         decimal.NewFromFloat(4166.67),
				ExtraPayment:     decimal.Zero,
				Balance:          decimal.NewFromFloat(481094.21),
			},
			{
				PaymentNumber: 2,
				PaymentDate:   time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
				Balance:       decimal.NewFromFloat(481094.21),
				IsHoliday:     true,
			},
		},
		Affordability: &domain.AffordabilityResult{
			MonthlyPaymentEquivalent: decimal.NewFromFloat(23072.46),
			MonthlyIncome:            decimal.NewFromInt(100000),
			DebtToIncomeRatio:        decimal.NewFromFloat(23.07246),
			IsAffordable:             true,
			ComfortLevel:             domain.ComfortComfortable,
			RecommendedMaxPayment:    decimal.NewFromInt(28000),
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	assert.NotNil(t, GetFormatterByName("json"))
	assert.NotNil(t, GetFormatterByName("json-compact"))
	assert.NotNil(t, GetFormatterByName("csv"))
	assert.NotNil(t, GetFormatterByName("table"))
	assert.Nil(t, GetFormatterByName("html"))
}

func TestJSONFormatter_Format(t *testing.T) {
	data, err := (JSONFormatter{Pretty: true}).Format(sampleResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	summary, ok := decoded["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 23072.46, summary["regular_payment"])
	assert.Equal(t, float64(24), summary["tenure_months"])
	assert.Equal(t, "monthly", summary["payment_frequency"])

	schedule, ok := decoded["schedule"].([]any)
	require.True(t, ok)
	require.Len(t, schedule, 2)
	first := schedule[0].(map[string]any)
	assert.Equal(t, "2025-01-15", first["payment_date"])
	assert.Equal(t, 18905.79, first["principal"])
	assert.Equal(t, false, first["is_holiday"])
	second := schedule[1].(map[string]any)
	assert.Equal(t, true, second["is_holiday"])
	assert.Equal(t, float64(0), second["payment"])

	affordability, ok := decoded["affordability"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 23.07, affordability["debt_to_income_ratio"])
	assert.Equal(t, "comfortable", affordability["comfort_level"])
}

func TestJSONFormatter_NullAffordability(t *testing.T) {
	result := sampleResult()
	result.Affordability = nil

	data, err := (JSONFormatter{}).Format(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	value, present := decoded["affordability"]
	assert.True(t, present, "affordability key is always emitted")
	assert.Nil(t, value)
}

func TestCSVFormatter_Format(t *testing.T) {
	data, err := (CSVFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header plus one row per schedule entry")
	assert.Equal(t, "PaymentNumber,PaymentDate,Payment,Principal,Interest,ExtraPayment,Balance,IsHoliday", lines[0])
	assert.Equal(t, "1,2025-01-15,23072.46,18905.79,4166.67,0.00,481094.21,false", lines[1])
	assert.Equal(t, "2,2025-02-15,0.00,0.00,0.00,0.00,481094.21,true", lines[2])
}

func TestTableFormatter_Format(t *testing.T) {
	data, err := (TableFormatter{}).Format(sampleResult())
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "LOAN SUMMARY")
	assert.Contains(t, report, "Regular Payment:      $23072.46")
	assert.Contains(t, report, "AFFORDABILITY")
	assert.Contains(t, report, "comfortable")
	assert.Contains(t, report, "AMORTIZATION SCHEDULE")
	assert.Contains(t, report, "holiday")
}

func TestBuildResponse_RoundsToCents(t *testing.T) {
	result := sampleResult()
	result.Summary.TotalInterest = decimal.NewFromFloat(4166.666666)

	response := BuildResponse(result)

	assert.Equal(t, 4166.67, response.Summary.TotalInterest)
}
