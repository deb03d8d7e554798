// Package output shapes calculation results for callers and renders them in
// the supported formats.
package output

import (
	"github.com/shopspring/decimal"

	"github.com/loanworks/loancalc/internal/domain"
)

// DateLayout is the format used for payment dates in rendered output.
const DateLayout = "2006-01-02"

// Response is the wire form of a calculation result. All monetary fields are
// plain numbers rounded to two decimal places; decimals stay internal to the
// engine and are converted only here, at the boundary.
type Response struct {
	Summary       SummaryResponse      `json:"summary"`
	Schedule      []ScheduleRow        `json:"schedule"`
	Affordability *AffordabilityDetail `json:"affordability"`
}

// SummaryResponse is the wire form of a loan summary.
type SummaryResponse struct {
	RegularPayment     float64 `json:"regular_payment"`
	TotalPayments      int     `json:"total_payments"`
	ActualPayments     int     `json:"actual_payments"`
	TotalPrincipal     float64 `json:"total_principal"`
	TotalInterest      float64 `json:"total_interest"`
	TotalExtraPayments float64 `json:"total_extra_payments"`
	TotalFees          float64 `json:"total_fees"`
	TotalCost          float64 `json:"total_cost"`
	TotalPaid          float64 `json:"total_paid"`
	DownPayment        float64 `json:"down_payment"`
	OriginalPrincipal  float64 `json:"original_principal"`
	PaymentFrequency   string  `json:"payment_frequency"`
	AnnualRate         float64 `json:"annual_rate"`
	TenureMonths       int     `json:"tenure_months"`
	LoanType           string  `json:"loan_type"`
}

// ScheduleRow is the wire form of one schedule entry.
type ScheduleRow struct {
	PaymentNumber int     `json:"payment_number"`
	PaymentDate   string  `json:"payment_date"`
	Payment       float64 `json:"payment"`
	Principal     float64 `json:"principal"`
	Interest      float64 `json:"interest"`
	ExtraPayment  float64 `json:"extra_payment"`
	Balance       float64 `json:"balance"`
	IsHoliday     bool    `json:"is_holiday"`
}

// AffordabilityDetail is the wire form of an affordability assessment.
type AffordabilityDetail struct {
	MonthlyPaymentEquivalent float64 `json:"monthly_payment_equivalent"`
	MonthlyIncome            float64 `json:"monthly_income"`
	DebtToIncomeRatio        float64 `json:"debt_to_income_ratio"`
	IsAffordable             bool    `json:"is_affordable"`
	ComfortLevel             string  `json:"comfort_level"`
	RecommendedMaxPayment    float64 `json:"recommended_max_payment"`
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// BuildResponse converts an engine result into its wire form.
func BuildResponse(result *domain.LoanResult) *Response {
	s := result.Summary
	response := &Response{
		Summary: SummaryResponse{
			RegularPayment:     money(s.RegularPayment),
			TotalPayments:      s.TotalPayments,
			ActualPayments:     s.ActualPayments,
			TotalPrincipal:     money(s.TotalPrincipal),
			TotalInterest:      money(s.TotalInterest),
			TotalExtraPayments: money(s.TotalExtraPayments),
			TotalFees:          money(s.TotalFees),
			TotalCost:          money(s.TotalCost),
			TotalPaid:          money(s.TotalPaid),
			DownPayment:        money(s.DownPayment),
			OriginalPrincipal:  money(s.OriginalPrincipal),
			PaymentFrequency:   string(s.PaymentFrequency),
			AnnualRate:         s.AnnualRate.InexactFloat64(),
			TenureMonths:       s.TenureMonths,
			LoanType:           s.LoanType,
		},
		Schedule: make([]ScheduleRow, 0, len(result.Schedule)),
	}

	for _, entry := range result.Schedule {
		response.Schedule = append(response.Schedule, ScheduleRow{
			PaymentNumber: entry.PaymentNumber,
			PaymentDate:   entry.PaymentDate.Format(DateLayout),
			Payment:       money(entry.ScheduledPayment),
			Principal:     money(entry.Principal),
			Interest:      money(entry.Interest),
			ExtraPayment:  money(entry.ExtraPayment),
			Balance:       money(entry.Balance),
			IsHoliday:     entry.IsHoliday,
		})
	}

	if a := result.Affordability; a != nil {
		response.Affordability = &AffordabilityDetail{
			MonthlyPaymentEquivalent: money(a.MonthlyPaymentEquivalent),
			MonthlyIncome:            money(a.MonthlyIncome),
			DebtToIncomeRatio:        a.DebtToIncomeRatio.Round(2).InexactFloat64(),
			IsAffordable:             a.IsAffordable,
			ComfortLevel:             string(a.ComfortLevel),
			RecommendedMaxPayment:    money(a.RecommendedMaxPayment),
		}
	}

	return response
}
