package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentFrequency identifies how often loan payments occur.
type PaymentFrequency string

const (
	FrequencyMonthly  PaymentFrequency = "monthly"
	FrequencyBiWeekly PaymentFrequency = "bi-weekly"
	FrequencyWeekly   PaymentFrequency = "weekly"
)

// PaymentsPerYear returns the number of payment periods per year for the
// frequency, and false for an unrecognized frequency.
func (f PaymentFrequency) PaymentsPerYear() (int, bool) {
	switch f {
	case FrequencyMonthly:
		return 12, true
	case FrequencyBiWeekly:
		return 26, true
	case FrequencyWeekly:
		return 52, true
	default:
		return 0, false
	}
}

// LoanRequest is the raw calculation request as supplied by a caller, before
// validation and defaulting. Required fields are pointers so that absence can
// be distinguished from zero.
type LoanRequest struct {
	Principal        *decimal.Decimal           `yaml:"principal" json:"principal"`
	AnnualRate       *decimal.Decimal           `yaml:"annual_rate" json:"annual_rate"`
	TenureMonths     *int                       `yaml:"tenure_months" json:"tenure_months"`
	PaymentFrequency string                     `yaml:"payment_frequency,omitempty" json:"payment_frequency,omitempty"`
	StartDate        string                     `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	LoanType         string                     `yaml:"loan_type,omitempty" json:"loan_type,omitempty"`
	DownPayment      decimal.Decimal            `yaml:"down_payment,omitempty" json:"down_payment,omitempty"`
	Fees             map[string]decimal.Decimal `yaml:"fees,omitempty" json:"fees,omitempty"`
	ExtraPayments    []ExtraPayment             `yaml:"extra_payments,omitempty" json:"extra_payments,omitempty"`
	PaymentHolidays  []PaymentHoliday           `yaml:"payment_holidays,omitempty" json:"payment_holidays,omitempty"`
	MonthlyIncome    *decimal.Decimal           `yaml:"monthly_income,omitempty" json:"monthly_income,omitempty"`
}

// LoanTerms are the validated, immutable terms of a single loan. One value is
// owned by exactly one calculation invocation.
type LoanTerms struct {
	Principal        decimal.Decimal            `yaml:"principal" json:"principal"`
	AnnualRate       decimal.Decimal            `yaml:"annual_rate" json:"annual_rate"`
	TenureMonths     int                        `yaml:"tenure_months" json:"tenure_months"`
	PaymentFrequency PaymentFrequency           `yaml:"payment_frequency" json:"payment_frequency"`
	StartDate        time.Time                  `yaml:"start_date" json:"start_date"`
	LoanType         string                     `yaml:"loan_type" json:"loan_type"`
	DownPayment      decimal.Decimal            `yaml:"down_payment" json:"down_payment"`
	Fees             map[string]decimal.Decimal `yaml:"fees,omitempty" json:"fees,omitempty"`
}

// ExtraPayment is a lump sum applied against principal in a specific period.
// At most one extra payment applies per period; a later entry for the same
// payment number replaces an earlier one.
type ExtraPayment struct {
	PaymentNumber int             `yaml:"payment_number" json:"payment_number"`
	Amount        decimal.Decimal `yaml:"amount" json:"amount"`
}

// PaymentHoliday is an inclusive range of payment numbers during which no
// payment is due and the balance is held static.
type PaymentHoliday struct {
	StartPayment int `yaml:"start_payment" json:"start_payment"`
	EndPayment   int `yaml:"end_payment" json:"end_payment"`
}

// CalculationInput bundles everything one engine invocation consumes.
type CalculationInput struct {
	Terms           LoanTerms
	ExtraPayments   []ExtraPayment
	PaymentHolidays []PaymentHoliday
	MonthlyIncome   *decimal.Decimal
}

// NormalizedTerms are the engine-internal per-period quantities derived from
// LoanTerms. NetPrincipal is computed once here and never recomputed
// downstream.
type NormalizedTerms struct {
	LoanTerms

	PaymentsPerYear int
	TotalPayments   int
	PeriodRate      decimal.Decimal
	NetPrincipal    decimal.Decimal
}

// ScheduleEntry is one simulated payment period. Entries are immutable after
// creation; the ordered sequence of entries is the amortization schedule.
type ScheduleEntry struct {
	PaymentNumber    int             `json:"payment_number"`
	PaymentDate      time.Time       `json:"payment_date"`
	ScheduledPayment decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	ExtraPayment     decimal.Decimal `json:"extra_payment"`
	Balance          decimal.Decimal `json:"balance"`
	IsHoliday        bool            `json:"is_holiday"`
}

// LoanSummary is the aggregate view of a schedule plus fees, with the input
// terms echoed back.
type LoanSummary struct {
	RegularPayment     decimal.Decimal
	TotalPayments      int
	ActualPayments     int
	TotalPrincipal     decimal.Decimal
	TotalInterest      decimal.Decimal
	TotalExtraPayments decimal.Decimal
	TotalFees          decimal.Decimal
	TotalCost          decimal.Decimal
	TotalPaid          decimal.Decimal
	DownPayment        decimal.Decimal
	OriginalPrincipal  decimal.Decimal
	PaymentFrequency   PaymentFrequency
	AnnualRate         decimal.Decimal
	TenureMonths       int
	LoanType           string
}

// ComfortLevel classifies the repayment burden of a loan.
type ComfortLevel string

const (
	ComfortComfortable ComfortLevel = "comfortable"
	ComfortManageable  ComfortLevel = "manageable"
	ComfortStretched   ComfortLevel = "stretched"
	ComfortRisky       ComfortLevel = "risky"
)

// AffordabilityResult is the outcome of the debt-to-income assessment.
type AffordabilityResult struct {
	MonthlyPaymentEquivalent decimal.Decimal
	MonthlyIncome            decimal.Decimal
	DebtToIncomeRatio        decimal.Decimal
	IsAffordable             bool
	ComfortLevel             ComfortLevel
	RecommendedMaxPayment    decimal.Decimal
}

// LoanResult is the complete output of one calculation invocation.
// Affordability is nil when no monthly income was supplied.
type LoanResult struct {
	Summary       *LoanSummary
	Schedule      []ScheduleEntry
	Affordability *AffordabilityResult
}
