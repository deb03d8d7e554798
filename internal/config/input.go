// Package config parses and validates calculation requests and engine
// settings. All request validation happens here, before any simulation runs.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/loanworks/loancalc/internal/domain"
)

// DateLayout is the calendar date format accepted in requests and emitted in
// schedules.
const DateLayout = "2006-01-02"

// InputParser handles parsing of calculation request documents.
type InputParser struct {
	// DefaultFrequency is applied when a request omits payment_frequency.
	DefaultFrequency domain.PaymentFrequency

	// Clock supplies the start date when a request omits start_date.
	Clock func() time.Time
}

// NewInputParser creates a parser with the standard defaults.
func NewInputParser() *InputParser {
	return &InputParser{
		DefaultFrequency: domain.FrequencyMonthly,
		Clock:            time.Now,
	}
}

// LoadFromFile loads a calculation request from a YAML or JSON file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a request document and validates it into engine input. YAML
// is a superset of JSON, so a single decoder covers both encodings.
func (ip *InputParser) Parse(data []byte) (*domain.CalculationInput, error) {
	var request domain.LoanRequest
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return ip.BuildInput(&request)
}

// BuildInput validates a raw request, applies defaults, and produces the
// immutable input one engine invocation owns.
func (ip *InputParser) BuildInput(request *domain.LoanRequest) (*domain.CalculationInput, error) {
	if err := ip.validateRequest(request); err != nil {
		return nil, err
	}

	frequency := domain.PaymentFrequency(request.PaymentFrequency)
	if request.PaymentFrequency == "" {
		frequency = ip.DefaultFrequency
	}
	if _, ok := frequency.PaymentsPerYear(); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFrequency, frequency)
	}

	startDate := ip.Clock()
	if request.StartDate != "" {
		parsed, err := time.Parse(DateLayout, request.StartDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_date %q: %w", request.StartDate, err)
		}
		startDate = parsed
	}

	loanType := request.LoanType
	if loanType == "" {
		loanType = "fixed"
	}

	fees := make(map[string]decimal.Decimal, len(request.Fees))
	for name, amount := range request.Fees {
		fees[name] = amount
	}

	return &domain.CalculationInput{
		Terms: domain.LoanTerms{
			Principal:        *request.Principal,
			AnnualRate:       *request.AnnualRate,
			TenureMonths:     *request.TenureMonths,
			PaymentFrequency: frequency,
			StartDate:        startDate,
			LoanType:         loanType,
			DownPayment:      request.DownPayment,
			Fees:             fees,
		},
		ExtraPayments:   request.ExtraPayments,
		PaymentHolidays: request.PaymentHolidays,
		MonthlyIncome:   request.MonthlyIncome,
	}, nil
}

func (ip *InputParser) validateRequest(request *domain.LoanRequest) error {
	if request.Principal == nil {
		return fmt.Errorf("%w: principal", domain.ErrMissingRequiredField)
	}
	if request.AnnualRate == nil {
		return fmt.Errorf("%w: annual_rate", domain.ErrMissingRequiredField)
	}
	if request.TenureMonths == nil {
		return fmt.Errorf("%w: tenure_months", domain.ErrMissingRequiredField)
	}

	if request.Principal.IsNegative() {
		return fmt.Errorf("%w: principal must not be negative", domain.ErrInvalidNumericInput)
	}
	if request.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: annual_rate must not be negative", domain.ErrInvalidNumericInput)
	}
	if *request.TenureMonths <= 0 {
		return fmt.Errorf("%w: tenure_months must be positive", domain.ErrInvalidNumericInput)
	}
	if request.DownPayment.IsNegative() {
		return fmt.Errorf("%w: down_payment must not be negative", domain.ErrInvalidNumericInput)
	}
	if request.DownPayment.GreaterThan(*request.Principal) {
		return fmt.Errorf("%w: down_payment exceeds principal", domain.ErrInvalidNumericInput)
	}

	for name, amount := range request.Fees {
		if amount.IsNegative() {
			return fmt.Errorf("%w: fee %q must not be negative", domain.ErrInvalidNumericInput, name)
		}
	}

	for i, ep := range request.ExtraPayments {
		if ep.PaymentNumber <= 0 {
			return fmt.Errorf("%w: extra_payments[%d].payment_number must be positive", domain.ErrInvalidNumericInput, i)
		}
		if ep.Amount.IsNegative() {
			return fmt.Errorf("%w: extra_payments[%d].amount must not be negative", domain.ErrInvalidNumericInput, i)
		}
	}

	for i, ph := range request.PaymentHolidays {
		if ph.StartPayment <= 0 {
			return fmt.Errorf("%w: payment_holidays[%d].start_payment must be positive", domain.ErrInvalidNumericInput, i)
		}
		if ph.EndPayment < ph.StartPayment {
			return fmt.Errorf("%w: payment_holidays[%d] ends before it starts", domain.ErrInvalidNumericInput, i)
		}
	}

	if request.MonthlyIncome != nil && request.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: monthly_income must be positive", domain.ErrInvalidNumericInput)
	}

	return nil
}
