package calculation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/loanworks/loancalc/internal/domain"
)

// CalculationEngine orchestrates the full loan calculation: term
// normalization, payment derivation, schedule simulation, summary reduction,
// and the optional affordability assessment.
//
// An engine holds no per-request state; concurrent Calculate calls are fully
// independent.
type CalculationEngine struct {
	ScheduleGen *ScheduleGenerator
	Logger      *zap.Logger
	MaxPeriods  int
}

// NewCalculationEngine creates an engine with the default schedule cap. A nil
// logger is replaced with a no-op logger.
func NewCalculationEngine(logger *zap.Logger) *CalculationEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculationEngine{
		ScheduleGen: NewScheduleGenerator(logger),
		Logger:      logger,
		MaxPeriods:  DefaultMaxSchedulePeriods,
	}
}

// Calculate runs one complete calculation over validated input. On any
// validation failure it returns a wrapped domain error and no partial result.
func (ce *CalculationEngine) Calculate(input *domain.CalculationInput) (*domain.LoanResult, error) {
	logger := ce.Logger.With(zap.String("run_id", uuid.NewString()))

	terms, err := NormalizeTerms(input.Terms, ce.MaxPeriods)
	if err != nil {
		return nil, err
	}

	// Affordability is validated up front so a bad income never costs a
	// full simulation.
	var affordability *domain.AffordabilityResult
	regularPayment := RegularPayment(terms)
	if input.MonthlyIncome != nil {
		affordability, err = AnalyzeAffordability(regularPayment, terms.PaymentFrequency, *input.MonthlyIncome)
		if err != nil {
			return nil, err
		}
	}

	schedule := ce.ScheduleGen.Generate(terms, regularPayment, input.ExtraPayments, input.PaymentHolidays)
	summary := Summarize(terms, regularPayment, schedule)

	logger.Debug("loan calculation complete",
		zap.String("regular_payment", regularPayment.StringFixed(2)),
		zap.Int("schedule_entries", len(schedule)),
		zap.String("total_interest", summary.TotalInterest.StringFixed(2)))

	return &domain.LoanResult{
		Summary:       summary,
		Schedule:      schedule,
		Affordability: affordability,
	}, nil
}

// Affordability assesses repayment burden for a set of terms without
// generating a schedule.
func (ce *CalculationEngine) Affordability(terms domain.LoanTerms, monthlyIncome decimal.Decimal) (*domain.AffordabilityResult, error) {
	normalized, err := NormalizeTerms(terms, ce.MaxPeriods)
	if err != nil {
		return nil, err
	}
	return AnalyzeAffordability(RegularPayment(normalized), normalized.PaymentFrequency, monthlyIncome)
}
