package calculation

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/loanworks/loancalc/internal/domain"
	"github.com/loanworks/loancalc/pkg/dateutil"
)

// ScheduleGenerator runs the period-by-period amortization simulation.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a generator. A nil logger is replaced with a
// no-op logger.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Generate simulates payment periods 1..TotalPayments and returns the ordered
// ledger. The balance never goes negative and never decreases during a
// payment holiday; simulation stops as soon as the balance reaches zero.
//
// Holiday periods freeze the balance entirely: no interest accrues and
// nothing capitalizes while a holiday is in effect.
func (g *ScheduleGenerator) Generate(
	terms *domain.NormalizedTerms,
	regularPayment decimal.Decimal,
	extraPayments []domain.ExtraPayment,
	holidays []domain.PaymentHoliday,
) []domain.ScheduleEntry {
	extraByPeriod := make(map[int]decimal.Decimal, len(extraPayments))
	for _, ep := range extraPayments {
		// Later entries for the same period replace earlier ones.
		extraByPeriod[ep.PaymentNumber] = ep.Amount
	}

	holidayPeriods := make(map[int]struct{})
	for _, ph := range holidays {
		for n := ph.StartPayment; n <= ph.EndPayment; n++ {
			holidayPeriods[n] = struct{}{}
		}
	}

	schedule := make([]domain.ScheduleEntry, 0, terms.TotalPayments)
	balance := terms.NetPrincipal
	paymentDate := terms.StartDate

	for paymentNum := 1; paymentNum <= terms.TotalPayments; paymentNum++ {
		if balance.LessThanOrEqual(decimal.Zero) {
			g.logger.Debug("loan paid off ahead of schedule",
				zap.Int("payment_number", paymentNum),
				zap.Int("total_payments", terms.TotalPayments))
			break
		}

		if _, onHoliday := holidayPeriods[paymentNum]; onHoliday {
			schedule = append(schedule, domain.ScheduleEntry{
				PaymentNumber: paymentNum,
				PaymentDate:   paymentDate,
				Balance:       balance,
				IsHoliday:     true,
			})
			paymentDate = g.nextPaymentDate(terms.PaymentFrequency, paymentDate)
			continue
		}

		interest := roundMoney(balance.Mul(terms.PeriodRate))
		principal := regularPayment.Sub(interest)
		extra := extraByPeriod[paymentNum]

		// Clamp the combined draw at the remaining balance. Principal
		// takes priority: an extra payment at or above the balance
		// absorbs the whole balance on its own.
		if principal.Add(extra).GreaterThan(balance) {
			if extra.GreaterThanOrEqual(balance) {
				g.logger.Debug("capping extra payment to remaining balance",
					zap.Int("payment_number", paymentNum),
					zap.String("requested", extra.StringFixed(2)),
					zap.String("capped_to_balance", balance.StringFixed(2)))
				extra = balance
				principal = decimal.Zero
			} else {
				principal = balance.Sub(extra)
			}
		}

		balance = balance.Sub(principal).Sub(extra)
		if balance.IsNegative() {
			balance = decimal.Zero
		}

		schedule = append(schedule, domain.ScheduleEntry{
			PaymentNumber:    paymentNum,
			PaymentDate:      paymentDate,
			ScheduledPayment: regularPayment,
			Principal:        principal,
			Interest:         interest,
			ExtraPayment:     extra,
			Balance:          balance,
			IsHoliday:        false,
		})

		paymentDate = g.nextPaymentDate(terms.PaymentFrequency, paymentDate)
	}

	return schedule
}

func (g *ScheduleGenerator) nextPaymentDate(frequency domain.PaymentFrequency, current time.Time) time.Time {
	switch frequency {
	case domain.FrequencyBiWeekly:
		return dateutil.AddDays(current, 14)
	case domain.FrequencyWeekly:
		return dateutil.AddDays(current, 7)
	default:
		return dateutil.AddMonthClamped(current)
	}
}
