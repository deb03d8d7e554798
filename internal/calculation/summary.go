package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/loanworks/loancalc/internal/domain"
)

// Summarize reduces a generated schedule plus the fee map into aggregate
// totals. It is a pure reduction: deterministic given the schedule, and it
// never re-derives anything the schedule already settled.
func Summarize(terms *domain.NormalizedTerms, regularPayment decimal.Decimal, schedule []domain.ScheduleEntry) *domain.LoanSummary {
	var totalInterest, totalExtra, totalPaid decimal.Decimal
	actualPayments := 0

	for _, entry := range schedule {
		totalInterest = totalInterest.Add(entry.Interest)
		totalExtra = totalExtra.Add(entry.ExtraPayment)
		if !entry.IsHoliday {
			actualPayments++
			totalPaid = totalPaid.Add(entry.ScheduledPayment).Add(entry.ExtraPayment)
		}
	}

	var totalFees decimal.Decimal
	for _, fee := range terms.Fees {
		totalFees = totalFees.Add(fee)
	}

	return &domain.LoanSummary{
		RegularPayment:     regularPayment,
		TotalPayments:      len(schedule),
		ActualPayments:     actualPayments,
		TotalPrincipal:     terms.NetPrincipal,
		TotalInterest:      totalInterest,
		TotalExtraPayments: totalExtra,
		TotalFees:          totalFees,
		TotalCost:          terms.NetPrincipal.Add(totalInterest).Add(totalFees),
		TotalPaid:          totalPaid,
		DownPayment:        terms.DownPayment,
		OriginalPrincipal:  terms.Principal,
		PaymentFrequency:   terms.PaymentFrequency,
		AnnualRate:         terms.AnnualRate,
		TenureMonths:       terms.TenureMonths,
		LoanType:           terms.LoanType,
	}
}
