package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loancalc/internal/domain"
)

// TableFormatter renders a console report: summary block, affordability block
// when present, then the schedule table.
type TableFormatter struct{}

func (tf TableFormatter) Name() string { return "table" }

func (tf TableFormatter) Format(result *domain.LoanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	s := result.Summary

	fmt.Fprintln(buf, "LOAN SUMMARY")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "Loan Type:            %s (%s)\n", s.LoanType, s.PaymentFrequency)
	fmt.Fprintf(buf, "Original Principal:   %s\n", FormatCurrency(s.OriginalPrincipal))
	fmt.Fprintf(buf, "Down Payment:         %s\n", FormatCurrency(s.DownPayment))
	fmt.Fprintf(buf, "Amount Financed:      %s\n", FormatCurrency(s.TotalPrincipal))
	fmt.Fprintf(buf, "Annual Rate:          %s\n", FormatPercentage(s.AnnualRate))
	fmt.Fprintf(buf, "Tenure:               %d months\n", s.TenureMonths)
	fmt.Fprintf(buf, "Regular Payment:      %s\n", FormatCurrency(s.RegularPayment))
	fmt.Fprintf(buf, "Payments Made:        %d (%d non-holiday)\n", s.TotalPayments, s.ActualPayments)
	fmt.Fprintf(buf, "Total Interest:       %s\n", FormatCurrency(s.TotalInterest))
	fmt.Fprintf(buf, "Total Extra Payments: %s\n", FormatCurrency(s.TotalExtraPayments))
	fmt.Fprintf(buf, "Total Fees:           %s\n", FormatCurrency(s.TotalFees))
	fmt.Fprintf(buf, "Total Cost:           %s\n", FormatCurrency(s.TotalCost))
	fmt.Fprintf(buf, "Total Paid:           %s\n", FormatCurrency(s.TotalPaid))
	fmt.Fprintln(buf)

	if a := result.Affordability; a != nil {
		fmt.Fprintln(buf, "AFFORDABILITY")
		fmt.Fprintln(buf, strings.Repeat("=", 50))
		fmt.Fprintf(buf, "Monthly Equivalent:   %s\n", FormatCurrency(a.MonthlyPaymentEquivalent))
		fmt.Fprintf(buf, "Monthly Income:       %s\n", FormatCurrency(a.MonthlyIncome))
		fmt.Fprintf(buf, "Debt-to-Income:       %s\n", FormatPercentage(a.DebtToIncomeRatio))
		fmt.Fprintf(buf, "Comfort Level:        %s\n", a.ComfortLevel)
		fmt.Fprintf(buf, "Recommended Max:      %s\n", FormatCurrency(a.RecommendedMaxPayment))
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, "AMORTIZATION SCHEDULE")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "%4s  %-10s  %12s  %12s  %12s  %12s  %14s\n",
		"#", "Date", "Payment", "Principal", "Interest", "Extra", "Balance")
	for _, entry := range result.Schedule {
		if entry.IsHoliday {
			fmt.Fprintf(buf, "%4d  %-10s  %12s  %12s  %12s  %12s  %14s  holiday\n",
				entry.PaymentNumber, entry.PaymentDate.Format(DateLayout),
				"-", "-", "-", "-", entry.Balance.StringFixed(2))
			continue
		}
		fmt.Fprintf(buf, "%4d  %-10s  %12s  %12s  %12s  %12s  %14s\n",
			entry.PaymentNumber, entry.PaymentDate.Format(DateLayout),
			entry.ScheduledPayment.StringFixed(2),
			entry.Principal.StringFixed(2),
			entry.Interest.StringFixed(2),
			entry.ExtraPayment.StringFixed(2),
			entry.Balance.StringFixed(2))
	}

	return buf.Bytes(), nil
}

// FormatCurrency formats a decimal as a currency amount.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as a percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
