package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/loanworks/loancalc/internal/domain"
)

// CSVFormatter renders the amortization schedule as CSV, one row per payment
// period.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.LoanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"PaymentNumber", "PaymentDate", "Payment", "Principal", "Interest", "ExtraPayment", "Balance", "IsHoliday"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, entry := range result.Schedule {
		row := []string{
			strconv.Itoa(entry.PaymentNumber),
			entry.PaymentDate.Format(DateLayout),
			entry.ScheduledPayment.StringFixed(2),
			entry.Principal.StringFixed(2),
			entry.Interest.StringFixed(2),
			entry.ExtraPayment.StringFixed(2),
			entry.Balance.StringFixed(2),
			strconv.FormatBool(entry.IsHoliday),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
