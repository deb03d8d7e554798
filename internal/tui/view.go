package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loanworks/loancalc/internal/domain"
	"github.com/loanworks/loancalc/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading schedule..."
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	s := m.result.Summary

	title := TitleStyle.Render("Amortization Schedule")

	lines := []string{
		fmt.Sprintf("%s %s  %s %s  %s %d mo",
			LabelStyle.Render("Financed:"), output.FormatCurrency(s.TotalPrincipal),
			LabelStyle.Render("Rate:"), output.FormatPercentage(s.AnnualRate),
			LabelStyle.Render("Tenure:"), s.TenureMonths),
		fmt.Sprintf("%s %s (%s)  %s %s  %s %s",
			LabelStyle.Render("Payment:"), output.FormatCurrency(s.RegularPayment), s.PaymentFrequency,
			LabelStyle.Render("Interest:"), output.FormatCurrency(s.TotalInterest),
			LabelStyle.Render("Total Cost:"), output.FormatCurrency(s.TotalCost)),
	}

	if a := m.result.Affordability; a != nil {
		lines = append(lines, fmt.Sprintf("%s %s of income (%s)",
			LabelStyle.Render("Burden:"),
			output.FormatPercentage(a.DebtToIncomeRatio),
			comfortStyle(string(a.ComfortLevel)).Render(string(a.ComfortLevel))))
	}

	card := SummaryCardStyle.Width(m.width - 2).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, title, card)
}

func (m Model) renderSchedule() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%4s  %-10s  %12s  %12s  %12s  %12s  %14s\n",
		"#", "Date", "Payment", "Principal", "Interest", "Extra", "Balance")
	b.WriteString(strings.Repeat("─", 88))
	b.WriteString("\n")

	for _, entry := range m.result.Schedule {
		b.WriteString(renderEntry(entry))
		b.WriteString("\n")
	}

	return b.String()
}

func renderEntry(entry domain.ScheduleEntry) string {
	if entry.IsHoliday {
		return HolidayStyle.Render(fmt.Sprintf("%4d  %-10s  %12s  %12s  %12s  %12s  %14s  holiday",
			entry.PaymentNumber, entry.PaymentDate.Format(output.DateLayout),
			"-", "-", "-", "-", entry.Balance.StringFixed(2)))
	}
	return fmt.Sprintf("%4d  %-10s  %12s  %12s  %12s  %12s  %14s",
		entry.PaymentNumber, entry.PaymentDate.Format(output.DateLayout),
		entry.ScheduledPayment.StringFixed(2),
		entry.Principal.StringFixed(2),
		entry.Interest.StringFixed(2),
		entry.ExtraPayment.StringFixed(2),
		entry.Balance.StringFixed(2))
}

func (m Model) renderFooter() string {
	if !m.ready {
		return HelpStyle.Render("↑/↓ scroll · q quit")
	}
	return HelpStyle.Render(fmt.Sprintf("%d entries · ↑/↓ scroll · q quit · %3.0f%%",
		len(m.result.Schedule), m.viewport.ScrollPercent()*100))
}
