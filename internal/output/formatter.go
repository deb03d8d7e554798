package output

import "github.com/loanworks/loancalc/internal/domain"

// Formatter renders a calculation result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.LoanResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for the given name, or nil when the
// name is unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "json":
		return JSONFormatter{Pretty: true}
	case "json-compact":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	case "table":
		return TableFormatter{}
	default:
		return nil
	}
}
