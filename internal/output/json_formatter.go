package output

import (
	"encoding/json"

	"github.com/loanworks/loancalc/internal/domain"
)

// JSONFormatter renders a result as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (jf JSONFormatter) Name() string {
	if jf.Pretty {
		return "json"
	}
	return "json-compact"
}

func (jf JSONFormatter) Format(result *domain.LoanResult) ([]byte, error) {
	response := BuildResponse(result)
	if jf.Pretty {
		return json.MarshalIndent(response, "", "  ")
	}
	return json.Marshal(response)
}
