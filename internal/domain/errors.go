package domain

import "errors"

// Validation error kinds. Every failure the engine can produce wraps one of
// these sentinels; callers match with errors.Is and translate into whatever
// transport-level response they use. Validation happens before simulation, so
// a schedule is never partially produced on error.
var (
	// ErrMissingRequiredField indicates principal, annual_rate, or
	// tenure_months was absent from the request.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidFrequency indicates a payment_frequency outside
	// {monthly, bi-weekly, weekly}.
	ErrInvalidFrequency = errors.New("invalid payment frequency")

	// ErrInvalidNumericInput indicates a negative or otherwise nonsensical
	// numeric parameter, such as down_payment exceeding principal.
	ErrInvalidNumericInput = errors.New("invalid numeric input")

	// ErrScheduleTooLarge indicates the terms imply more payment periods
	// than the configured safety cap allows.
	ErrScheduleTooLarge = errors.New("schedule too large")
)
