package quizgen

import "fmt"

// ValidationError describes why a generated batch failed shape validation.
// These errors are never retried blindly; the orchestrator feeds the message
// back into the next generation attempt.
type ValidationError struct {
	Check   string // short identifier of the failed check
	Message string // human-readable description, safe to echo into a prompt
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation %q: %s", e.Check, e.Message)
}

func validationErrorf(check, format string, args ...any) *ValidationError {
	return &ValidationError{Check: check, Message: fmt.Sprintf(format, args...)}
}
