package errortypes

// Severity represents the severity level of an event processing error.
type Severity int

const (
	// SeverityUnknown represents an unknown severity level.
	SeverityUnknown Severity = iota

	// SeverityFatal represents an error which prevents the input from being used at all.
	SeverityFatal

	// SeverityWarning represents a non-fatal error where invalid or ambiguous
	// input was ignored or replaced by a default.
	SeverityWarning
)

func isFatal(err error) bool {
	s, ok := err.(Coder)
	return !ok || s.Severity() == SeverityFatal
}

// IsWarning reports whether err is labeled SeverityWarning. Only Warning carries that label.
func IsWarning(err error) bool {
	s, ok := err.(Coder)
	return ok && s.Severity() == SeverityWarning
}

// ContainsFatalError reports whether any error in errs is fatal. Errors without a Coder count as fatal.
func ContainsFatalError(errs []error) bool {
	for _, err := range errs {
		if isFatal(err) {
			return true
		}
	}
	return false
}

// FatalOnly keeps the fatal errors of errs.
func FatalOnly(errs []error) []error {
	return keep(errs, isFatal)
}

// WarningOnly keeps the warnings of errs.
func WarningOnly(errs []error) []error {
	return keep(errs, IsWarning)
}

func keep(errs []error, match func(error) bool) []error {
	kept := make([]error, 0, len(errs))
	for _, err := range errs {
		if match(err) {
			kept = append(kept, err)
		}
	}
	return kept
}
