package errortypes

// Defines numeric codes for well-known errors.
const (
	UnknownErrorCode  = 999
	BadInputErrorCode = iota
	InvalidSettingsErrorCode
	MalformedMessageErrorCode
	FailedToMarshalErrorCode
	SinkWriteErrorCode
)

// Defines numeric codes for well-known warnings.
const (
	UnknownWarningCode         = 10999
	InvalidSettingsWarningCode = iota + 10000
	MissingCustomerIDWarningCode
	UnsupportedValueWarningCode
	InvalidPrivacyConsentWarningCode
	IgnoredSettingWarningCode
)

// Coder provides an interface to use if we want to check the code of an error type created in this package.
type Coder interface {
	Code() int
	Severity() Severity
}

// ReadCode returns the error or warning code, or UnknownErrorCode if unavailable.
func ReadCode(err error) int {
	if ce, ok := err.(Coder); ok {
		return ce.Code()
	}
	return UnknownErrorCode
}
