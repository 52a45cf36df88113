package errortypes

// BadInput should be used when returning errors which are caused by bad input.
// It should _not_ be used if the error is a server-side issue (e.g. failed to write to the sink).
type BadInput struct {
	Message string
}

func (err *BadInput) Error() string {
	return err.Message
}

func (err *BadInput) Code() int {
	return BadInputErrorCode
}

func (err *BadInput) Severity() Severity {
	return SeverityFatal
}

// InvalidSettings should be used when a destination settings bag or a configuration file
// cannot be turned into a usable configuration.
type InvalidSettings struct {
	Message string
}

func (err *InvalidSettings) Error() string {
	return err.Message
}

func (err *InvalidSettings) Code() int {
	return InvalidSettingsErrorCode
}

func (err *InvalidSettings) Severity() Severity {
	return SeverityFatal
}

// MalformedMessage should be used when an inbound analytics message could not be decoded.
type MalformedMessage struct {
	Message string
}

func (err *MalformedMessage) Error() string {
	return err.Message
}

func (err *MalformedMessage) Code() int {
	return MalformedMessageErrorCode
}

func (err *MalformedMessage) Severity() Severity {
	return SeverityFatal
}

// FailedToMarshal should be used to represent errors that occur when encoding a sink record.
type FailedToMarshal struct {
	Message string
}

func (err *FailedToMarshal) Error() string {
	return err.Message
}

func (err *FailedToMarshal) Code() int {
	return FailedToMarshalErrorCode
}

func (err *FailedToMarshal) Severity() Severity {
	return SeverityFatal
}

// SinkWrite should be used when a sink failed to persist a vendor call.
type SinkWrite struct {
	Message string
}

func (err *SinkWrite) Error() string {
	return err.Message
}

func (err *SinkWrite) Code() int {
	return SinkWriteErrorCode
}

func (err *SinkWrite) Severity() Severity {
	return SeverityFatal
}

// Warning is a generic non-fatal error. Settings are still usable when only warnings are reported.
type Warning struct {
	Message     string
	WarningCode int
}

func (err *Warning) Error() string {
	return err.Message
}

func (err *Warning) Code() int {
	return err.WarningCode
}

func (err *Warning) Severity() Severity {
	return SeverityWarning
}
