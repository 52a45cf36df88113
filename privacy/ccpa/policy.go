package ccpa

import (
	"errors"
)

const (
	ccpaVersion1      = '1'
	ccpaNo            = 'N'
	ccpaYes           = 'Y'
	ccpaNotApplicable = '-'
)

const (
	indexVersion                = 0
	indexExplicitNotice         = 1
	indexOptOutSale             = 2
	indexLSPACoveredTransaction = 3
)

const consentLength = 4

// OptOutSale is the opt-out-of-sale signal carried by a US Privacy string.
type OptOutSale int

const (
	// OptOutSaleUnknown means the value is not a US Privacy string.
	OptOutSaleUnknown OptOutSale = iota
	// OptOutSaleNo means the user did not opt out ('N').
	OptOutSaleNo
	// OptOutSaleYes means the user opted out ('Y').
	OptOutSaleYes
	// OptOutSaleNotApplicable means the signal has not been determined ('-').
	OptOutSaleNotApplicable
)

// Policy represents the CCPA regulatory information carried by an analytics event.
type Policy struct {
	Consent string
}

// ValidateConsent returns an error if the CCPA consent string does not adhere to the IAB spec.
func ValidateConsent(consent string) error {
	if consent == "" {
		return nil
	}

	if len(consent) != consentLength {
		return errors.New("must contain 4 characters")
	}

	return validatePrefix(consent)
}

func validatePrefix(consent string) error {
	if consent[indexVersion] != ccpaVersion1 {
		return errors.New("must specify version 1")
	}

	var c byte

	c = consent[indexExplicitNotice]
	if c != ccpaNo && c != ccpaYes && c != ccpaNotApplicable {
		return errors.New("must specify 'N', 'Y', or '-' for the explicit notice")
	}

	c = consent[indexOptOutSale]
	if c != ccpaNo && c != ccpaYes && c != ccpaNotApplicable {
		return errors.New("must specify 'N', 'Y', or '-' for the opt-out sale")
	}

	c = consent[indexLSPACoveredTransaction]
	if c != ccpaNo && c != ccpaYes && c != ccpaNotApplicable {
		return errors.New("must specify 'N', 'Y', or '-' for the limited service provider agreement")
	}

	return nil
}

// HasConsentShape reports whether value starts like a US Privacy string. Characters after
// the fourth one are tolerated since producers append extensions.
func HasConsentShape(value string) bool {
	if len(value) < consentLength {
		return false
	}
	return validatePrefix(value) == nil
}

// ReadOptOutSale returns the opt-out-of-sale signal of the policy consent string.
func (p Policy) ReadOptOutSale() OptOutSale {
	if !HasConsentShape(p.Consent) {
		return OptOutSaleUnknown
	}

	switch p.Consent[indexOptOutSale] {
	case ccpaNo:
		return OptOutSaleNo
	case ccpaYes:
		return OptOutSaleYes
	default:
		return OptOutSaleNotApplicable
	}
}
