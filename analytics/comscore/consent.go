package comscore

import (
	"fmt"

	"github.com/prebid/comscore-destination/analytics"
	"github.com/prebid/comscore-destination/errortypes"
	"github.com/prebid/comscore-destination/metrics"
	"github.com/prebid/comscore-destination/privacy/ccpa"
)

// Consent flag values written to the cs_ucfr label.
const (
	consentGranted = "1"
	consentDenied  = "0"
	consentUnknown = ""
)

// classifyConsent normalizes a consent flag. Booleans, "1"/"0" and "true"/"false" are taken
// literally. A US Privacy string grants consent when the user did not opt out of the sale and
// denies it when they did. A US Privacy string without an opt-out signal suppresses the flag.
// Anything else is reported as unknown.
func classifyConsent(value analytics.Value) (string, metrics.ConsentStatus) {
	if b, ok := value.Boolean(); ok && value.Kind() == analytics.KindBool {
		if b {
			return consentGranted, metrics.ConsentGranted
		}
		return consentDenied, metrics.ConsentDenied
	}

	s := value.String()
	switch s {
	case "1", "true":
		return consentGranted, metrics.ConsentGranted
	case "0", "false":
		return consentDenied, metrics.ConsentDenied
	}

	switch (ccpa.Policy{Consent: s}).ReadOptOutSale() {
	case ccpa.OptOutSaleNo:
		return consentGranted, metrics.ConsentGranted
	case ccpa.OptOutSaleYes:
		return consentDenied, metrics.ConsentDenied
	case ccpa.OptOutSaleNotApplicable:
		return consentUnknown, metrics.ConsentSuppressed
	}
	return consentUnknown, metrics.ConsentUnknown
}

// applyConsent reports the consent flag carried by a call, if the settings name one and the
// call carries it. The flag is looked up in primary first, then in fallback.
func (i *Integration) applyConsent(primary, fallback *analytics.Properties) {
	key := i.settings.ConsentFlagProperty
	if key == "" {
		return
	}
	value, ok := primary.Get(key)
	if !ok {
		if value, ok = fallback.Get(key); !ok {
			return
		}
	}

	flag, status := classifyConsent(value)
	i.metricsEngine.RecordConsent(status)
	switch status {
	case metrics.ConsentSuppressed:
		i.logger.Debugf("consent flag %q has no opt-out signal, not reported", value.String())
		return
	case metrics.ConsentUnknown:
		warning := &errortypes.Warning{
			Message:     fmt.Sprintf("consent flag %s=%q is not recognized, reporting it as unknown", key, value.String()),
			WarningCode: errortypes.InvalidPrivacyConsentWarningCode,
		}
		i.logger.Warnf("%v", warning)
	}

	labels := LabelsOf(consentLabel, flag)
	i.sink.SetPersistentLabels(labels)
	i.sink.NotifyHiddenEvent(labels)
}
