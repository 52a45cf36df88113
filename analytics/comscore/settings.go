package comscore

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/prebid/comscore-destination/errortypes"
	"github.com/spf13/cast"
	"github.com/xeipuuv/gojsonschema"
	"github.com/xorcare/pointer"
)

const (
	defaultAutoUpdateInterval = 60
	defaultUseHTTPS           = true
	defaultAutoUpdate         = false
	defaultForegroundOnly     = true
)

// consentLabel is the persistent label carrying the user consent for the sale of data.
const consentLabel = "cs_ucfr"

// AutoUpdateMode controls when the native SDK refreshes its usage properties.
type AutoUpdateMode int

const (
	AutoUpdateForegroundOnly AutoUpdateMode = iota
	AutoUpdateForegroundAndBackground
	AutoUpdateDisabled
)

func (m AutoUpdateMode) String() string {
	switch m {
	case AutoUpdateForegroundAndBackground:
		return "FOREGROUND_AND_BACKGROUND"
	case AutoUpdateDisabled:
		return "DISABLED"
	default:
		return "FOREGROUND_ONLY"
	}
}

// MarshalText makes the mode readable in sink records.
func (m AutoUpdateMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Settings holds the destination settings of one integration instance.
type Settings struct {
	CustomerID         string
	PublisherSecret    string
	AppName            *string
	UseHTTPS           bool
	AutoUpdateInterval int
	AutoUpdate         bool
	ForegroundOnly     bool
	// ConsentFlagProperty names the property or trait carrying the consent flag. Empty
	// disables the consent labels.
	ConsentFlagProperty string
}

// PublisherConfiguration is what the native SDK needs to start collecting for a publisher.
type PublisherConfiguration struct {
	PublisherID                       string            `json:"publisherId"`
	PublisherSecret                   string            `json:"publisherSecret,omitempty"`
	ApplicationName                   *string           `json:"applicationName,omitempty"`
	SecureTransmission                bool              `json:"secureTransmission"`
	UsagePropertiesAutoUpdateInterval int               `json:"usagePropertiesAutoUpdateInterval"`
	UsagePropertiesAutoUpdateMode     AutoUpdateMode    `json:"usagePropertiesAutoUpdateMode"`
	PersistentLabels                  map[string]string `json:"persistentLabels,omitempty"`
}

// String leaves the publisher secret out.
func (p PublisherConfiguration) String() string {
	appName := "<nil>"
	if p.ApplicationName != nil {
		appName = *p.ApplicationName
	}
	return fmt.Sprintf("{publisherId=%s, applicationName=%s, secureTransmission=%t, usagePropertiesAutoUpdateInterval=%d, usagePropertiesAutoUpdateMode=%s, persistentLabels=%v}",
		p.PublisherID, appName, p.SecureTransmission, p.UsagePropertiesAutoUpdateInterval, p.UsagePropertiesAutoUpdateMode, p.PersistentLabels)
}

// ParseSettings reads the destination settings bag. It never fails: missing keys and values
// that cannot be coerced to the expected type fall back to their defaults.
func ParseSettings(bag map[string]interface{}) Settings {
	s := Settings{
		CustomerID:          stringSetting(bag, "c2"),
		PublisherSecret:     stringSetting(bag, "publisherSecret"),
		UseHTTPS:            boolSetting(bag, "useHTTPS", defaultUseHTTPS),
		AutoUpdateInterval:  intSetting(bag, "autoUpdateInterval", defaultAutoUpdateInterval),
		AutoUpdate:          boolSetting(bag, "autoUpdate", defaultAutoUpdate),
		ForegroundOnly:      boolSetting(bag, "foregroundOnly", defaultForegroundOnly),
		ConsentFlagProperty: stringSetting(bag, "consentFlag"),
	}
	if s.CustomerID == "" {
		s.CustomerID = stringSetting(bag, "customerC2")
	}
	if appName := stringSetting(bag, "appName"); strings.TrimSpace(appName) != "" {
		s.AppName = pointer.String(appName)
	}
	return s
}

// AutoUpdateMode derives the usage properties mode from the two auto update flags.
func (s Settings) AutoUpdateMode() AutoUpdateMode {
	switch {
	case s.AutoUpdate:
		return AutoUpdateForegroundAndBackground
	case s.ForegroundOnly:
		return AutoUpdateForegroundOnly
	default:
		return AutoUpdateDisabled
	}
}

// PublisherConfiguration builds the configuration handed to Sink.Start. The consent label is
// registered empty so the SDK reports it as unknown until a consent flag is seen.
func (s Settings) PublisherConfiguration() PublisherConfiguration {
	return PublisherConfiguration{
		PublisherID:                       s.CustomerID,
		PublisherSecret:                   s.PublisherSecret,
		ApplicationName:                   s.AppName,
		SecureTransmission:                s.UseHTTPS,
		UsagePropertiesAutoUpdateInterval: s.AutoUpdateInterval,
		UsagePropertiesAutoUpdateMode:     s.AutoUpdateMode(),
		PersistentLabels:                  map[string]string{consentLabel: ""},
	}
}

func stringSetting(bag map[string]interface{}, key string) string {
	v, ok := bag[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

func boolSetting(bag map[string]interface{}, key string, def bool) bool {
	v, ok := bag[key]
	if !ok || v == nil {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

func intSetting(bag map[string]interface{}, key string, def int) int {
	v, ok := bag[key]
	if !ok || v == nil {
		return def
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return i
}

//go:embed settings_schema.json
var settingsSchemaJSON []byte

var (
	settingsSchema     *gojsonschema.Schema
	settingsSchemaErr  error
	settingsSchemaOnce sync.Once
)

func loadSettingsSchema() (*gojsonschema.Schema, error) {
	settingsSchemaOnce.Do(func() {
		settingsSchema, settingsSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(settingsSchemaJSON))
	})
	return settingsSchema, settingsSchemaErr
}

// ValidateSettings checks the settings bag against the destination settings schema. Every
// problem is reported as a warning since ParseSettings falls back to defaults anyway.
func ValidateSettings(bag map[string]interface{}) []error {
	var errs []error

	if ParseSettings(bag).CustomerID == "" {
		errs = append(errs, &errortypes.Warning{
			Message:     "comScore settings: c2 (customer id) is missing, no data will be attributed",
			WarningCode: errortypes.MissingCustomerIDWarningCode,
		})
	}

	schema, err := loadSettingsSchema()
	if err != nil {
		return append(errs, &errortypes.Warning{
			Message:     fmt.Sprintf("comScore settings: schema could not be loaded: %v", err),
			WarningCode: errortypes.InvalidSettingsWarningCode,
		})
	}
	if bag == nil {
		bag = map[string]interface{}{}
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(bag))
	if err != nil {
		return append(errs, &errortypes.Warning{
			Message:     fmt.Sprintf("comScore settings: %v", err),
			WarningCode: errortypes.InvalidSettingsWarningCode,
		})
	}
	for _, desc := range result.Errors() {
		errs = append(errs, &errortypes.Warning{
			Message:     fmt.Sprintf("comScore settings: %s", desc.String()),
			WarningCode: errortypes.UnsupportedValueWarningCode,
		})
	}
	return errs
}
