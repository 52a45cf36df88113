package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/golang/glog"
	"github.com/prebid/comscore-destination/errortypes"
	"github.com/prebid/comscore-destination/util/jsonutil"
	"github.com/spf13/viper"
)

// Configuration specifies the static application config of the replay binary.
type Configuration struct {
	Destination Destination `mapstructure:"destination"`
	Input       Input       `mapstructure:"input"`
	Sink        Sink        `mapstructure:"sink"`
	Metrics     Metrics     `mapstructure:"metrics"`
}

// Destination locates the comScore settings bag.
//
// The bag lives in its own JSON file because viper folds keys to lower case and the settings
// keys (publisherSecret, autoUpdateInterval...) are case sensitive.
type Destination struct {
	SettingsFile string `mapstructure:"settings_file"`
}

// Input is the newline delimited JSON stream of analytics messages to replay.
type Input struct {
	// Path of the input file, "-" reads stdin.
	Path string `mapstructure:"path"`
}

const (
	SinkTypeLog  = "log"
	SinkTypeFile = "file"
)

type Sink struct {
	Type string   `mapstructure:"type"`
	File FileSink `mapstructure:"file"`
}

// FileSink configures the sink writing one JSON record per native SDK call.
type FileSink struct {
	Filename string `mapstructure:"filename"`
	// BufferSize is a human readable size ("64KB") after which buffered records are flushed.
	BufferSize    string        `mapstructure:"buffer_size"`
	MaxEvents     int64         `mapstructure:"max_events"`
	FlushInterval time.Duration `mapstructure:"flush_interval"`
}

type Metrics struct {
	GoMetrics  GoMetrics         `mapstructure:"gometrics"`
	Prometheus PrometheusMetrics `mapstructure:"prometheus"`
}

type GoMetrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Prefix  string `mapstructure:"prefix"`
}

type PrometheusMetrics struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

func (cfg *Configuration) validate() []error {
	var errs []error
	errs = cfg.Input.validate(errs)
	errs = cfg.Sink.validate(errs)
	errs = cfg.Metrics.validate(errs)
	return errs
}

func (i Input) validate(errs []error) []error {
	if i.Path == "" {
		errs = append(errs, &errortypes.InvalidSettings{Message: "input.path must not be empty, use \"-\" for stdin"})
	}
	return errs
}

func (s Sink) validate(errs []error) []error {
	switch s.Type {
	case SinkTypeLog:
		if s.File.Filename != "" {
			errs = append(errs, &errortypes.Warning{
				Message:     fmt.Sprintf("sink.file.filename %q is ignored by the log sink", s.File.Filename),
				WarningCode: errortypes.IgnoredSettingWarningCode,
			})
		}
	case SinkTypeFile:
		errs = s.File.validate(errs)
	default:
		errs = append(errs, &errortypes.InvalidSettings{Message: fmt.Sprintf("sink.type %q is not supported, expected %q or %q", s.Type, SinkTypeLog, SinkTypeFile)})
	}
	return errs
}

func (f FileSink) validate(errs []error) []error {
	if f.Filename == "" {
		errs = append(errs, &errortypes.InvalidSettings{Message: "sink.file.filename is required for the file sink"})
	}
	if _, err := units.FromHumanSize(f.BufferSize); err != nil {
		errs = append(errs, &errortypes.InvalidSettings{Message: fmt.Sprintf("sink.file.buffer_size %q: %v", f.BufferSize, err)})
	}
	if f.MaxEvents <= 0 {
		errs = append(errs, &errortypes.InvalidSettings{Message: fmt.Sprintf("sink.file.max_events must be positive, got %d", f.MaxEvents)})
	}
	if f.FlushInterval <= 0 {
		errs = append(errs, &errortypes.InvalidSettings{Message: fmt.Sprintf("sink.file.flush_interval must be positive, got %s", f.FlushInterval)})
	}
	return errs
}

func (m Metrics) validate(errs []error) []error {
	if m.Prometheus.Enabled && m.Prometheus.Namespace == "" {
		errs = append(errs, &errortypes.InvalidSettings{Message: "metrics.prometheus.namespace is required when prometheus metrics are enabled"})
	}
	return errs
}

// LoadSettings reads the destination settings bag. A missing settings file yields an empty bag,
// every setting then takes its default.
func (d Destination) LoadSettings() (map[string]interface{}, error) {
	bag := make(map[string]interface{})
	if d.SettingsFile == "" {
		return bag, nil
	}
	data, err := os.ReadFile(d.SettingsFile)
	if err != nil {
		return nil, fmt.Errorf("reading destination settings %s: %v", d.SettingsFile, err)
	}
	if err := jsonutil.Unmarshal(data, &bag); err != nil {
		return nil, &errortypes.InvalidSettings{Message: fmt.Sprintf("destination settings %s: %v", d.SettingsFile, err)}
	}
	return bag, nil
}

// New uses viper to get our replay configurations.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal app config: %v", err)
	}
	glog.Info("Logging the resolved configuration:")
	logStruct(c)

	errs := c.validate()
	for _, warning := range errortypes.WarningOnly(errs) {
		glog.Warning(warning.Error())
	}
	if errortypes.ContainsFatalError(errs) {
		return &c, errortypes.NewAggregateErrors("validation errors", errortypes.FatalOnly(errs))
	}
	return &c, nil
}

// SetupViper sets up the default values and the config file lookup paths.
func SetupViper(v *viper.Viper, filename string) {
	if filename != "" {
		v.SetConfigName(filename)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/config")
	}

	v.SetDefault("destination.settings_file", "")
	v.SetDefault("input.path", "-")
	v.SetDefault("sink.type", SinkTypeLog)
	v.SetDefault("sink.file.filename", "")
	v.SetDefault("sink.file.buffer_size", "64KB")
	v.SetDefault("sink.file.max_events", 1000)
	v.SetDefault("sink.file.flush_interval", "5s")
	v.SetDefault("metrics.gometrics.enabled", false)
	v.SetDefault("metrics.gometrics.prefix", "comscore.")
	v.SetDefault("metrics.prometheus.enabled", false)
	v.SetDefault("metrics.prometheus.namespace", "comscore")
	v.SetDefault("metrics.prometheus.subsystem", "destination")

	v.SetEnvPrefix("COMSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filename != "" {
		if err := v.ReadInConfig(); err != nil {
			glog.Warningf("Viper could not read the config file %s, using defaults and environment: %v", filename, err)
		}
	}
}
