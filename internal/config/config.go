// Package config loads the chronoassert application configuration from
// defaults, an optional config file, environment variables and bound
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"

	"digital.vasic.chronoassert/pkg/logging"
	"digital.vasic.chronoassert/pkg/report"
)

// ApplicationName is used for the config file name and the
// environment variable prefix.
const ApplicationName = "chronoassert"

// Application holds all user-facing options.
type Application struct {
	// ConfigPath is the config file that was read, if any.
	ConfigPath string `yaml:",omitempty" mapstructure:"-"`

	// Output is the report format: table, json or markdown.
	Output string `yaml:"output" mapstructure:"output"`

	// Log holds logging options.
	Log Logging `yaml:"log" mapstructure:"log"`

	// Monitor holds options for the serve command.
	Monitor Monitor `yaml:"monitor" mapstructure:"monitor"`
}

// Monitor configures the periodic evaluation event stream.
type Monitor struct {
	Addr     string        `yaml:"addr" mapstructure:"addr"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// Logging contains the logging options.
type Logging struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Structured bool   `yaml:"structured" mapstructure:"structured"`
	File       string `yaml:"file" mapstructure:"file"`

	// LevelOpt is the parsed form of Level.
	LevelOpt logging.LogLevel `yaml:"-" mapstructure:"-"`
}

func loadDefaultValues(v *viper.Viper) {
	v.SetDefault("output", string(report.FormatTable))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.structured", false)
	v.SetDefault("log.file", "")
	v.SetDefault("monitor.addr", ":8089")
	v.SetDefault("monitor.interval", 30*time.Second)
}

// Load reads the configuration into a new Application. When
// configPath is empty, ./.chronoassert.yaml is used if present.
func Load(v *viper.Viper, configPath string) (*Application, error) {
	loadDefaultValues(v)

	v.SetEnvPrefix(ApplicationName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("." + ApplicationName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config: %w", err)
		}
	}

	app := &Application{}
	if err := v.Unmarshal(app); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	app.ConfigPath = v.ConfigFileUsed()

	if err := app.parseConfigValues(); err != nil {
		return nil, fmt.Errorf("invalid application config: %w", err)
	}

	return app, nil
}

func (cfg *Application) parseConfigValues() error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	cfg.Log.LevelOpt = level

	if _, err := report.New(cfg.Output); err != nil {
		return err
	}

	if cfg.Monitor.Interval <= 0 {
		return fmt.Errorf("monitor interval must be positive, got %s", cfg.Monitor.Interval)
	}
	return nil
}

// NewLogger builds the logger described by the logging options,
// writing to out (stderr when nil) and to the log file if one is set.
func (cfg *Application) NewLogger(out io.Writer) (logging.Logger, error) {
	return logging.NewLogrusLogger(logging.LogrusConfig{
		Output:     out,
		FilePath:   cfg.Log.File,
		Level:      cfg.Log.LevelOpt,
		Structured: cfg.Log.Structured,
		Fields:     map[string]any{"app": ApplicationName},
	})
}
