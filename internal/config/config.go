package config

import (
	"os"

	"codeberg.org/mutker/faultctl/internal/condition"
	"codeberg.org/mutker/faultctl/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName       = "faultctl"
	configType       = "toml"
	configDir        = "/etc"
	defaultEnvPrefix = "FAULTCTL"

	DefaultCondition = "not_supported"
	DefaultLogLevel  = "warning"
	DefaultDatabase  = "/var/lib/faultctl/faults.db"
)

type Config struct {
	Condition string `mapstructure:"condition"`
	Journal   bool   `mapstructure:"journal"`
	Database  string `mapstructure:"database"`
	LogLevel  string `mapstructure:"log_level"`
	Debug     bool   `mapstructure:"debug"`
	Verbose   bool   `mapstructure:"verbose"`
}

// Load reads configuration from flags, environment and the TOML config
// file, in that order of precedence. The defaults reproduce the bare
// invocation: raise not_supported, report on stderr, no journal.
func Load(opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	v.SetDefault("condition", DefaultCondition)
	v.SetDefault("journal", false)
	v.SetDefault("database", DefaultDatabase)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)

	// Each Load parses its own flag set
	flags := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	flags.String("condition", DefaultCondition, "Symbolic condition to raise")
	flags.Bool("journal", false, "Record raised conditions in the fault journal")
	flags.String("database", DefaultDatabase, "Path to the fault journal database")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	flags.Bool("debug", false, "Enable debugging mode")
	flags.Bool("verbose", false, "Enable verbose logging")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	bindings := map[string]string{
		"condition": "condition",
		"journal":   "journal",
		"database":  "database",
		"log_level": "log-level",
		"debug":     "debug",
		"verbose":   "verbose",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(o.envPrefix)
	v.AutomaticEnv()

	// An explicit path (option or FAULTCTL_CONFIG) wins over the
	// search path; a missing file is only an error when explicit
	switch {
	case o.configPath != "":
		v.SetConfigFile(o.configPath)
	case os.Getenv(o.envPrefix+"_CONFIG") != "":
		v.SetConfigFile(os.Getenv(o.envPrefix + "_CONFIG"))
	default:
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if o.searchPath != "" {
			v.AddConfigPath(o.searchPath)
		} else {
			v.AddConfigPath(configDir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, struct {
			Level string
		}{Level: c.LogLevel})
	}

	if _, err := condition.ParseErrc(c.Condition); err != nil {
		return errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if c.Journal && c.Database == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "journal enabled without a database path")
	}

	return nil
}
