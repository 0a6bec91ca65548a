package config

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath string
	searchPath string
	envPrefix  string
}

// WithConfigFile specifies an explicit configuration file path. The
// file must exist; a missing explicit file is a load error.
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithSearchPath overrides the directory searched for faultctl.toml.
// Default is /etc. A missing file on the search path is not an error.
func WithSearchPath(dir string) Option {
	return func(o *options) error {
		o.searchPath = dir
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "FAULTCTL"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		o.envPrefix = prefix
		return nil
	}
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}
