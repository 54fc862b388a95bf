package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	dirName  = ".mdpane"
	fileName = "config"
	fileType = "yaml"

	EnvPrefix = "MDPANE"
)

// Keys understood in the config file and as MDPANE_* environment variables.
const (
	KeyLanguage     = "language"
	KeyHistoryLimit = "history_limit"
	KeyLineNumbers  = "line_numbers"
	KeyTheme        = "theme"
	KeyLogFile      = "log_file"
	KeyLogLevel     = "log_level"
)

// Config holds the resolved settings.
type Config struct {
	Language     string
	HistoryLimit int
	LineNumbers  bool
	Theme        string
	LogFile      string
	LogLevel     string
}

// Dir returns the config directory (~/.mdpane/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// FilePath returns the default config file path (~/.mdpane/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// New returns a viper instance with defaults, env binding and the config
// file at path (FilePath() when empty). A missing file is not an error.
func New(path string) (*viper.Viper, error) {
	if path == "" {
		path = FilePath()
	}

	v := viper.New()
	v.SetDefault(KeyLanguage, "javascript")
	v.SetDefault(KeyHistoryLimit, 1000)
	v.SetDefault(KeyLineNumbers, false)
	v.SetDefault(KeyTheme, "monokai")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")

	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return v, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return v, nil
}

// FromViper resolves a Config from v.
func FromViper(v *viper.Viper) Config {
	return Config{
		Language:     v.GetString(KeyLanguage),
		HistoryLimit: v.GetInt(KeyHistoryLimit),
		LineNumbers:  v.GetBool(KeyLineNumbers),
		Theme:        v.GetString(KeyTheme),
		LogFile:      v.GetString(KeyLogFile),
		LogLevel:     v.GetString(KeyLogLevel),
	}
}

// Load reads the config file at path and the environment.
func Load(path string) (Config, error) {
	v, err := New(path)
	if err != nil {
		return Config{}, err
	}
	return FromViper(v), nil
}
