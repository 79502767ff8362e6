package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/intervals/internal/models"
	"github.com/akyairhashvil/intervals/internal/util"
	"github.com/spf13/viper"
)

// Setting keys. Each is also reachable as INTERVALS_<KEY> with dots
// replaced by underscores.
const (
	KeyRun       = "run"
	KeyWalk      = "walk"
	KeyWarmup    = "warmup"
	KeyCount     = "count"
	KeyTheme     = "theme"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyLogFile   = "log.file"
)

var ErrOutOfRange = errors.New("value out of range")

// Settings is the startup configuration of the application. It is read once
// and never written back.
type Settings struct {
	Configuration models.Configuration
	Theme         string
	LogLevel      string
	LogFormat     string
	LogFile       string
}

// Load resolves settings from defaults, an optional TOML file, the
// environment and any flags already bound to v. An explicit configFile must
// exist; the default location is optional.
func Load(v *viper.Viper, configFile string) (Settings, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetDefault(KeyRun, DefaultRun)
	v.SetDefault(KeyWalk, DefaultWalk)
	v.SetDefault(KeyWarmup, DefaultWarmupCooldown)
	v.SetDefault(KeyCount, DefaultCount)
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileType)
		v.AddConfigPath(util.ConfigDir(AppName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	s := Settings{
		Configuration: models.Configuration{
			WarmupCooldown: v.GetInt(KeyWarmup),
			Run:            v.GetInt(KeyRun),
			Walk:           v.GetInt(KeyWalk),
			Count:          v.GetInt(KeyCount),
		},
		Theme:     v.GetString(KeyTheme),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		LogFile:   v.GetString(KeyLogFile),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks every configuration value against its field bounds.
func (s Settings) Validate() error {
	for _, def := range FieldSpecs() {
		value := s.Configuration.Get(def.Field)
		if value < def.Min || value > def.Max {
			return fmt.Errorf("%s must be between %d and %d, got %d: %w", def.Field, def.Min, def.Max, value, ErrOutOfRange)
		}
	}
	return nil
}
