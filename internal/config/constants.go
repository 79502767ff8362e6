package config

import (
	"time"

	"github.com/akyairhashvil/intervals/internal/models"
)

// Timer cadence.
const (
	TickInterval = 250 * time.Millisecond
	BlankAfter   = 1000 * time.Millisecond
)

// Field bounds shared by every configuration value.
const (
	FieldMin = 1
	FieldMax = 10
)

// Default configuration values.
const (
	DefaultRun            = 5
	DefaultWalk           = 3
	DefaultWarmupCooldown = 5
	DefaultCount          = 3
)

// Application settings.
const (
	AppName        = "intervals"
	ConfigFileName = "config"
	ConfigFileType = "toml"
	EnvPrefix      = "INTERVALS"
	DefaultTheme   = "default"
)

// DefaultConfiguration returns the configuration a fresh session starts with.
func DefaultConfiguration() models.Configuration {
	return models.Configuration{
		WarmupCooldown: DefaultWarmupCooldown,
		Run:            DefaultRun,
		Walk:           DefaultWalk,
		Count:          DefaultCount,
	}
}

// FieldSpecs returns the presentation and bounds of each field in form order.
func FieldSpecs() []models.FieldSpec {
	return []models.FieldSpec{
		{Field: models.FieldRun, Label: "Run duration", Unit: "minute(s)", Min: FieldMin, Max: FieldMax},
		{Field: models.FieldWalk, Label: "Walk duration", Unit: "minute(s)", Min: FieldMin, Max: FieldMax},
		{Field: models.FieldWarmupCooldown, Label: "Warmup/cooldown duration", Unit: "minute(s)", Min: FieldMin, Max: FieldMax},
		{Field: models.FieldCount, Label: "Count", Unit: "time(s)", Min: FieldMin, Max: FieldMax},
	}
}
