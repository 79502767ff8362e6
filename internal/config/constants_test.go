package config

import (
	"testing"

	"github.com/akyairhashvil/intervals/internal/models"
)

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if BlankAfter <= TickInterval {
		t.Fatalf("BlankAfter must exceed one tick")
	}
	if FieldMin > FieldMax {
		t.Fatalf("FieldMin must not exceed FieldMax")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
}

func TestDefaultConfiguration(t *testing.T) {
	got := DefaultConfiguration()
	want := models.Configuration{WarmupCooldown: 5, Run: 5, Walk: 3, Count: 3}
	if got != want {
		t.Fatalf("DefaultConfiguration() = %+v, want %+v", got, want)
	}
}

func TestFieldSpecsCoverEveryField(t *testing.T) {
	defs := FieldSpecs()
	if len(defs) != len(models.Fields) {
		t.Fatalf("expected %d field definitions, got %d", len(models.Fields), len(defs))
	}
	defaults := DefaultConfiguration()
	for i, def := range defs {
		if def.Field != models.Fields[i] {
			t.Fatalf("field %d is %s, want %s", i, def.Field, models.Fields[i])
		}
		if def.Label == "" || def.Unit == "" {
			t.Fatalf("field %s missing label or unit", def.Field)
		}
		if v := defaults.Get(def.Field); v < def.Min || v > def.Max {
			t.Fatalf("default %s=%d outside [%d,%d]", def.Field, v, def.Min, def.Max)
		}
	}
}
