package models

// Field identifies one editable value of a Configuration.
type Field int

const (
	FieldRun Field = iota
	FieldWalk
	FieldWarmupCooldown
	FieldCount
)

// Fields lists every Field in form order.
var Fields = []Field{FieldRun, FieldWalk, FieldWarmupCooldown, FieldCount}

func (f Field) String() string {
	switch f {
	case FieldRun:
		return "run"
	case FieldWalk:
		return "walk"
	case FieldWarmupCooldown:
		return "warmup"
	case FieldCount:
		return "count"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the declared fields.
func (f Field) Valid() bool {
	return f >= FieldRun && f <= FieldCount
}

// Configuration is the immutable set of values the user edits before a run.
// Durations are whole minutes; Count is the number of run repetitions.
type Configuration struct {
	WarmupCooldown int
	Run            int
	Walk           int
	Count          int
}

// Get returns the value of field f, or 0 for an unknown field.
func (c Configuration) Get(f Field) int {
	switch f {
	case FieldRun:
		return c.Run
	case FieldWalk:
		return c.Walk
	case FieldWarmupCooldown:
		return c.WarmupCooldown
	case FieldCount:
		return c.Count
	default:
		return 0
	}
}

// With returns a copy of c with field f replaced. Unknown fields leave c
// unchanged.
func (c Configuration) With(f Field, value int) Configuration {
	switch f {
	case FieldRun:
		c.Run = value
	case FieldWalk:
		c.Walk = value
	case FieldWarmupCooldown:
		c.WarmupCooldown = value
	case FieldCount:
		c.Count = value
	}
	return c
}

// FieldSpec describes how a field is presented and bounded.
type FieldSpec struct {
	Field Field
	Label string
	Unit  string
	Min   int
	Max   int
}
