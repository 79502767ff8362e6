package plan

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/intervals/internal/models"
	toml "github.com/pelletier/go-toml/v2"
)

var defaultCfg = models.Configuration{WarmupCooldown: 5, Run: 5, Walk: 3, Count: 3}

func TestBuildLayout(t *testing.T) {
	p := Build(defaultCfg)
	want := []Segment{
		{Kind: KindWarmup, Duration: 5 * time.Minute},
		{Kind: KindRun, Repetition: 1, Duration: 5 * time.Minute},
		{Kind: KindWalk, Repetition: 1, Duration: 3 * time.Minute},
		{Kind: KindRun, Repetition: 2, Duration: 5 * time.Minute},
		{Kind: KindWalk, Repetition: 2, Duration: 3 * time.Minute},
		{Kind: KindRun, Repetition: 3, Duration: 5 * time.Minute},
		{Kind: KindCooldown, Duration: 5 * time.Minute},
	}
	if len(p.Segments) != len(want) {
		t.Fatalf("got %d segments, want %d: %+v", len(p.Segments), len(want), p.Segments)
	}
	for i := range want {
		if p.Segments[i] != want[i] {
			t.Fatalf("segment %d = %+v, want %+v", i, p.Segments[i], want[i])
		}
	}
	if got := p.Total(); got != 31*time.Minute {
		t.Fatalf("Total() = %s, want 31m", got)
	}
}

func TestBuildSingleRepetitionHasNoWalk(t *testing.T) {
	p := Build(models.Configuration{WarmupCooldown: 1, Run: 2, Walk: 3, Count: 1})
	for _, s := range p.Segments {
		if s.Kind == KindWalk {
			t.Fatalf("unexpected walk segment in %+v", p.Segments)
		}
	}
	if len(p.Segments) != 3 {
		t.Fatalf("expected warmup, run, cooldown; got %+v", p.Segments)
	}
}

func TestAt(t *testing.T) {
	p := Build(defaultCfg)
	cases := []struct {
		name      string
		elapsed   time.Duration
		index     int
		kind      Kind
		remaining time.Duration
		finished  bool
	}{
		{"start", 0, 0, KindWarmup, 5 * time.Minute, false},
		{"negative clamps", -time.Second, 0, KindWarmup, 5 * time.Minute, false},
		{"boundary enters run", 5 * time.Minute, 1, KindRun, 5 * time.Minute, false},
		{"mid walk", 11 * time.Minute, 2, KindWalk, 2 * time.Minute, false},
		{"last second", 31*time.Minute - time.Second, 6, KindCooldown, time.Second, false},
		{"done", 31 * time.Minute, 6, KindCooldown, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := p.At(tc.elapsed)
			if pos.Index != tc.index || pos.Segment.Kind != tc.kind || pos.Remaining != tc.remaining || pos.Finished != tc.finished {
				t.Fatalf("At(%s) = %+v", tc.elapsed, pos)
			}
		})
	}
}

func TestAtEmptyPlan(t *testing.T) {
	pos := Plan{}.At(time.Minute)
	if !pos.Finished || pos.Index != -1 {
		t.Fatalf("unexpected position for empty plan: %+v", pos)
	}
}

func TestProgress(t *testing.T) {
	p := Build(defaultCfg)
	if got := p.Progress(-time.Second); got != 0 {
		t.Fatalf("Progress(<0) = %v", got)
	}
	if got := p.Progress(p.Total() / 2); got != 0.5 {
		t.Fatalf("Progress(half) = %v", got)
	}
	if got := p.Progress(2 * p.Total()); got != 1 {
		t.Fatalf("Progress(>total) = %v", got)
	}
	if got := (Plan{}).Progress(time.Second); got != 1 {
		t.Fatalf("empty plan Progress = %v", got)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Build(defaultCfg), FormatText); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Warmup", "Run 1", "Walk 2", "Cooldown", "Total: 31 minutes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestWriteTOML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Build(defaultCfg), "TOML"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	var doc tomlPlan
	if err := toml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid TOML: %v\n%s", err, buf.String())
	}
	if doc.TotalMinutes != 31 || len(doc.Segments) != 7 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.Segments[1].Kind != "run" || doc.Segments[1].Repetition != 1 {
		t.Fatalf("unexpected first run: %+v", doc.Segments[1])
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Build(defaultCfg), FormatPDF); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Build(defaultCfg), "csv")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
