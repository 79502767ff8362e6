package plan

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/akyairhashvil/intervals/internal/util"
	"github.com/go-pdf/fpdf"
	toml "github.com/pelletier/go-toml/v2"
)

// Export formats.
const (
	FormatText = "text"
	FormatTOML = "toml"
	FormatPDF  = "pdf"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Write renders p in the named format.
func Write(w io.Writer, p Plan, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return WriteText(w, p)
	case FormatTOML:
		return WriteTOML(w, p)
	case FormatPDF:
		return WritePDF(w, p)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

func segmentLabel(s Segment) string {
	if s.Repetition > 0 {
		return fmt.Sprintf("%s %d", s.Kind, s.Repetition)
	}
	return s.Kind.String()
}

func WriteText(w io.Writer, p Plan) error {
	var b strings.Builder
	for i, s := range p.Segments {
		fmt.Fprintf(&b, "%2d. %-12s %s\n", i+1, segmentLabel(s), util.MinutesLabel(int(s.Duration.Minutes())))
	}
	fmt.Fprintf(&b, "Total: %s\n", util.MinutesLabel(int(p.Total().Minutes())))
	_, err := io.WriteString(w, b.String())
	return err
}

type tomlSegment struct {
	Kind       string `toml:"kind"`
	Repetition int    `toml:"repetition,omitempty"`
	Minutes    int    `toml:"minutes"`
}

type tomlPlan struct {
	Run            int           `toml:"run"`
	Walk           int           `toml:"walk"`
	WarmupCooldown int           `toml:"warmup"`
	Count          int           `toml:"count"`
	TotalMinutes   int           `toml:"total_minutes"`
	Segments       []tomlSegment `toml:"segment"`
}

func WriteTOML(w io.Writer, p Plan) error {
	doc := tomlPlan{
		Run:            p.Configuration.Run,
		Walk:           p.Configuration.Walk,
		WarmupCooldown: p.Configuration.WarmupCooldown,
		Count:          p.Configuration.Count,
		TotalMinutes:   int(p.Total().Minutes()),
	}
	for _, s := range p.Segments {
		doc.Segments = append(doc.Segments, tomlSegment{
			Kind:       strings.ToLower(s.Kind.String()),
			Repetition: s.Repetition,
			Minutes:    int(s.Duration.Minutes()),
		})
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return nil
}

// WritePDF renders a one-page printable card of the plan.
func WritePDF(w io.Writer, p Plan) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Intervals")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	cfg := p.Configuration
	pdf.Cell(0, 8, fmt.Sprintf("Run %d min / Walk %d min x %d, warmup and cooldown %d min",
		cfg.Run, cfg.Walk, cfg.Count, cfg.WarmupCooldown))
	pdf.Ln(12)

	var start int
	for i, s := range p.Segments {
		mins := int(s.Duration.Minutes())
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(12, 8, fmt.Sprintf("%d.", i+1))
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(50, 8, segmentLabel(s))
		pdf.Cell(40, 8, util.MinutesLabel(mins))
		pdf.Cell(0, 8, fmt.Sprintf("starts at %d:00", start))
		pdf.Ln(7)
		start += mins
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %s", util.MinutesLabel(int(p.Total().Minutes()))))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
