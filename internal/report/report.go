// Package report turns a session's curves into tables and documents for
// the headless curves command.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"suppression/internal/session"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts table, csv, json or yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, csv, json or yaml)", s)
}

// Curves is a snapshot of every curve of a session.
type Curves struct {
	SpeedOfSound float64      `json:"speed_of_sound" yaml:"speed_of_sound"`
	Frequencies  []float64    `json:"frequencies_hz" yaml:"frequencies_hz"`
	Stages       []StageCurve `json:"stages" yaml:"stages"`
	Total        Curve        `json:"total" yaml:"total"`
}

// StageCurve is one stage with its length and first notch.
type StageCurve struct {
	Curve   `yaml:",inline"`
	LengthM float64 `json:"length_m" yaml:"length_m"`
	// FirstNotchHz is zero for a zero-length stage.
	FirstNotchHz float64 `json:"first_notch_hz,omitempty" yaml:"first_notch_hz,omitempty"`
}

// Curve is a labelled gain curve and its deepest point.
type Curve struct {
	Label     string    `json:"label" yaml:"label"`
	Gains     []float64 `json:"gains" yaml:"gains"`
	MinGain   float64   `json:"min_gain" yaml:"min_gain"`
	MinGainHz float64   `json:"min_gain_hz" yaml:"min_gain_hz"`
}

// FromSession copies the current curves of s.
func FromSession(s *session.Session) Curves {
	freqs := s.Grid().Values()
	m := s.Model()
	c := Curves{
		SpeedOfSound: m.SpeedOfSound,
		Frequencies:  freqs,
		Total:        newCurve(session.TotalLabel, s.Total(), freqs),
	}
	lengths := s.Lengths()
	for i, st := range s.Stages() {
		sc := StageCurve{Curve: newCurve(st.Label, st.Gains(), freqs), LengthM: lengths[i]}
		if f, ok := m.NotchFrequency(lengths[i], 0); ok {
			sc.FirstNotchHz = f
		}
		c.Stages = append(c.Stages, sc)
	}
	return c
}

func newCurve(label string, gains, freqs []float64) Curve {
	c := Curve{Label: label, Gains: append([]float64(nil), gains...)}
	if len(gains) > 0 {
		i := floats.MinIdx(gains)
		c.MinGain = gains[i]
		c.MinGainHz = freqs[i]
	}
	return c
}

// Write encodes c to w.
func Write(w io.Writer, c Curves, f Format) error {
	switch f {
	case FormatTable:
		return writeTable(w, c)
	case FormatCSV:
		return writeCSV(w, c)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", f)
}

func labels(c Curves) []string {
	out := make([]string, 0, len(c.Stages)+1)
	for _, st := range c.Stages {
		out = append(out, st.Label)
	}
	return append(out, c.Total.Label)
}

func writeCSV(w io.Writer, c Curves) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"frequency_hz"}, labels(c)...)); err != nil {
		return err
	}
	row := make([]string, len(c.Stages)+2)
	for j, f := range c.Frequencies {
		row[0] = strconv.FormatFloat(f, 'g', -1, 64)
		for i, st := range c.Stages {
			row[i+1] = strconv.FormatFloat(st.Gains[j], 'f', 6, 64)
		}
		row[len(row)-1] = strconv.FormatFloat(c.Total.Gains[j], 'f', 6, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTable(w io.Writer, c Curves) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintf(tw, "Stage\tLength [m]\tFirst notch [Hz]\tMin gain\tat [Hz]\n")
	p.Fprintf(tw, "-----\t----------\t----------------\t--------\t-------\n")
	for _, st := range c.Stages {
		notch := "-"
		if st.FirstNotchHz > 0 {
			notch = p.Sprintf("%.1f", st.FirstNotchHz)
		}
		p.Fprintf(tw, "%s\t%.2f\t%s\t%.4f\t%s\n", st.Label, st.LengthM, notch, st.MinGain, hz(p, st.MinGainHz))
	}
	p.Fprintf(tw, "%s\t\t\t%.4f\t%s\n", c.Total.Label, c.Total.MinGain, hz(p, c.Total.MinGainHz))
	p.Fprintf(tw, "\n")

	p.Fprintf(tw, "Freq [Hz]\t%s\n", strings.Join(labels(c), "\t"))
	for j, f := range c.Frequencies {
		p.Fprintf(tw, "%s", hz(p, f))
		for _, st := range c.Stages {
			p.Fprintf(tw, "\t%.4f", st.Gains[j])
		}
		p.Fprintf(tw, "\t%.4f\n", c.Total.Gains[j])
	}
	return tw.Flush()
}

// hz prints whole frequencies as grouped integers.
func hz(p *message.Printer, f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return p.Sprintf("%d", int64(f))
	}
	return p.Sprintf("%.2f", f)
}
