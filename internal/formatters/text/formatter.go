// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"curp-scan/internal/curp"
	"curp-scan/internal/formatters"
	"curp-scan/internal/scanner"

	"github.com/fatih/color"
)

// Formatter implements human-readable text output.
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"label":   color.New(color.FgCyan),
			"value":   color.New(color.FgWhite, color.Bold),
			"valid":   color.New(color.FgGreen),
			"invalid": color.New(color.FgRed),
			"muted":   color.New(color.FgYellow),
		},
	}
}

func init() {
	formatters.Register(NewFormatter())
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) FormatRecord(record curp.Record, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var b strings.Builder
	f.writeField(&b, "CURP", record.CURP)
	f.writeField(&b, "Birth date", record.BirthDate)
	f.writeField(&b, "Sex", sexLabel(record.Sex))

	state := record.State.Name
	if record.State.ISO != "" {
		state += " (" + record.State.ISO + ")"
	}
	f.writeField(&b, "State", state)

	if record.Name != nil {
		f.writeField(&b, "Name", *record.Name)
	}
	if record.FirstSurname != nil {
		f.writeField(&b, "First surname", *record.FirstSurname)
	}
	if record.SecondSurname != nil {
		f.writeField(&b, "Second surname", emptyLabel(*record.SecondSurname))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (f *Formatter) FormatMatches(matches []scanner.Match, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}
	if len(matches) == 0 {
		return "No CURP candidates found.", nil
	}

	var b strings.Builder
	valid := 0
	for _, m := range matches {
		location := fmt.Sprintf("%d:%d", m.Line, m.Column)
		if m.File != "" {
			location = m.File + ":" + location
		}

		if m.Valid {
			valid++
			fmt.Fprintf(&b, "%s  %s  %s\n",
				f.colors["valid"].Sprint("VALID  "), m.CURP, f.colors["muted"].Sprint(location))
			if options.Verbose && m.Record != nil {
				fmt.Fprintf(&b, "         born %s, sex %s, %s\n",
					m.Record.BirthDate, sexLabel(m.Record.Sex), m.Record.State.Name)
			}
		} else {
			fmt.Fprintf(&b, "%s  %s  %s\n",
				f.colors["invalid"].Sprint("INVALID"), m.CURP, f.colors["muted"].Sprint(location))
			if options.Verbose && m.Reason != "" {
				fmt.Fprintf(&b, "         %s\n", m.Reason)
			}
		}
	}

	if !options.Quiet {
		fmt.Fprintf(&b, "\n%d candidate(s), %d valid, %d invalid\n",
			len(matches), valid, len(matches)-valid)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (f *Formatter) writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n",
		f.colors["label"].Sprintf("%-15s", label+":"), f.colors["value"].Sprint(value))
}

func sexLabel(sex int) string {
	switch curp.Sex(sex) {
	case curp.SexMale:
		return "male (H)"
	case curp.SexFemale:
		return "female (M)"
	default:
		return "unknown"
	}
}

func emptyLabel(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
