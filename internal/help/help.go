// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// System renders the command-line help.
type System struct {
	colors map[string]*color.Color
}

// NewSystem creates a new help system.
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"item":     color.New(color.FgCyan),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// ShowGeneralHelp displays general help information.
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("CURP Scan - Mexican Population Registry Code Validator")
	fmt.Println()
	fmt.Println("Validates 18-character CURP codes, extracts the data they encode")
	fmt.Println("(birth date, sex, birth state), reconciles them against claimed names,")
	fmt.Println("and scans documents for embedded codes.")
	fmt.Println()

	h.colors["subtitle"].Println("Usage:")
	fmt.Println("  curp-scan -curp <code> [name options] [output options]")
	fmt.Println("  curp-scan -file <path|glob> [-recursive] [output options]")
	fmt.Println()

	h.colors["subtitle"].Println("Validation options:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range [][2]string{
		{"-curp", "the 18-character code to validate"},
		{"-name", "given name to reconcile against the code"},
		{"-first-surname", "first (paternal) surname to reconcile"},
		{"-second-surname", "second (maternal) surname to reconcile"},
		{"-full-name", "full name to partition and reconcile (excludes the three above)"},
	} {
		fmt.Fprintf(w, "  %s\t%s\n", h.colors["item"].Sprint(row[0]), row[1])
	}
	w.Flush()
	fmt.Println()

	h.colors["subtitle"].Println("Scan options:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range [][2]string{
		{"-file", "file, directory, or glob pattern to scan (text or PDF)"},
		{"-recursive", "walk directories recursively"},
	} {
		fmt.Fprintf(w, "  %s\t%s\n", h.colors["item"].Sprint(row[0]), row[1])
	}
	w.Flush()
	fmt.Println()

	h.colors["subtitle"].Println("Output options:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range [][2]string{
		{"-format", "output format: text, json, yaml (default: text)"},
		{"-output", "write output to a file instead of stdout"},
		{"-no-color", "disable colored output"},
		{"-verbose", "display detailed information"},
		{"-quiet", "suppress summaries and progress output"},
		{"-config", "path to a YAML configuration file"},
		{"-version", "show version information"},
	} {
		fmt.Fprintf(w, "  %s\t%s\n", h.colors["item"].Sprint(row[0]), row[1])
	}
	w.Flush()
	fmt.Println()

	h.ShowFieldsHelp()

	h.colors["subtitle"].Println("Examples:")
	for _, example := range []string{
		`curp-scan -curp SABC560626MDFLRN01`,
		`curp-scan -curp SABC560626MDFLRN01 -full-name "Concepción Salgado Briseño"`,
		`curp-scan -curp SABC560626MDFLRN01 -first-surname Salgado -format json`,
		`curp-scan -file records.txt -format json -output findings.json`,
		`curp-scan -file "documents/*.pdf" -verbose`,
	} {
		h.colors["example"].Println("  " + example)
	}
	fmt.Println()

	fmt.Println("Exit codes: 0 valid / no invalid findings, 1 validation failure or")
	fmt.Println("invalid findings, 2 usage error.")
}

// ShowFieldsHelp explains the layout of a CURP.
func (h *System) ShowFieldsHelp() {
	h.colors["subtitle"].Println("CURP layout (SABC-560626-M-DF-LRN-0-1):")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range [][2]string{
		{"1-4", "first surname initial + its internal vowel, second surname initial, given name initial"},
		{"5-10", "birth date as YYMMDD"},
		{"11", "sex marker: H (male) or M (female)"},
		{"12-13", "birth state code (NE for persons born abroad)"},
		{"14-16", "first internal consonants of the surnames and given name"},
		{"17", "homonymy character: digit before 2000, letter from 2000 on"},
		{"18", "verification digit"},
	} {
		fmt.Fprintf(w, "  %s\t%s\n", h.colors["item"].Sprint(row[0]), row[1])
	}
	w.Flush()
	fmt.Println()
}
