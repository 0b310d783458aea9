// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders validation results in the supported output
// formats. Formatter implementations register themselves at init time.
package formatters

import (
	"fmt"
	"sort"
	"strings"

	"curp-scan/internal/curp"
	"curp-scan/internal/scanner"
)

// Options configures formatter output.
type Options struct {
	NoColor bool // disable colored output
	Verbose bool // include per-field detail
	Quiet   bool // suppress decorative output
}

// Formatter renders a single validated record or a list of scan matches.
type Formatter interface {
	// Name returns the formatter name used on the command line.
	Name() string

	// Description returns a brief description of the output format.
	Description() string

	// FileExtension returns the recommended extension, e.g. ".json".
	FileExtension() string

	// FormatRecord renders one validated CURP.
	FormatRecord(record curp.Record, options Options) (string, error)

	// FormatMatches renders the results of a content scan.
	FormatMatches(matches []scanner.Match, options Options) (string, error)
}

// Registry holds all registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter to the default registry.
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get retrieves a formatter from the default registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List returns the names registered in the default registry.
func List() []string {
	return DefaultRegistry.List()
}

// ExportRecord renders a validated CURP in the named format.
func ExportRecord(format string, record curp.Record, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(List(), ", "))
	}
	return formatter.FormatRecord(record, options)
}

// ExportMatches renders scan results in the named format.
func ExportMatches(format string, matches []scanner.Match, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(List(), ", "))
	}
	return formatter.FormatMatches(matches, options)
}
