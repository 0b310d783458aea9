// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"curp-scan/internal/curp"
	"curp-scan/internal/formatters"
	"curp-scan/internal/scanner"
)

// Formatter implements JSON output formatting.
type Formatter struct{}

// NewFormatter creates a new JSON formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func init() {
	formatters.Register(NewFormatter())
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) FormatRecord(record curp.Record, options formatters.Options) (string, error) {
	return marshal(record)
}

func (f *Formatter) FormatMatches(matches []scanner.Match, options formatters.Options) (string, error) {
	if matches == nil {
		matches = []scanner.Match{}
	}
	return marshal(matches)
}

func marshal(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(data), nil
}
