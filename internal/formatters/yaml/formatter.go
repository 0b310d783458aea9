// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"curp-scan/internal/curp"
	"curp-scan/internal/formatters"
	"curp-scan/internal/scanner"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting.
type Formatter struct{}

// NewFormatter creates a new YAML formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func init() {
	formatters.Register(NewFormatter())
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for configuration-friendly consumption"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
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
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	return string(data), nil
}
