// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters_test

import (
	"encoding/json"
	"testing"

	"curp-scan/internal/curp"
	"curp-scan/internal/formatters"
	"curp-scan/internal/scanner"

	_ "curp-scan/internal/formatters/json"
	_ "curp-scan/internal/formatters/text"
	_ "curp-scan/internal/formatters/yaml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(t *testing.T) curp.Record {
	t.Helper()
	c, err := curp.New("SABC560626MDFLRN01", curp.WithFullName("Concepción Salgado Briseño"))
	require.NoError(t, err)
	return c.Record()
}

func plain() formatters.Options {
	return formatters.Options{NoColor: true}
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"json", "text", "yaml"}, formatters.List())

	for _, name := range formatters.List() {
		f, ok := formatters.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, f.Name())
		assert.NotEmpty(t, f.Description())
		assert.NotEmpty(t, f.FileExtension())
	}

	_, ok := formatters.Get("xml")
	assert.False(t, ok)
}

func TestExportRecord_JSON(t *testing.T) {
	output, err := formatters.ExportRecord("json", sampleRecord(t), plain())
	require.NoError(t, err)

	var decoded curp.Record
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, "SABC560626MDFLRN01", decoded.CURP)
	assert.Equal(t, "1956-06-26", decoded.BirthDate)
	assert.Equal(t, 2, decoded.Sex)
	assert.Equal(t, "MX-CMX", decoded.State.ISO)
	require.NotNil(t, decoded.Name)
	assert.Equal(t, "CONCEPCIÓN", *decoded.Name)
}

func TestExportRecord_YAML(t *testing.T) {
	output, err := formatters.ExportRecord("yaml", sampleRecord(t), plain())
	require.NoError(t, err)
	assert.Contains(t, output, "curp: SABC560626MDFLRN01")
	assert.Contains(t, output, "1956-06-26")
	assert.Contains(t, output, "first_surname: SALGADO")
}

func TestExportRecord_Text(t *testing.T) {
	output, err := formatters.ExportRecord("text", sampleRecord(t), plain())
	require.NoError(t, err)
	assert.Contains(t, output, "SABC560626MDFLRN01")
	assert.Contains(t, output, "1956-06-26")
	assert.Contains(t, output, "female (M)")
	assert.Contains(t, output, "Ciudad de México (MX-CMX)")
	assert.Contains(t, output, "SALGADO")
}

func TestExportRecord_UnknownFormat(t *testing.T) {
	_, err := formatters.ExportRecord("xml", sampleRecord(t), plain())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json, text, yaml")
}

func TestExportMatches_Text(t *testing.T) {
	matches := scanner.ScanContent("SABC560626MDFLRN01 SABC560626MDFLRN02", "records.txt")
	require.Len(t, matches, 2)

	output, err := formatters.ExportMatches("text", matches, plain())
	require.NoError(t, err)
	assert.Contains(t, output, "VALID")
	assert.Contains(t, output, "INVALID")
	assert.Contains(t, output, "records.txt:1:1")
	assert.Contains(t, output, "2 candidate(s), 1 valid, 1 invalid")
}

func TestExportMatches_TextQuietDropsSummary(t *testing.T) {
	matches := scanner.ScanContent("SABC560626MDFLRN01", "")
	output, err := formatters.ExportMatches("text", matches, formatters.Options{NoColor: true, Quiet: true})
	require.NoError(t, err)
	assert.NotContains(t, output, "candidate(s)")
}

func TestExportMatches_TextEmpty(t *testing.T) {
	output, err := formatters.ExportMatches("text", nil, plain())
	require.NoError(t, err)
	assert.Equal(t, "No CURP candidates found.", output)
}

func TestExportMatches_JSONEmptyIsArray(t *testing.T) {
	output, err := formatters.ExportMatches("json", nil, plain())
	require.NoError(t, err)
	assert.Equal(t, "[]", output)
}
