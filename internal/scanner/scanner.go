// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scanner finds CURP candidates in text content and validates them.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"curp-scan/internal/curp"
	"curp-scan/internal/extract"
)

// candidatePattern matches anything shaped like a CURP: four name letters
// (second one a vowel or the X filler), six date digits, a sex marker, a
// state code, three consonants, the homonymy character and the verification
// digit. Shape only; every candidate still goes through full validation.
var candidatePattern = regexp.MustCompile(
	`\b[A-Z][AEIOUX][A-Z]{2}[0-9]{6}[HM][A-Z]{2}[B-DF-HJ-NP-TV-Z]{3}[0-9A-Z][0-9]\b`)

// Match is a single CURP candidate found in scanned content.
type Match struct {
	CURP   string       `json:"curp" yaml:"curp"`
	File   string       `json:"file,omitempty" yaml:"file,omitempty"`
	Line   int          `json:"line" yaml:"line"`
	Column int          `json:"column" yaml:"column"`
	Valid  bool         `json:"valid" yaml:"valid"`
	Reason string       `json:"reason,omitempty" yaml:"reason,omitempty"`
	Record *curp.Record `json:"record,omitempty" yaml:"record,omitempty"`
}

// ScanContent scans text content for CURP candidates and validates each one.
// file is recorded on the matches for reporting and may be empty.
func ScanContent(content, file string) []Match {
	var matches []Match

	for lineNum, line := range strings.Split(content, "\n") {
		for _, loc := range candidatePattern.FindAllStringIndex(line, -1) {
			candidate := line[loc[0]:loc[1]]
			m := Match{
				CURP:   candidate,
				File:   file,
				Line:   lineNum + 1,
				Column: loc[0] + 1,
			}

			c, err := curp.New(candidate)
			if err != nil {
				m.Reason = err.Error()
			} else {
				m.Valid = true
				rec := c.Record()
				m.Record = &rec
			}
			matches = append(matches, m)
		}
	}
	return matches
}

// ScanFile extracts the text of a single file and scans it. PDF documents
// are extracted with the PDF text extractor; everything else is read as
// plain text.
func ScanFile(path string) ([]Match, error) {
	content, err := extract.FileText(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ScanContent(content, path), nil
}

// ScanPath scans a file, a directory, or a glob pattern. Directories are
// walked only when recursive is set; unreadable files are skipped with a
// warning on stderr rather than aborting the scan.
func ScanPath(path string, recursive bool) ([]Match, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return scanDir(path, recursive)
	case err == nil:
		return ScanFile(path)
	}

	// Not a plain path; try it as a glob pattern.
	paths, globErr := filepath.Glob(path)
	if globErr != nil || len(paths) == 0 {
		return nil, fmt.Errorf("no such file or pattern: %s", path)
	}

	var matches []Match
	for _, p := range paths {
		found, err := ScanFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		matches = append(matches, found...)
	}
	return matches, nil
}

func scanDir(dir string, recursive bool) ([]Match, error) {
	var matches []Match

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			return nil
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		found, err := ScanFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			return nil
		}
		matches = append(matches, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
