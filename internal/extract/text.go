// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract turns documents into plain text for scanning.
package extract

import (
	"os"
	"path/filepath"
	"strings"
)

// FileText returns the text content of a file. PDF documents go through the
// PDF text extractor; any other file is read verbatim as text.
func FileText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return PDFText(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
