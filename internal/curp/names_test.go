// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

import (
	"errors"
	"testing"
)

func TestMatchNames_Partition(t *testing.T) {
	tests := []struct {
		code     string
		fullName string
		want     Names
	}{
		{
			"SABC560626MDFLRN01",
			"Concepción Salgado Briseño",
			Names{"Concepción", "Salgado", "Briseño"},
		},
		{
			"SABC560626MDFLRN01",
			"Maria Concepción Salgado Briseño",
			Names{"Maria Concepción", "Salgado", "Briseño"},
		},
		{
			"POPC990709MGTSRL02",
			"CLAUDIA LEONOR POSADA PEREZ",
			Names{"CLAUDIA LEONOR", "POSADA", "PEREZ"},
		},
		{
			// particles cling to the word that follows them
			"MAGE981117MMNCRS05",
			"ESTEFANIA DE LOS DOLORES MACIAS GARCIA",
			Names{"ESTEFANIA DE LOS DOLORES", "MACIAS", "GARCIA"},
		},
		{
			"MAPS991116MOCRZN07",
			"SANDRA DEL CARMEN MARTINEZ DE LA PAZ",
			Names{"SANDRA DEL CARMEN", "MARTINEZ", "DE LA PAZ"},
		},
		{
			// absent second surname, code carries the X/X filler
			"TAXA990915MNEMXM06",
			"AMBER NICOLE TAMAYO",
			Names{"AMBER NICOLE", "TAMAYO", ""},
		},
		{
			// foreign registration: the second surname may be absent even
			// though its letters are not fillers
			"TASA990915MNEMSM06",
			"AMBER NICOLE TAMAYO",
			Names{"AMBER NICOLE", "TAMAYO", ""},
		},
		{
			// the same foreign code still partitions a complete name
			"TASA990915MNEMSM06",
			"AMBER NICOLE TAMAYO SOSA",
			Names{"AMBER NICOLE", "TAMAYO", "SOSA"},
		},
		{
			// censored prefix: the X stands for MARTINEZ's real vowel
			"MXME991209MGRRSS07",
			"ESMERALDA MARTINEZ MASTACHE",
			Names{"ESMERALDA", "MARTINEZ", "MASTACHE"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.fullName, func(t *testing.T) {
			got, err := MatchNames(tc.code, tc.fullName)
			if err != nil {
				t.Fatalf("MatchNames(%q, %q) returned error: %v", tc.code, tc.fullName, err)
			}
			if got != tc.want {
				t.Errorf("MatchNames(%q, %q) = %+v, want %+v", tc.code, tc.fullName, got, tc.want)
			}
		})
	}
}

func TestMatchNames_Mismatches(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		fullName string
	}{
		{"unrelated name", "SABC560626MDFLRN01", "Pedro Paramo Preciado"},
		{"missing first surname", "SABC560626MDFLRN01", "Concepción Briseño"},
		{"missing second surname without filler", "SABC560626MDFLRN01", "Concepción Salgado"},
		{"missing first surname on a foreign code", "TASA990915MNEMSM06", "AMBER NICOLE"},
		{"surnames swapped", "SABC560626MDFLRN01", "Concepción Briseño Salgado"},
		{"empty name", "SABC560626MDFLRN01", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MatchNames(tc.code, tc.fullName)
			if !errors.Is(err, ErrFullName) {
				t.Errorf("MatchNames(%q, %q) = %v, want ErrFullName", tc.code, tc.fullName, err)
			}
		})
	}
}

func TestMatchNames_ShortCode(t *testing.T) {
	if _, err := MatchNames("SABC", "Concepción Salgado Briseño"); !errors.Is(err, ErrLength) {
		t.Errorf("expected ErrLength, got %v", err)
	}
}

func TestMatchGivenName(t *testing.T) {
	code := "SABC560626MDFLRN01"

	tests := []struct {
		name string
		want bool
	}{
		{"Concepción", true},
		{"concepción", true},
		{"Maria Concepción", true},
		{"Jose Concepción", true},
		{"Pedro", false},
		{"Pedro Concepción", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchGivenName(code, tc.name); got != tc.want {
				t.Errorf("matchGivenName(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestMatchFirstSurname(t *testing.T) {
	tests := []struct {
		code    string
		surname string
		want    bool
	}{
		{"SABC560626MDFLRN01", "Salgado", true},
		{"SABC560626MDFLRN01", "De Salgado", true},
		{"SABC560626MDFLRN01", "Junior Salgado", false},
		{"SABC560626MDFLRN01", "Briseño", false},
		{"SABC560626MDFLRN01", "", false},
		// censored prefixes accept the real vowel in place of the X
		{"BXCA990101HDFCRN01", "Baca", true},
		{"BXCA990101HDFCRN01", "Boca", false},
	}
	for _, tc := range tests {
		t.Run(tc.surname, func(t *testing.T) {
			if got := matchFirstSurname(tc.code, tc.surname); got != tc.want {
				t.Errorf("matchFirstSurname(%q, %q) = %v, want %v", tc.code, tc.surname, got, tc.want)
			}
		})
	}
}

func TestMatchSecondSurname(t *testing.T) {
	tests := []struct {
		code    string
		surname string
		want    bool
	}{
		{"SABC560626MDFLRN01", "Briseño", true},
		{"SABC560626MDFLRN01", "Salgado", false},
		{"SABC560626MDFLRN01", "", false},
		// X/X filler of an absent second surname
		{"TAXA990915MNEMXM06", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.code+"/"+tc.surname, func(t *testing.T) {
			if got := matchSecondSurname(tc.code, tc.surname); got != tc.want {
				t.Errorf("matchSecondSurname(%q, %q) = %v, want %v", tc.code, tc.surname, got, tc.want)
			}
		})
	}
}
