// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package names folds free-text person names into the canonical form used to
// derive CURP letters and classifies the resulting words.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// particles are connector words that never contribute letters to a CURP but
// stay part of the surname or name they belong to.
var particles = map[string]bool{
	"DA": true, "DAS": true, "DE": true, "DEL": true, "DER": true,
	"DI": true, "DIE": true, "DD": true,
	"EL": true, "LA": true, "LOS": true, "LAS": true, "LE": true, "LES": true,
	"MAC": true, "MC": true, "VAN": true, "VON": true, "Y": true,
}

// commonNames are given names so frequent that the registry skips them when
// deriving letters from a compound given name.
var commonNames = map[string]bool{
	"MARIA": true, "MA": true, "MA.": true,
	"JOSE": true, "J": true, "J.": true,
}

// separators are treated as whitespace when splitting a name into words.
const separators = "/-.'’"

// Fold uppercases s, encodes Ñ as X per the official derivation rule, and
// strips every other diacritic down to its base letter. The result is plain
// ASCII for any Latin-script input.
func Fold(s string) string {
	s = norm.NFC.String(strings.ToUpper(s))
	s = strings.ReplaceAll(s, "Ñ", "X")

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// IsParticle reports whether word is a connector (preposition, article,
// conjunction) once folded.
func IsParticle(word string) bool {
	return particles[Fold(word)]
}

// IsCommonName reports whether word is one of the given names the registry
// skips in compound names.
func IsCommonName(word string) bool {
	return commonNames[Fold(word)]
}

// Token is a single normalized word of a name.
type Token struct {
	Text     string // folded word
	Particle bool   // true for connector words
}

// Tokenize folds s and splits it into classified tokens. Empty or blank
// input yields no tokens.
func Tokenize(s string) []Token {
	words := splitWords(Fold(s))
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Token{Text: w, Particle: particles[w]})
	}
	return tokens
}

// splitWords splits an already-folded string on whitespace and on the
// separator characters used in hyphenated or abbreviated names.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
	})
}
