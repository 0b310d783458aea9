// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

import "strings"

// charset is the official 37-symbol verification alphabet: digits, then the
// letters A-Z with Ñ between N and O. Ñ is written here as a second N so the
// string stays ASCII and indexable by byte; strings.IndexByte returns the
// first N for both, which is what the official table prescribes.
const charset = "0123456789ABCDEFGHIJKLMNNOPQRSTUVWXYZ"

const (
	vowels     = "AEIOU"
	consonants = "BCDFGHJKLMNPQRSTVWXYZ"
)

// charValue returns the verification value of c, or -1 when c is not part of
// the CURP alphabet.
func charValue(c byte) int {
	return strings.IndexByte(charset, c)
}

func isUpperLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isVowel(c byte) bool {
	return strings.IndexByte(vowels, c) >= 0
}

func isConsonant(c byte) bool {
	return strings.IndexByte(consonants, c) >= 0
}
