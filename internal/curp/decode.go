// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

import "time"

// Sex is the sex marker of a CURP, numbered per ISO/IEC 5218.
type Sex int

const (
	SexUnknown Sex = 0
	SexMale    Sex = 1
	SexFemale  Sex = 2
)

// sexMarkers maps the position-11 literals to their value.
var sexMarkers = map[byte]Sex{'H': SexMale, 'M': SexFemale}

// String returns the single-letter code used inside a CURP.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "H"
	case SexFemale:
		return "M"
	default:
		return "U"
	}
}

// validateStructure checks the character classes of the name-derived
// positions and the date digits, and rejects codes whose four-letter prefix
// should have been censored. It assumes the code already passed the length
// and alphabet checks.
func validateStructure(code string) error {
	letterPositions := [...]int{posSurnameAChar, posSurnameBChar, posNameChar}
	for _, p := range letterPositions {
		if !isUpperLetter(code[p]) {
			return ErrComposition
		}
	}
	if v := code[posSurnameAVowel]; !isVowel(v) && v != 'X' {
		return ErrComposition
	}

	consonantPositions := [...]int{posSurnameAConsonant, posSurnameBConsonant, posNameConsonant}
	for _, p := range consonantPositions {
		if !isConsonant(code[p]) {
			return ErrComposition
		}
	}

	for p := posYear0; p <= posDay1; p++ {
		if !isDigit(code[p]) {
			return ErrComposition
		}
	}

	if uncensoredBlocklist[code[:posNameChar+1]] {
		return ErrComposition
	}
	return nil
}

// parseBirthDate resolves the YYMMDD date using the homonymy character to
// disambiguate the century: a digit means the person was born before 2000, a
// letter on or after.
func parseBirthDate(code string, now time.Time) (time.Time, error) {
	year := atoi2(code, posYear0)
	month := atoi2(code, posMonth0)
	day := atoi2(code, posDay0)

	currentYear := now.Year()
	century := currentYear / 100
	// A two-digit year beyond the current one belongs to the previous
	// century.
	if year > currentYear%100 {
		century--
	}
	if isDigit(code[posHomonymy]) {
		century = 19
	} else if century == 19 {
		century = 20
	}
	year += century * 100

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, ErrDate
	}
	return date, nil
}

// atoi2 reads the two-digit number starting at position p. The digits were
// already validated.
func atoi2(code string, p int) int {
	return int(code[p]-'0')*10 + int(code[p+1]-'0')
}

// parseSex reads the position-11 sex marker.
func parseSex(code string) (Sex, error) {
	s, ok := sexMarkers[code[posSex]]
	if !ok {
		return SexUnknown, ErrSex
	}
	return s, nil
}

// parseState reads the two-letter birth-state code.
func parseState(code string) (State, error) {
	s, ok := StateByCode(code[posRegion0 : posRegion1+1])
	if !ok {
		return State{}, ErrRegion
	}
	return s, nil
}
