// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

import (
	"strings"

	"curp-scan/internal/names"
)

// Names holds the three parts of a full name as partitioned by the matcher,
// in their original casing.
type Names struct {
	GivenName     string `json:"name"`
	FirstSurname  string `json:"first_surname"`
	SecondSurname string `json:"second_surname"`
}

// MatchNames partitions fullName into given name and surnames according to
// the letters encoded in code. It only requires code to have the right
// length, mirroring the standalone reconciliation tool: callers that need the
// code itself validated should construct a CURP instead.
func MatchNames(code, fullName string) (Names, error) {
	if len(code) != Length {
		return Names{}, ErrLength
	}
	parts, ok := partitionFullName(code, fullName)
	if !ok {
		return Names{}, ErrFullName
	}
	return parts, nil
}

// matchGivenName reports whether the given name matches the code's name
// initial and internal consonant. A leading common name (MARIA, JOSE and
// their abbreviations) is skipped in compound names, as the registry does.
func matchGivenName(code, name string) bool {
	words := strings.Fields(name)
	if len(words) > 1 && names.IsCommonName(words[0]) {
		words = words[1:]
	}

	f := names.Extract(strings.Join(words, " "))
	return code[posNameChar] == f.Char && code[posNameConsonant] == f.Consonant
}

// matchFirstSurname reports whether the first surname matches the code's
// initial, internal consonant and internal vowel. When the code's four-letter
// prefix is a censored inconvenient word, the real vowel from the blocklist
// is accepted in place of the X.
func matchFirstSurname(code, surname string) bool {
	f := names.Extract(surname)

	if code[posSurnameAChar] != f.Char || code[posSurnameAConsonant] != f.Consonant {
		return false
	}
	if code[posSurnameAVowel] == f.Vowel {
		return true
	}
	for _, vowel := range blocklist[code[:posNameChar+1]] {
		if vowel == f.Vowel {
			return true
		}
	}
	return false
}

// matchSecondSurname reports whether the second surname matches the code's
// initial and internal consonant. An empty surname matches the X/X filler
// convention used when no second surname exists.
func matchSecondSurname(code, surname string) bool {
	f := names.Extract(surname)
	return code[posSurnameBChar] == f.Char && code[posSurnameBConsonant] == f.Consonant
}

// firstSurnameAbsent reports whether the code can belong to someone without
// surnames at all. A second surname with no first surname is assumed not to
// happen, so this only holds when both filler blocks are present.
func firstSurnameAbsent(code string) bool {
	return secondSurnameAbsent(code) && matchFirstSurname(code, "")
}

// secondSurnameAbsent reports whether the code carries the filler letters of
// an absent second surname.
func secondSurnameAbsent(code string) bool {
	return matchSecondSurname(code, "")
}

// partition states, in the order the matcher walks a full name.
type partitionState int

const (
	stateStart partitionState = iota
	stateGivenName
	stateFirstSurname
	stateSecondSurname
)

// partitionFullName splits a full name into three contiguous groups matching
// the code's name letters. It walks the words left to right, advancing to the
// next name part on the first word whose features match it; particles are
// buffered and attached to the group of the next significant word. Trailing
// absent surnames are accepted when the code carries their filler letters;
// the second surname may also be absent on foreign registrations, whose
// letters are derived from the foreign document and need not be fillers.
func partitionFullName(code, fullName string) (Names, bool) {
	matches := func(st partitionState, word string) bool {
		switch st {
		case stateStart:
			return matchGivenName(code, word)
		case stateGivenName:
			return matchFirstSurname(code, word)
		case stateFirstSurname:
			return matchSecondSurname(code, word)
		default:
			return false
		}
	}

	var groups [stateSecondSurname + 1][]string
	var buffered []string
	st := stateStart

	for _, word := range strings.Fields(fullName) {
		if names.IsParticle(word) {
			buffered = append(buffered, word)
			continue
		}

		if matches(st, word) {
			st++
		} else if st == stateStart && !names.IsCommonName(word) {
			return Names{}, false
		}

		groups[st] = append(groups[st], buffered...)
		buffered = nil
		groups[st] = append(groups[st], word)
	}
	groups[st] = append(groups[st], buffered...)

	foreign := code[posRegion0:posRegion1+1] == "NE"

	var ok bool
	switch st {
	case stateSecondSurname:
		ok = true
	case stateFirstSurname:
		ok = secondSurnameAbsent(code) || foreign
	case stateGivenName:
		ok = firstSurnameAbsent(code)
	}
	if !ok {
		return Names{}, false
	}

	given := append(groups[stateStart], groups[stateGivenName]...)
	return Names{
		GivenName:     strings.Join(given, " "),
		FirstSurname:  strings.Join(groups[stateFirstSurname], " "),
		SecondSurname: strings.Join(groups[stateSecondSurname], " "),
	}, true
}
