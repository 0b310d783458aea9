// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import "strings"

const (
	vowels     = "AEIOU"
	consonants = "BCDFGHJKLMNPQRSTVWXYZ"
)

// Filler takes the place of any feature that cannot be derived from a word:
// a missing internal vowel or consonant, an empty name part, or an Ñ.
const Filler = 'X'

// Features holds the characters a word contributes to a CURP: its first
// letter, its first internal vowel, and its first internal consonant.
type Features struct {
	Char      byte
	Vowel     byte
	Consonant byte
}

// Extract derives the CURP features of a name part. The part is folded and
// split into words; particles are dropped unless the particle is the only
// word left, and the first remaining word is the one analyzed. An empty part
// yields filler features, which is itself meaningful: it is how absent
// surnames are encoded.
func Extract(part string) Features {
	words := splitWords(Fold(part))

	var word string
	if len(words) > 0 {
		// Particles never drive the derivation, but a name consisting of
		// nothing but particles still contributes its last word.
		kept := words[:0]
		for _, w := range words[:len(words)-1] {
			if !particles[w] {
				kept = append(kept, w)
			}
		}
		kept = append(kept, words[len(words)-1])
		word = kept[0]
	}

	f := Features{Char: Filler, Vowel: Filler, Consonant: Filler}
	if word != "" {
		f.Char = word[0]
		f.Vowel = findClass(word[1:], vowels)
		f.Consonant = findClass(word[1:], consonants)
	}
	return f
}

// findClass returns the first byte of word belonging to class, or Filler.
func findClass(word, class string) byte {
	for i := 0; i < len(word); i++ {
		if strings.IndexByte(class, word[i]) >= 0 {
			return word[i]
		}
	}
	return Filler
}
