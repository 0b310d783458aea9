// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

// Length is the exact number of characters in a CURP.
const Length = 18

// Positions of the data encoded in a CURP.
const (
	// First surname: initial, first internal vowel, first internal consonant
	posSurnameAChar      = 0
	posSurnameAVowel     = 1
	posSurnameAConsonant = 13

	// Second surname: initial, first internal consonant
	posSurnameBChar      = 2
	posSurnameBConsonant = 14

	// Given name: initial, first internal consonant
	posNameChar      = 3
	posNameConsonant = 15

	// Birth date, YYMMDD
	posYear0  = 4
	posYear1  = 5
	posMonth0 = 6
	posMonth1 = 7
	posDay0   = 8
	posDay1   = 9

	// Sex and birth state
	posSex     = 10
	posRegion0 = 11
	posRegion1 = 12

	// Homonymy disambiguation character and verification digit
	posHomonymy     = 16
	posVerification = 17
)
