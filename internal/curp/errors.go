// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

import (
	"errors"
	"fmt"
)

// ErrInvalid is the root error for every validation failure. Callers that
// only care about valid/invalid can test against it with errors.Is; the
// specific errors below all wrap it.
var ErrInvalid = errors.New("curp is not valid")

var (
	// ErrLength indicates the code is not exactly 18 characters long.
	// It takes priority over every other check.
	ErrLength = newValidationError("code must be 18 characters long")

	// ErrVerification indicates the verification digit does not match
	// the one computed from the first 17 characters.
	ErrVerification = newValidationError("verification digit does not match")

	// ErrComposition indicates a character-class violation: a symbol
	// outside the CURP alphabet, a vowel/consonant position holding the
	// wrong class of letter, or an uncensored inconvenient-word prefix.
	ErrComposition = newValidationError("code composition is not valid")

	// ErrDate indicates the date fields do not form a real calendar date.
	ErrDate = newValidationError("birth date is not a valid date")

	// ErrSex indicates position 11 is not one of the two sex markers.
	ErrSex = newValidationError("sex character is not valid")

	// ErrRegion indicates positions 12-13 are not a known state code.
	ErrRegion = newValidationError("birth state code is not valid")

	// ErrName indicates the supplied given name does not match the code.
	ErrName = newValidationError("given name does not match the code")

	// ErrFirstSurname indicates the supplied first surname does not match.
	ErrFirstSurname = newValidationError("first surname does not match the code")

	// ErrSecondSurname indicates the supplied second surname does not match.
	ErrSecondSurname = newValidationError("second surname does not match the code")

	// ErrFullName indicates the supplied full name could not be partitioned
	// into parts that match the code.
	ErrFullName = newValidationError("full name does not match the code")
)

func newValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, msg)
}
