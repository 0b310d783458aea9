// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

// VerificationDigit computes the 18th character of a CURP from the first 17.
// The argument may be 17 or 18 characters long; only the first 17 are used.
// It returns ErrComposition when any of them falls outside the CURP alphabet.
func VerificationDigit(code string) (byte, error) {
	if len(code) < Length-1 {
		return 0, ErrLength
	}

	sum := 0
	for i := 0; i < Length-1; i++ {
		v := charValue(code[i])
		if v < 0 {
			return 0, ErrComposition
		}
		// Leftmost character weighs 18, down to 2 for position 17.
		sum += v * (Length - i)
	}

	d := sum % 10
	if d != 0 {
		d = 10 - d
	}
	return byte('0' + d), nil
}

// Verify checks the verification digit of a full 18-character code.
// A symbol outside the CURP alphabet, anywhere in the code, is reported as
// ErrComposition rather than a verification failure.
func Verify(code string) error {
	if len(code) != Length {
		return ErrLength
	}
	if charValue(code[posVerification]) < 0 {
		return ErrComposition
	}

	d, err := VerificationDigit(code)
	if err != nil {
		return err
	}
	if code[posVerification] != d {
		return ErrVerification
	}
	return nil
}
