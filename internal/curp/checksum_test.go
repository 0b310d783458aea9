// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

import (
	"errors"
	"testing"
)

// Codes registered with a correct verification digit, used across the tests.
var validCodes = []string{
	"SABC560626MDFLRN01",
	"AARL981224MGTLJS01",
	"PERT220904MMSXZR05",
	"FOTS990610HPLLPB05",
	"FOTS210610HPLLPBA7",
	"POPC990709MGTSRL02",
	"MAGE981117MMNCRS05",
	"MAPS991116MOCRZN07",
	"TAXA990915MNEMXM06",
	"MXME991209MGRRSS07",
	"BXCA990101HDFCRN01",
}

func TestVerificationDigit_KnownCodes(t *testing.T) {
	for _, code := range validCodes {
		t.Run(code, func(t *testing.T) {
			d, err := VerificationDigit(code)
			if err != nil {
				t.Fatalf("VerificationDigit(%q) returned error: %v", code, err)
			}
			if d != code[17] {
				t.Errorf("VerificationDigit(%q) = %c, want %c", code, d, code[17])
			}
		})
	}
}

func TestVerificationDigit_RoundTrip(t *testing.T) {
	// compute followed by verify must accept for every valid prefix
	for _, code := range validCodes {
		d, err := VerificationDigit(code[:17])
		if err != nil {
			t.Fatalf("VerificationDigit(%q) returned error: %v", code[:17], err)
		}
		if err := Verify(code[:17] + string(d)); err != nil {
			t.Errorf("Verify after compute failed for %q: %v", code[:17], err)
		}
	}
}

func TestVerificationDigit_ShortInput(t *testing.T) {
	if _, err := VerificationDigit("SABC"); !errors.Is(err, ErrLength) {
		t.Errorf("expected ErrLength, got %v", err)
	}
}

func TestVerify_WrongDigit(t *testing.T) {
	code := "SABC560626MDFLRN01"
	for d := byte('0'); d <= '9'; d++ {
		candidate := code[:17] + string(d)
		err := Verify(candidate)
		if d == '1' {
			if err != nil {
				t.Errorf("Verify(%q) = %v, want nil", candidate, err)
			}
			continue
		}
		if !errors.Is(err, ErrVerification) {
			t.Errorf("Verify(%q) = %v, want ErrVerification", candidate, err)
		}
	}
}

func TestVerify_InvalidCharactersAreComposition(t *testing.T) {
	cases := []string{
		"sabc560626MDFLRN01", // lowercase
		"SABC5606!6MDFLRN01", // symbol inside
		"SABC560626MDFLRN0!", // symbol at the digit position
	}
	for _, code := range cases {
		t.Run(code, func(t *testing.T) {
			err := Verify(code)
			if !errors.Is(err, ErrComposition) {
				t.Errorf("Verify(%q) = %v, want ErrComposition", code, err)
			}
			if errors.Is(err, ErrVerification) {
				t.Errorf("Verify(%q) must not report a verification failure", code)
			}
		})
	}
}

func TestCharValue_AlphabetLayout(t *testing.T) {
	// N and the Ñ slot share a value; O starts after the gap.
	cases := []struct {
		c    byte
		want int
	}{
		{'0', 0}, {'9', 9}, {'A', 10}, {'N', 23}, {'O', 25}, {'Z', 36},
	}
	for _, tc := range cases {
		if got := charValue(tc.c); got != tc.want {
			t.Errorf("charValue(%c) = %d, want %d", tc.c, got, tc.want)
		}
	}
}
