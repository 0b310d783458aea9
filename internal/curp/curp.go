// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package curp decodes and validates the CURP, the 18-character Mexican
// population registry code, and reconciles it against claimed names.
package curp

import (
	"errors"
	"strings"
	"time"
)

// CURP is a fully validated population registry code. It is immutable after
// construction: every accessor is a pure read, so a value may be shared
// across goroutines freely.
type CURP struct {
	code      string
	birthDate time.Time
	sex       Sex
	state     State

	name          *string
	firstSurname  *string
	secondSurname *string
}

type options struct {
	name          *string
	firstSurname  *string
	secondSurname *string
	fullName      *string
	now           time.Time
}

// Option configures the construction of a CURP.
type Option func(*options)

// WithName validates the given name against the code during construction.
func WithName(name string) Option {
	return func(o *options) { o.name = &name }
}

// WithFirstSurname validates the first (paternal) surname against the code.
func WithFirstSurname(surname string) Option {
	return func(o *options) { o.firstSurname = &surname }
}

// WithSecondSurname validates the second (maternal) surname against the code.
func WithSecondSurname(surname string) Option {
	return func(o *options) { o.secondSurname = &surname }
}

// WithFullName validates a single full-name string, partitioning it into
// given name and surnames according to the code. It cannot be combined with
// the separated name options.
func WithFullName(fullName string) Option {
	return func(o *options) { o.fullName = &fullName }
}

// withReferenceDate fixes the date used to resolve two-digit years. Tests
// use it to stay independent of the wall clock.
func withReferenceDate(now time.Time) Option {
	return func(o *options) { o.now = now }
}

// ErrNameConflict is returned by New when a full name is supplied together
// with separated name parts. It is a usage error, not a validation result.
var ErrNameConflict = errors.New("curp: full name cannot be combined with separated name parts")

// New validates an 18-character code and builds the decoded CURP. When name
// options are supplied they are matched against the code; any mismatch or
// structural defect aborts construction with the most specific error, and no
// partially validated value is ever returned.
func New(code string, opts ...Option) (*CURP, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.now.IsZero() {
		o.now = time.Now()
	}

	hasParts := o.name != nil || o.firstSurname != nil || o.secondSurname != nil
	if o.fullName != nil && hasParts {
		return nil, ErrNameConflict
	}

	if len(code) != Length {
		return nil, ErrLength
	}
	if err := Verify(code); err != nil {
		return nil, err
	}
	if err := validateStructure(code); err != nil {
		return nil, err
	}

	birthDate, err := parseBirthDate(code, o.now)
	if err != nil {
		return nil, err
	}
	sex, err := parseSex(code)
	if err != nil {
		return nil, err
	}
	state, err := parseState(code)
	if err != nil {
		return nil, err
	}

	c := &CURP{
		code:      code,
		birthDate: birthDate,
		sex:       sex,
		state:     state,
	}

	if o.name != nil {
		if !matchGivenName(code, *o.name) {
			return nil, ErrName
		}
		c.name = upper(*o.name)
	}
	if o.firstSurname != nil {
		if !matchFirstSurname(code, *o.firstSurname) {
			return nil, ErrFirstSurname
		}
		c.firstSurname = upper(*o.firstSurname)
	}
	if o.secondSurname != nil {
		if !matchSecondSurname(code, *o.secondSurname) {
			return nil, ErrSecondSurname
		}
		c.secondSurname = upper(*o.secondSurname)
	}
	if o.fullName != nil {
		parts, ok := partitionFullName(code, *o.fullName)
		if !ok {
			return nil, ErrFullName
		}
		c.name = upper(parts.GivenName)
		c.firstSurname = upper(parts.FirstSurname)
		c.secondSurname = upper(parts.SecondSurname)
	}

	return c, nil
}

func upper(s string) *string {
	u := strings.ToUpper(s)
	return &u
}

// Code returns the raw 18-character code.
func (c *CURP) Code() string { return c.code }

// String returns the raw code.
func (c *CURP) String() string { return c.code }

// BirthDate returns the decoded birth date.
func (c *CURP) BirthDate() time.Time { return c.birthDate }

// Sex returns the decoded sex.
func (c *CURP) Sex() Sex { return c.sex }

// State returns the birth state's display name and ISO 3166-2 code.
func (c *CURP) State() State { return c.state }

// Foreign reports whether the code belongs to a person born abroad.
func (c *CURP) Foreign() bool { return c.state.ISO == "" }

// Name returns the validated given name, uppercased, and whether one was
// established during construction.
func (c *CURP) Name() (string, bool) {
	return deref(c.name)
}

// FirstSurname returns the validated first surname, uppercased, and whether
// one was established during construction.
func (c *CURP) FirstSurname() (string, bool) {
	return deref(c.firstSurname)
}

// SecondSurname returns the validated second surname, uppercased, and
// whether one was established during construction.
func (c *CURP) SecondSurname() (string, bool) {
	return deref(c.secondSurname)
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// MatchName reports whether a given name reconciles with the code.
func (c *CURP) MatchName(name string) bool {
	return matchGivenName(c.code, name)
}

// MatchFirstSurname reports whether a first surname reconciles with the code.
func (c *CURP) MatchFirstSurname(surname string) bool {
	return matchFirstSurname(c.code, surname)
}

// MatchSecondSurname reports whether a second surname reconciles with the
// code. The empty string matches codes carrying the absent-surname filler.
func (c *CURP) MatchSecondSurname(surname string) bool {
	return matchSecondSurname(c.code, surname)
}

// MatchFullName partitions a full name against the code, returning the three
// parts in their original casing.
func (c *CURP) MatchFullName(fullName string) (Names, bool) {
	return partitionFullName(c.code, fullName)
}

// FirstSurnameEmpty reports whether the code can belong to a person without
// surnames.
func (c *CURP) FirstSurnameEmpty() bool { return firstSurnameAbsent(c.code) }

// SecondSurnameEmpty reports whether the code carries the filler letters of
// an absent second surname.
func (c *CURP) SecondSurnameEmpty() bool { return secondSurnameAbsent(c.code) }
