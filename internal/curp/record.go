// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

// Record is the flat serializable form of a validated CURP: the raw code,
// the ISO/IEC 5218 sex value, the ISO-8601 birth date and the birth state.
// Name parts are present only when they were established at construction.
type Record struct {
	CURP          string  `json:"curp" yaml:"curp"`
	Sex           int     `json:"sex" yaml:"sex"`
	BirthDate     string  `json:"birth_date" yaml:"birth_date"`
	State         State   `json:"state" yaml:"state"`
	Name          *string `json:"name,omitempty" yaml:"name,omitempty"`
	FirstSurname  *string `json:"first_surname,omitempty" yaml:"first_surname,omitempty"`
	SecondSurname *string `json:"second_surname,omitempty" yaml:"second_surname,omitempty"`
}

// Record returns the serializable form of the CURP.
func (c *CURP) Record() Record {
	return Record{
		CURP:          c.code,
		Sex:           int(c.sex),
		BirthDate:     c.birthDate.Format("2006-01-02"),
		State:         c.state,
		Name:          c.name,
		FirstSurname:  c.firstSurname,
		SecondSurname: c.secondSurname,
	}
}
