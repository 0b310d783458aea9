// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

// State is a Mexican federal entity as encoded in a CURP.
type State struct {
	Name string `json:"name" yaml:"name"`
	ISO  string `json:"iso" yaml:"iso"`
}

// StateByCode looks up the two-letter birth-state code of a CURP.
func StateByCode(code string) (State, bool) {
	s, ok := states[code]
	return s, ok
}

// states maps CURP state codes to the entity name and its ISO 3166-2 code.
// NE identifies persons born abroad and has no ISO code.
var states = map[string]State{
	"AS": {Name: "Aguascalientes", ISO: "MX-AGU"},
	"BC": {Name: "Baja California", ISO: "MX-BCN"},
	"BS": {Name: "Baja California Sur", ISO: "MX-BCS"},
	"CC": {Name: "Campeche", ISO: "MX-CAM"},
	"CL": {Name: "Coahuila de Zaragoza", ISO: "MX-COA"},
	"CM": {Name: "Colima", ISO: "MX-COL"},
	"CS": {Name: "Chiapas", ISO: "MX-CHP"},
	"CH": {Name: "Chihuahua", ISO: "MX-CHH"},
	"DF": {Name: "Ciudad de México", ISO: "MX-CMX"},
	"DG": {Name: "Durango", ISO: "MX-DUR"},
	"GT": {Name: "Guanajuato", ISO: "MX-GUA"},
	"GR": {Name: "Guerrero", ISO: "MX-GRO"},
	"HG": {Name: "Hidalgo", ISO: "MX-HID"},
	"JC": {Name: "Jalisco", ISO: "MX-JAL"},
	"MC": {Name: "México", ISO: "MX-MEX"},
	"MN": {Name: "Michoacán de Ocampo", ISO: "MX-MIC"},
	"MS": {Name: "Morelos", ISO: "MX-MOR"},
	"NT": {Name: "Nayarit", ISO: "MX-NAY"},
	"NL": {Name: "Nuevo León", ISO: "MX-NLE"},
	"OC": {Name: "Oaxaca", ISO: "MX-OAX"},
	"PL": {Name: "Puebla", ISO: "MX-PUE"},
	"QT": {Name: "Querétaro", ISO: "MX-QUE"},
	"QR": {Name: "Quintana Roo", ISO: "MX-ROO"},
	"SP": {Name: "San Luis Potosí", ISO: "MX-SLP"},
	"SL": {Name: "Sinaloa", ISO: "MX-SIN"},
	"SR": {Name: "Sonora", ISO: "MX-SON"},
	"TC": {Name: "Tabasco", ISO: "MX-TAB"},
	"TS": {Name: "Tamaulipas", ISO: "MX-TAM"},
	"TL": {Name: "Tlaxcala", ISO: "MX-TLA"},
	"VZ": {Name: "Veracruz de Ignacio de la Llave", ISO: "MX-VER"},
	"YN": {Name: "Yucatán", ISO: "MX-YUC"},
	"ZS": {Name: "Zacatecas", ISO: "MX-ZAC"},
	"NE": {Name: "Extranjero", ISO: ""},
}
