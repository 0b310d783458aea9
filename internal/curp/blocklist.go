// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package curp

// blocklist maps the censored four-letter prefixes of the official
// inconvenient-word table to the internal vowels they replace. A CURP whose
// first surname forms one of these words is issued with an X as its second
// character, so the matcher must accept the real vowel wherever the prefix
// appears censored.
var blocklist = map[string][]byte{
	"BXCA": {'A'},
	"CXCA": {'A'},
	"CXCO": {'A'},
	"CXGA": {'A'},
	"CXGE": {'O'},
	"CXGI": {'O'},
	"CXGO": {'A'},
	"CXJA": {'O'},
	"CXJE": {'O'},
	"CXJI": {'O'},
	"CXJO": {'O'},
	"CXKA": {'A'},
	"CXLA": {'O', 'U'},
	"CXLO": {'U'},
	"FXJE": {'A'},
	"FXLO": {'A'},
	"GXEI": {'U'},
	"GXEY": {'U'},
	"GXTA": {'E'},
	"KXGA": {'A'},
	"KXGE": {'O'},
	"LXCA": {'O'},
	"LXCO": {'O'},
	"LXLO": {'E', 'I'},
	"MXAR": {'E', 'I'},
	"MXAS": {'E'},
	"MXCO": {'O'},
	"MXKO": {'O'},
	"MXLA": {'U'},
	"MXLO": {'U'},
	"MXME": {'A'},
	"MXMO": {'A'},
	"MXON": {'E', 'I'},
	"NXCA": {'A'},
	"NXCO": {'A'},
	"PXDA": {'E'},
	"PXNE": {'E'},
	"PXTA": {'U'},
	"PXTO": {'I', 'U'},
	"QXLO": {'U'},
	"RXBA": {'O'},
	"RXBE": {'O'},
	"RXBO": {'O'},
	"RXTA": {'A'},
	"SXNO": {'E'},
	"SXXO": {'E'},
	"TXTA": {'E'},
	"VXCA": {'A'},
	"VXGA": {'A'},
	"VXGO": {'A'},
	"VXKA": {'A'},
}

// uncensoredBlocklist holds the raw inconvenient words. A code that starts
// with one of these escaped the mandatory censoring and is rejected as
// malformed.
var uncensoredBlocklist = func() map[string]bool {
	words := make(map[string]bool, len(blocklist))
	for censored, realVowels := range blocklist {
		for _, v := range realVowels {
			words[string(censored[0])+string(v)+censored[2:]] = true
		}
	}
	return words
}()
