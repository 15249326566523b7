// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

/*
#include "globals.h"

static long get_ibcntl(void) { return ibcntl; }
*/
import "C"

import (
	"unsafe"

	"github.com/warthog618/go-instrsim/gpib"
)

// Aliases for the C types in the export signatures, so the exports may be
// called from Go tests.
type (
	cInt    = C.int
	cLong   = C.long
	cShort  = C.short
	cUshort = C.ushort
	cChar   = C.char
)

// exportedConstants returns the values of the constants exported to C, keyed
// by name.
func exportedConstants() map[string]int {
	return map[string]int{
		"EARG": int(C.EARG),
		"END":  int(C.END),
		"TIMO": int(C.TIMO),
		"ERR":  int(C.ERR),
	}
}

// goConstants returns the Go values corresponding to exportedConstants.
func goConstants() map[string]int {
	return map[string]int{
		"EARG": int(gpib.EARG),
		"END":  int(gpib.END),
		"TIMO": int(gpib.TIMO),
		"ERR":  int(gpib.ERR),
	}
}

func ibcntl() int {
	return int(C.get_ibcntl())
}

// buffer returns the n bytes at p, or nil if p is NULL.
func buffer(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}
