// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import "C"

import "unsafe"

// Aliases for the C types in the export signatures, so the exports may be
// called from Go tests.
type (
	cInt  = C.int
	cLong = C.long
	cChar = C.char
)

// buffer returns the n bytes at p, or nil if p is NULL.
func buffer(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

func putLong(p *C.long, v uint32) {
	if p != nil {
		*p = C.long(v)
	}
}

func putChar(p *C.char, v byte) {
	if p != nil {
		*p = C.char(v)
	}
}
