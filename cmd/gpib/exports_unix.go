// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

//go:build !windows

package main

import "C"

import "sync"

var (
	versionOnce sync.Once

	// version is allocated on first use and never freed, as callers keep
	// the pointer.
	version *C.char
)

// ibfind treats a NULL name as empty.
//
//export ibfind
func ibfind(dev *C.char) C.int {
	var name string
	if dev != nil {
		name = C.GoString(dev)
	}
	return C.int(lib.Find(name))
}

//export ibvers
func ibvers(v **C.char) {
	s := lib.Version()
	versionOnce.Do(func() {
		version = C.CString(s)
	})
	if v != nil {
		*v = version
	}
}
