// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

//go:build windows

package main

import "C"

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// ibfindW takes a wchar_t name, which is UTF-16 on Windows.
//
// A NULL name is treated as empty.
//
//export ibfindW
func ibfindW(dev *C.ushort) C.int {
	name := windows.UTF16PtrToString((*uint16)(unsafe.Pointer(dev)))
	return C.int(lib.Find(name))
}
