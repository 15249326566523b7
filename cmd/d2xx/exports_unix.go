// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

//go:build !windows

package main

import "C"

// FT_SetVIDPID is only provided by the Linux and macOS D2XX libraries.
//
//export FT_SetVIDPID
func FT_SetVIDPID(vid, pid C.long) C.int {
	return status(lib.SetVIDPID(uint32(vid), uint32(pid)))
}
