// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

/*
Gpib exports the NI-488.2 simulator with C linkage.

Build it as a shared library and load it in place of the GPIB library:

	go build -buildmode=c-shared -o gpib.so ./cmd/gpib

The functions have the signatures of the NI-488.2 header and the results of
[gpib.Sim].  The library also exports the ibcntl variable, which is always
0, and the EARG, END, TIMO and ERR constants.

Build with -tags verbose to log every call to stderr.
*/
package main

import "C"

import "github.com/warthog618/go-instrsim/gpib"

// lib services every exported call.
var lib gpib.API = gpib.Sim{}

func main() {}
