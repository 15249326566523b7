// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

/*
D2xx exports the D2XX simulator with C linkage.

Build it as a shared library and load it in place of the FTDI library:

	go build -buildmode=c-shared -o libftd2xx.so ./cmd/d2xx

The functions have the signatures of the FTDI D2XX header and the results
of [d2xx.Sim].  Output pointers that are NULL are not written.

Build with -tags verbose to log every call to stderr.
*/
package main

import "C"

import "github.com/warthog618/go-instrsim/d2xx"

// lib services every exported call.
var lib d2xx.API = d2xx.Sim{}

func main() {}
