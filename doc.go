// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

/*
Package instrsim provides deterministic simulators of two instrument driver
APIs, for testing users of those APIs without hardware attached.

The simulators are:

  - [d2xx.Sim], the FTDI D2XX API for USB to serial converters.
  - [gpib.Sim], the NI-488.2 API for GPIB bus controllers.

Every call returns a fixed result that depends only on the arguments of that
call.  There is no device state, no timing and no error injection, so the
result of any sequence of calls is known in advance.

The cmd/d2xx and cmd/gpib packages export the simulators with C linkage, so
they may be built as shared libraries and loaded in place of the vendor
libraries:

	go build -buildmode=c-shared -o libftd2xx.so ./cmd/d2xx
	go build -buildmode=c-shared -o gpib.so ./cmd/gpib

Adding -tags verbose logs every call to stderr.

This package provides the oracle, the table of the expected result of every
exported function, as [Expectations].  The instrsim command prints the table,
or verifies a previously saved copy, for use by test suites written in other
languages.

# Example Usage

Expect the results of the D2XX simulator:

	table, err := instrsim.Expectations(instrsim.WithLibrary(instrsim.D2XX))
	for _, e := range table {
		fmt.Println(e.Function, e.Args, e.Return, e.Outputs)
	}
*/
package instrsim
