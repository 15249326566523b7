// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package instrsim

import (
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/warthog618/go-instrsim/d2xx"
	"github.com/warthog618/go-instrsim/gpib"
	"gopkg.in/yaml.v3"
)

// Library identifies one of the simulated libraries.
type Library string

const (
	// D2XX is the FTDI D2XX simulator.
	D2XX Library = "d2xx"

	// GPIB is the NI-488.2 simulator.
	GPIB Library = "gpib"
)

// Libraries lists the simulated libraries.
var Libraries = []Library{D2XX, GPIB}

// ParseLibrary returns the Library with the given name.
func ParseLibrary(name string) (Library, error) {
	for _, l := range Libraries {
		if string(l) == name {
			return l, nil
		}
	}
	return "", errors.Errorf("unknown library: '%s'", name)
}

// Expectation is the expected result of one call to a function exported by
// a simulated library.
type Expectation struct {
	// The library exporting the function.
	Library Library `yaml:"library" json:"library"`

	// The name of the C function.
	Function string `yaml:"function" json:"function"`

	// The input arguments, in order.  Output parameters are omitted.
	Args []any `yaml:"args,flow" json:"args"`

	// The value returned by the function, nil for void functions.
	Return any `yaml:"return" json:"return"`

	// The values written to output parameters, keyed by parameter name.
	//
	// Output parameters that are not written are absent.
	Outputs map[string]any `yaml:"outputs,omitempty" json:"outputs,omitempty"`
}

// builder collects the options provided to Expectations.
type builder struct {
	libs []Library
}

// Expectations builds the oracle table by calling each simulator.
//
// The available option is [WithLibrary].  If no library is selected then the
// table covers all Libraries.
func Expectations(options ...Option) ([]Expectation, error) {
	b := builder{}
	for _, o := range options {
		o.applyOption(&b)
	}
	if len(b.libs) == 0 {
		b.libs = Libraries
	}
	var table []Expectation
	for _, l := range b.libs {
		switch l {
		case D2XX:
			table = append(table, d2xxExpectations(d2xx.Sim{})...)
		case GPIB:
			table = append(table, gpibExpectations(gpib.Sim{})...)
		default:
			return nil, errors.Errorf("unknown library: '%s'", l)
		}
	}
	return table, nil
}

// Option defines the interface required to provide an option to Expectations.
type Option interface {
	applyOption(*builder)
}

// LibraryOption selects a library to include in the table.
type LibraryOption Library

// WithLibrary returns an option that includes the library in the table.
//
// May be repeated to select several libraries, which appear in the table in
// the order selected.
func WithLibrary(l Library) LibraryOption {
	return LibraryOption(l)
}

func (o LibraryOption) applyOption(b *builder) {
	b.libs = append(b.libs, Library(o))
}

// Marshal encodes the table as a YAML document.
func Marshal(table []Expectation) ([]byte, error) {
	return yaml.Marshal(table)
}

// Unmarshal decodes a table from a YAML document.
func Unmarshal(data []byte) ([]Expectation, error) {
	var table []Expectation
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrap(err, "decode table")
	}
	return table, nil
}

// Verify compares a saved table with the current behaviour of the simulators.
//
// The options select the libraries the saved table is expected to cover, as
// for Expectations.  The returned diff is empty if the tables match.
func Verify(data []byte, options ...Option) (string, error) {
	saved, err := Unmarshal(data)
	if err != nil {
		return "", err
	}
	table, err := Expectations(options...)
	if err != nil {
		return "", err
	}
	// round trip so both sides have the types the decoder produces
	enc, err := Marshal(table)
	if err != nil {
		return "", errors.Wrap(err, "encode table")
	}
	current, err := Unmarshal(enc)
	if err != nil {
		return "", err
	}
	return cmp.Diff(current, saved), nil
}
