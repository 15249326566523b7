// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

//go:build cgo

package main

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, goConstants(), exportedConstants())
	assert.Equal(t, map[string]int{
		"EARG": 4,
		"END":  0x2000,
		"TIMO": 0x4000,
		"ERR":  0x8000,
	}, exportedConstants())
	assert.Equal(t, 0, ibcntl())
}

func TestThreadStatus(t *testing.T) {
	assert.Equal(t, cInt(0), ThreadIbsta())
	assert.Equal(t, cInt(4), ThreadIberr())
	assert.Equal(t, cInt(10), ThreadIbcnt())

	// independent of prior calls
	ibcmd(3, nil, 0)
	assert.Equal(t, cInt(0), ThreadIbsta())
	assert.Equal(t, cInt(4), ThreadIberr())
	assert.Equal(t, cInt(10), ThreadIbcnt())
}

func TestIbask(t *testing.T) {
	value := cInt(-1)
	assert.Equal(t, cInt(0), ibask(3, 3, &value))
	assert.Equal(t, cInt(11), value)

	value = -1
	assert.Equal(t, cInt(0), ibask(3, 1, &value))
	assert.Equal(t, cInt(-1), value)

	assert.Equal(t, cInt(0), ibask(3, 3, nil))
}

func TestIbdev(t *testing.T) {
	assert.Equal(t, cInt(3), ibdev(0, 5, 0, 11, 1, 0))
	assert.Equal(t, cInt(3), ibdev(1, 5, 0, 11, 1, 0))
	assert.Equal(t, cInt(-1), ibdev(3, 5, 0, 11, 1, 0))
}

func TestIbln(t *testing.T) {
	patterns := []struct {
		name         string
		ud, pad, sad cInt
		found        bool
	}{
		{"board 0", 0, 5, 0, true},
		{"board 15", 15, 11, 0, true},
		{"board 15 sad", 15, 11, 123, true},
		{"ud", 1, 5, 0, false},
		{"pad", 0, 6, 0, false},
		{"sad", 0, 5, 1, false},
		{"board 15 pad", 15, 12, 0, false},
		{"board 15 sad mismatch", 15, 11, 122, false},
	}
	for _, p := range patterns {
		tf := func(t *testing.T) {
			found := cShort(-1)
			sta := ibln(p.ud, p.pad, p.sad, &found)
			if p.found {
				assert.Equal(t, cInt(0), sta)
				assert.Equal(t, cShort(1), found)
			} else {
				assert.Equal(t, cInt(0x8000), sta)
				assert.Equal(t, cShort(-1), found)
			}
		}
		t.Run(p.name, tf)
	}
	assert.Equal(t, cInt(0), ibln(0, 5, 0, nil))
}

func TestIbrd(t *testing.T) {
	for _, n := range []cLong{1, 10, 20} {
		buf := make([]byte, 16)
		assert.Equal(t, cInt(0x2000), ibrd(3, unsafe.Pointer(&buf[0]), n))
		assert.Equal(t, bytes.Repeat([]byte{'A'}, 10), buf[:10])
		assert.Equal(t, make([]byte, 6), buf[10:])
	}
	assert.Equal(t, cInt(0x2000), ibrd(3, nil, 10))
}

func TestOutputs(t *testing.T) {
	var lines cShort
	assert.Equal(t, cInt(0), iblines(3, &lines))
	assert.Equal(t, cShort(24), lines)

	var spb cShort
	assert.Equal(t, cInt(0), ibspb(3, &spb))
	assert.Equal(t, cShort(30), spb)

	var spr cChar
	assert.Equal(t, cInt(0), ibrsp(3, &spr))
	assert.Equal(t, cChar('p'), spr)

	// NULL outputs are ignored
	assert.Equal(t, cInt(0), iblines(3, nil))
	assert.Equal(t, cInt(0), ibspb(3, nil))
	assert.Equal(t, cInt(0), ibrsp(3, nil))
}

func TestFixedResults(t *testing.T) {
	data := []byte("*IDN?")
	buf := unsafe.Pointer(&data[0])
	patterns := []struct {
		name string
		fn   func() cInt
		sta  cInt
	}{
		{"ibcac 0", func() cInt { return ibcac(3, 0) }, 10},
		{"ibcac 1", func() cInt { return ibcac(3, 1) }, 11},
		{"ibclr", func() cInt { return ibclr(3) }, 0x4000},
		{"ibcmd", func() cInt { return ibcmd(3, buf, 5) }, 0x8000},
		{"ibconfig", func() cInt { return ibconfig(3, 3, 0) }, 22},
		{"ibgts 0", func() cInt { return ibgts(3, 0) }, 1},
		{"ibgts 1", func() cInt { return ibgts(3, 1) }, 2},
		{"ibloc", func() cInt { return ibloc(3) }, 25},
		{"ibonl", func() cInt { return ibonl(3, 1) }, 26},
		{"ibpct", func() cInt { return ibpct(3) }, 27},
		{"ibsic", func() cInt { return ibsic(3) }, 29},
		{"ibtrg", func() cInt { return ibtrg(3) }, 31},
		{"ibwait", func() cInt { return ibwait(3, 0x100) }, 32},
		{"ibwrt", func() cInt { return ibwrt(3, buf, 5) }, 33},
		{"ibwrta", func() cInt { return ibwrta(3, buf, 5) }, 34},
	}
	for _, p := range patterns {
		tf := func(t *testing.T) {
			assert.Equal(t, p.sta, p.fn())
		}
		t.Run(p.name, tf)
	}
	assert.Equal(t, "*IDN?", string(data))
}
