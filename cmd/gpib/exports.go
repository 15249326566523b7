// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import "C"

import (
	"unsafe"

	"github.com/warthog618/go-instrsim/gpib"
)

func ibsta(sta gpib.Status) C.int {
	return C.int(sta)
}

//export ThreadIbsta
func ThreadIbsta() C.int {
	return ibsta(lib.ThreadIbsta())
}

//export ThreadIberr
func ThreadIberr() C.int {
	return C.int(lib.ThreadIberr())
}

//export ThreadIbcnt
func ThreadIbcnt() C.int {
	return C.int(lib.ThreadIbcnt())
}

// ibask only writes the value for the IbaTMO option.
//
//export ibask
func ibask(ud, option C.int, value *C.int) C.int {
	v, ok, sta := lib.Ask(int(ud), int(option))
	if ok && value != nil {
		*value = C.int(v)
	}
	return ibsta(sta)
}

//export ibcac
func ibcac(ud, synchronous C.int) C.int {
	return ibsta(lib.Cac(int(ud), int(synchronous)))
}

//export ibclr
func ibclr(ud C.int) C.int {
	return ibsta(lib.Clr(int(ud)))
}

//export ibcmd
func ibcmd(ud C.int, cmd unsafe.Pointer, cnt C.long) C.int {
	return ibsta(lib.Cmd(int(ud), buffer(cmd, int(cnt))))
}

//export ibconfig
func ibconfig(ud, option, value C.int) C.int {
	return ibsta(lib.Config(int(ud), int(option), int(value)))
}

//export ibdev
func ibdev(boardIndex, pad, sad, timo, sendEOI, eosMode C.int) C.int {
	return C.int(lib.Dev(int(boardIndex), int(pad), int(sad), int(timo), int(sendEOI), int(eosMode)))
}

//export ibgts
func ibgts(ud, shadowHandshake C.int) C.int {
	return ibsta(lib.Gts(int(ud), int(shadowHandshake)))
}

//export iblines
func iblines(ud C.int, lineStatus *C.short) C.int {
	lines, sta := lib.Lines(int(ud))
	if lineStatus != nil {
		*lineStatus = C.short(lines)
	}
	return ibsta(sta)
}

// ibln only writes foundListener when a listener is found.
//
//export ibln
func ibln(ud, pad, sad C.int, foundListener *C.short) C.int {
	found, sta := lib.Ln(int(ud), int(pad), int(sad))
	if found && foundListener != nil {
		*foundListener = 1
	}
	return ibsta(sta)
}

//export ibloc
func ibloc(ud C.int) C.int {
	return ibsta(lib.Loc(int(ud)))
}

//export ibonl
func ibonl(ud, onl C.int) C.int {
	return ibsta(lib.Onl(int(ud), int(onl)))
}

//export ibpct
func ibpct(ud C.int) C.int {
	return ibsta(lib.Pct(int(ud)))
}

// ibrd fills ReadFillLength bytes, whatever the count.
//
//export ibrd
func ibrd(ud C.int, buf unsafe.Pointer, count C.long) C.int {
	return ibsta(lib.Rd(int(ud), buffer(buf, gpib.ReadFillLength)))
}

//export ibrsp
func ibrsp(ud C.int, spr *C.char) C.int {
	b, sta := lib.Rsp(int(ud))
	if spr != nil {
		*spr = C.char(b)
	}
	return ibsta(sta)
}

//export ibsic
func ibsic(ud C.int) C.int {
	return ibsta(lib.Sic(int(ud)))
}

//export ibspb
func ibspb(ud C.int, spBytes *C.short) C.int {
	v, sta := lib.Spb(int(ud))
	if spBytes != nil {
		*spBytes = C.short(v)
	}
	return ibsta(sta)
}

//export ibtrg
func ibtrg(ud C.int) C.int {
	return ibsta(lib.Trg(int(ud)))
}

//export ibwait
func ibwait(ud, mask C.int) C.int {
	return ibsta(lib.Wait(int(ud), int(mask)))
}

//export ibwrt
func ibwrt(ud C.int, buf unsafe.Pointer, count C.long) C.int {
	return ibsta(lib.Wrt(int(ud), buffer(buf, int(count))))
}

//export ibwrta
func ibwrta(ud C.int, buf unsafe.Pointer, count C.long) C.int {
	return ibsta(lib.Wrta(int(ud), buffer(buf, int(count))))
}
