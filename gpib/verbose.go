// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gpib

import (
	"fmt"

	"github.com/warthog618/go-instrsim/internal/trace"
)

// Verbose wraps an API and logs every call made through it.
//
// Calls are logged using the names of the C functions, with status values in
// hex, e.g. "gpib.ibsic(3) -> 0x1d".
type Verbose struct {
	impl API
	t    *trace.Tracer
}

var _ API = (*Verbose)(nil)

// NewVerbose creates a verbose wrapper around impl.
//
// The options configure the logger, see the trace package.  The prefix
// defaults to "gpib".
func NewVerbose(impl API, options ...trace.Option) *Verbose {
	options = append([]trace.Option{trace.WithPrefix("gpib")}, options...)
	return &Verbose{impl: impl, t: trace.New(options...)}
}

// hex formats a status the way NI-488.2 users usually print ibsta.
type hex Status

func (h hex) String() string {
	return fmt.Sprintf("%#x", int32(h))
}

func (v *Verbose) ThreadIbsta() Status {
	sta := v.impl.ThreadIbsta()
	v.t.Call("ThreadIbsta", nil, hex(sta))
	return sta
}

func (v *Verbose) ThreadIberr() Error {
	e := v.impl.ThreadIberr()
	v.t.Call("ThreadIberr", nil, int32(e))
	return e
}

func (v *Verbose) ThreadIbcnt() int {
	n := v.impl.ThreadIbcnt()
	v.t.Call("ThreadIbcnt", nil, n)
	return n
}

func (v *Verbose) Ask(ud, option int) (int, bool, Status) {
	value, ok, sta := v.impl.Ask(ud, option)
	if ok {
		v.t.Call("ibask", []any{ud, option}, hex(sta), "value", value)
	} else {
		v.t.Call("ibask", []any{ud, option}, hex(sta))
	}
	return value, ok, sta
}

func (v *Verbose) Cac(ud, synchronous int) Status {
	sta := v.impl.Cac(ud, synchronous)
	v.t.Call("ibcac", []any{ud, synchronous}, hex(sta))
	return sta
}

func (v *Verbose) Clr(ud int) Status {
	sta := v.impl.Clr(ud)
	v.t.Call("ibclr", []any{ud}, hex(sta))
	return sta
}

func (v *Verbose) Cmd(ud int, cmd []byte) Status {
	sta := v.impl.Cmd(ud, cmd)
	v.t.Call("ibcmd", []any{ud, fmt.Sprintf("%q", cmd), len(cmd)}, hex(sta))
	return sta
}

func (v *Verbose) Config(ud, option, value int) Status {
	sta := v.impl.Config(ud, option, value)
	v.t.Call("ibconfig", []any{ud, option, value}, hex(sta))
	return sta
}

func (v *Verbose) Dev(board, pad, sad, tmo, eot, eos int) int {
	ud := v.impl.Dev(board, pad, sad, tmo, eot, eos)
	v.t.Call("ibdev", []any{board, pad, sad, tmo, eot, eos}, ud)
	return ud
}

func (v *Verbose) Gts(ud, shadow int) Status {
	sta := v.impl.Gts(ud, shadow)
	v.t.Call("ibgts", []any{ud, shadow}, hex(sta))
	return sta
}

func (v *Verbose) Lines(ud int) (int16, Status) {
	lines, sta := v.impl.Lines(ud)
	v.t.Call("iblines", []any{ud}, hex(sta), "lines", lines)
	return lines, sta
}

func (v *Verbose) Ln(ud, pad, sad int) (bool, Status) {
	found, sta := v.impl.Ln(ud, pad, sad)
	v.t.Call("ibln", []any{ud, pad, sad}, hex(sta), "found", found)
	return found, sta
}

func (v *Verbose) Loc(ud int) Status {
	sta := v.impl.Loc(ud)
	v.t.Call("ibloc", []any{ud}, hex(sta))
	return sta
}

func (v *Verbose) Onl(ud, onl int) Status {
	sta := v.impl.Onl(ud, onl)
	v.t.Call("ibonl", []any{ud, onl}, hex(sta))
	return sta
}

func (v *Verbose) Pct(ud int) Status {
	sta := v.impl.Pct(ud)
	v.t.Call("ibpct", []any{ud}, hex(sta))
	return sta
}

func (v *Verbose) Rd(ud int, buf []byte) Status {
	sta := v.impl.Rd(ud, buf)
	v.t.Call("ibrd", []any{ud, len(buf)}, hex(sta))
	return sta
}

func (v *Verbose) Rsp(ud int) (byte, Status) {
	spr, sta := v.impl.Rsp(ud)
	v.t.Call("ibrsp", []any{ud}, hex(sta), "spr", spr)
	return spr, sta
}

func (v *Verbose) Sic(ud int) Status {
	sta := v.impl.Sic(ud)
	v.t.Call("ibsic", []any{ud}, hex(sta))
	return sta
}

func (v *Verbose) Spb(ud int) (int16, Status) {
	spb, sta := v.impl.Spb(ud)
	v.t.Call("ibspb", []any{ud}, hex(sta), "spBytes", spb)
	return spb, sta
}

func (v *Verbose) Trg(ud int) Status {
	sta := v.impl.Trg(ud)
	v.t.Call("ibtrg", []any{ud}, hex(sta))
	return sta
}

func (v *Verbose) Wait(ud, mask int) Status {
	sta := v.impl.Wait(ud, mask)
	v.t.Call("ibwait", []any{ud, mask}, hex(sta))
	return sta
}

func (v *Verbose) Wrt(ud int, buf []byte) Status {
	sta := v.impl.Wrt(ud, buf)
	v.t.Call("ibwrt", []any{ud, fmt.Sprintf("%q", buf), len(buf)}, hex(sta))
	return sta
}

func (v *Verbose) Wrta(ud int, buf []byte) Status {
	sta := v.impl.Wrta(ud, buf)
	v.t.Call("ibwrta", []any{ud, fmt.Sprintf("%q", buf), len(buf)}, hex(sta))
	return sta
}

func (v *Verbose) Find(name string) int {
	ud := v.impl.Find(name)
	v.t.Call("ibfind", []any{fmt.Sprintf("%q", name)}, ud)
	return ud
}

func (v *Verbose) Version() string {
	version := v.impl.Version()
	v.t.Call("ibvers", nil, version)
	return version
}
