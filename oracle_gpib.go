// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package instrsim

import "github.com/warthog618/go-instrsim/gpib"

func gpibExpectations(api gpib.API) []Expectation {
	var table []Expectation
	add := func(fn string, args []any, ret any, outputs map[string]any) {
		table = append(table, Expectation{
			Library:  GPIB,
			Function: fn,
			Args:     args,
			Return:   ret,
			Outputs:  outputs,
		})
	}
	status := func(fn string, args []any, sta gpib.Status) {
		add(fn, args, int(sta), nil)
	}

	add("ThreadIbsta", []any{}, int(api.ThreadIbsta()), nil)
	add("ThreadIberr", []any{}, int(api.ThreadIberr()), nil)
	add("ThreadIbcnt", []any{}, api.ThreadIbcnt(), nil)

	ud := api.Dev(0, 5, 0, int(gpib.T1s), 1, 0)
	add("ibdev", []any{0, 5, 0, int(gpib.T1s), 1, 0}, ud, nil)
	add("ibdev", []any{gpib.InvalidBoard, 5, 0, int(gpib.T1s), 1, 0},
		api.Dev(gpib.InvalidBoard, 5, 0, int(gpib.T1s), 1, 0), nil)

	for _, name := range []string{"good", gpib.BadName} {
		add("ibfind", []any{name}, api.Find(name), nil)
	}

	for _, opt := range []int{gpib.IbaTMO, gpib.IbaPAD} {
		value, ok, sta := api.Ask(ud, opt)
		var outputs map[string]any
		if ok {
			outputs = map[string]any{"value": value}
		}
		add("ibask", []any{ud, opt}, int(sta), outputs)
	}

	for _, sync := range []int{0, 1} {
		status("ibcac", []any{ud, sync}, api.Cac(ud, sync))
	}
	status("ibclr", []any{ud}, api.Clr(ud))
	status("ibcmd", []any{ud, "?", 1}, api.Cmd(ud, []byte("?")))
	status("ibconfig", []any{ud, gpib.IbaTMO, 0}, api.Config(ud, gpib.IbaTMO, 0))
	for _, shadow := range []int{0, 1} {
		status("ibgts", []any{ud, shadow}, api.Gts(ud, shadow))
	}

	lines, sta := api.Lines(ud)
	add("iblines", []any{ud}, int(sta), map[string]any{"lines": int(lines)})

	addrs := append(gpib.Listeners[:], gpib.Address{Board: 0, Pad: 6, Sad: 0})
	for _, a := range addrs {
		found, sta := api.Ln(a.Board, a.Pad, a.Sad)
		var outputs map[string]any
		if found {
			outputs = map[string]any{"found_listener": 1}
		}
		add("ibln", []any{a.Board, a.Pad, a.Sad}, int(sta), outputs)
	}

	status("ibloc", []any{ud}, api.Loc(ud))
	status("ibonl", []any{ud, 1}, api.Onl(ud, 1))
	status("ibpct", []any{ud}, api.Pct(ud))

	buf := make([]byte, oracleBufferSize)
	sta = api.Rd(ud, buf)
	add("ibrd", []any{ud, len(buf)}, int(sta), map[string]any{"buffer": filled(buf)})

	spr, sta := api.Rsp(ud)
	add("ibrsp", []any{ud}, int(sta), map[string]any{"spr": string(spr)})
	status("ibsic", []any{ud}, api.Sic(ud))
	spb, sta := api.Spb(ud)
	add("ibspb", []any{ud}, int(sta), map[string]any{"sp_bytes": int(spb)})
	status("ibtrg", []any{ud}, api.Trg(ud))
	status("ibwait", []any{ud, int(gpib.CMPL)}, api.Wait(ud, int(gpib.CMPL)))
	status("ibwrt", []any{ud, "*IDN?", 5}, api.Wrt(ud, []byte("*IDN?")))
	status("ibwrta", []any{ud, "*IDN?", 5}, api.Wrta(ud, []byte("*IDN?")))

	add("ibvers", []any{}, nil, map[string]any{"version": api.Version()})
	return table
}
