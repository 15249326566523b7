// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package instrsim

import "github.com/warthog618/go-instrsim/d2xx"

// oracleBufferSize is larger than either simulator fills, so the table records
// the whole fill.
const oracleBufferSize = 256

// filled returns the prefix of buf written by a read.
func filled(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

func d2xxExpectations(api d2xx.API) []Expectation {
	var table []Expectation
	add := func(fn string, args []any, s d2xx.Status, outputs map[string]any) {
		table = append(table, Expectation{
			Library:  D2XX,
			Function: fn,
			Args:     args,
			Return:   int(s),
			Outputs:  outputs,
		})
	}
	setter := func(fn string, args []any, s d2xx.Status) {
		add(fn, args, s, nil)
	}

	setter("FT_SetVIDPID", []any{0x0403, 0x6001}, api.SetVIDPID(0x0403, 0x6001))

	h, s := api.Open(0)
	add("FT_Open", []any{0}, s, map[string]any{"handle": int(h)})
	hx, s := api.OpenEx(0, 0)
	add("FT_OpenEx", []any{0, 0}, s, map[string]any{"handle": int(hx)})
	setter("FT_Close", []any{int(h)}, api.Close(h))

	for _, n := range []int{10, 200} {
		buf := make([]byte, oracleBufferSize)
		_, s = api.Read(h, buf, n)
		add("FT_Read", []any{int(h), n}, s, map[string]any{"buffer": filled(buf)})
	}
	n, s := api.Write(h, []byte("*IDN?\n"), 6)
	add("FT_Write", []any{int(h), 6}, s, map[string]any{"bytesWritten": n})

	setter("FT_SetBaudRate", []any{int(h), 9600}, api.SetBaudRate(h, 9600))
	setter("FT_SetDivisor", []any{int(h), 26}, api.SetDivisor(h, 26))
	setter("FT_SetDataCharacteristics", []any{int(h), 8, 0, 0}, api.SetDataCharacteristics(h, 8, 0, 0))
	setter("FT_SetTimeouts", []any{int(h), 1000, 1000}, api.SetTimeouts(h, 1000, 1000))
	setter("FT_SetFlowControl", []any{int(h), 0, 0x11, 0x13}, api.SetFlowControl(h, 0, 0x11, 0x13))
	setter("FT_SetDtr", []any{int(h)}, api.SetDtr(h))
	setter("FT_ClrDtr", []any{int(h)}, api.ClrDtr(h))
	setter("FT_SetRts", []any{int(h)}, api.SetRts(h))
	setter("FT_ClrRts", []any{int(h)}, api.ClrRts(h))

	ms, s := api.GetModemStatus(h)
	add("FT_GetModemStatus", []any{int(h)}, s, map[string]any{"status": int(ms)})
	for _, qh := range []d2xx.Handle{h, hx} {
		q, s := api.GetQueueStatus(qh)
		add("FT_GetQueueStatus", []any{int(qh)}, s, map[string]any{"inRxQueue": int(q)})
	}
	rx, tx, ev, s := api.GetStatus(h)
	add("FT_GetStatus", []any{int(h)}, s, map[string]any{
		"inRxQueue":   int(rx),
		"inTxQueue":   int(tx),
		"eventStatus": int(ev),
	})

	setter("FT_SetEventNotification", []any{int(h), 1, 0}, api.SetEventNotification(h, 1, 0))
	setter("FT_SetChars", []any{int(h), 0, 0, 0, 0}, api.SetChars(h, 0, 0, 0, 0))
	setter("FT_SetBreakOn", []any{int(h)}, api.SetBreakOn(h))
	setter("FT_SetBreakOff", []any{int(h)}, api.SetBreakOff(h))
	setter("FT_Purge", []any{int(h), 3}, api.Purge(h, 3))
	setter("FT_ResetDevice", []any{int(h)}, api.ResetDevice(h))
	setter("FT_ResetPort", []any{int(h)}, api.ResetPort(h))
	setter("FT_CyclePort", []any{int(h)}, api.CyclePort(h))
	setter("FT_StopInTask", []any{int(h)}, api.StopInTask(h))
	setter("FT_RestartInTask", []any{int(h)}, api.RestartInTask(h))
	setter("FT_SetWaitMask", []any{int(h), 4}, api.SetWaitMask(h, 4))

	mask, s := api.WaitOnMask(h)
	add("FT_WaitOnMask", []any{int(h)}, s, map[string]any{"mask": int(mask)})

	setter("FT_SetLatencyTimer", []any{int(h), 2}, api.SetLatencyTimer(h, 2))
	lat, s := api.GetLatencyTimer(h)
	add("FT_GetLatencyTimer", []any{int(h)}, s, map[string]any{"latency": int(lat)})

	setter("FT_SetBitMode", []any{int(h), 0xff, 1}, api.SetBitMode(h, 0xff, 1))
	mode, s := api.GetBitMode(h)
	add("FT_GetBitMode", []any{int(h)}, s, map[string]any{"mode": int(mode)})

	setter("FT_SetUSBParameters", []any{int(h), 4096, 4096}, api.SetUSBParameters(h, 4096, 4096))

	count, s := api.CreateDeviceInfoList()
	add("FT_CreateDeviceInfoList", []any{}, s, map[string]any{"numDevs": int(count)})
	for i := 0; i < int(count); i++ {
		info, s := api.GetDeviceInfoDetail(i)
		add("FT_GetDeviceInfoDetail", []any{i}, s, map[string]any{
			"id":           int(info.ID),
			"serialNumber": info.SerialNumber,
			"description":  info.Description,
		})
	}
	return table
}
