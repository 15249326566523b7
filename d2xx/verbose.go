// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package d2xx

import "github.com/warthog618/go-instrsim/internal/trace"

// Verbose wraps an API and logs every call made through it.
//
// Calls are logged using the names of the D2XX C functions, e.g.
// "d2xx.FT_GetQueueStatus(2) -> FT_OK inRxQueue=90".
type Verbose struct {
	impl API
	t    *trace.Tracer
}

var _ API = (*Verbose)(nil)

// NewVerbose creates a verbose wrapper around impl.
//
// The options configure the logger, see the trace package.  The prefix
// defaults to "d2xx".
func NewVerbose(impl API, options ...trace.Option) *Verbose {
	options = append([]trace.Option{trace.WithPrefix("d2xx")}, options...)
	return &Verbose{impl: impl, t: trace.New(options...)}
}

func (v *Verbose) SetVIDPID(vid, pid uint32) Status {
	s := v.impl.SetVIDPID(vid, pid)
	v.t.Call("FT_SetVIDPID", []any{vid, pid}, s)
	return s
}

func (v *Verbose) Open(deviceNumber int) (Handle, Status) {
	h, s := v.impl.Open(deviceNumber)
	v.t.Call("FT_Open", []any{deviceNumber}, s, "handle", h)
	return h, s
}

func (v *Verbose) OpenEx(arg, flags int) (Handle, Status) {
	h, s := v.impl.OpenEx(arg, flags)
	v.t.Call("FT_OpenEx", []any{arg, flags}, s, "handle", h)
	return h, s
}

func (v *Verbose) Close(h Handle) Status {
	s := v.impl.Close(h)
	v.t.Call("FT_Close", []any{h}, s)
	return s
}

func (v *Verbose) Read(h Handle, buf []byte, bytesToRead int) (int, Status) {
	n, s := v.impl.Read(h, buf, bytesToRead)
	v.t.Call("FT_Read", []any{h, bytesToRead}, s, "filled", n)
	return n, s
}

func (v *Verbose) Write(h Handle, buf []byte, bytesToWrite int) (int, Status) {
	n, s := v.impl.Write(h, buf, bytesToWrite)
	v.t.Call("FT_Write", []any{h, bytesToWrite}, s, "bytesWritten", n)
	return n, s
}

func (v *Verbose) SetBaudRate(h Handle, baudRate int) Status {
	s := v.impl.SetBaudRate(h, baudRate)
	v.t.Call("FT_SetBaudRate", []any{h, baudRate}, s)
	return s
}

func (v *Verbose) SetDivisor(h Handle, divisor uint16) Status {
	s := v.impl.SetDivisor(h, divisor)
	v.t.Call("FT_SetDivisor", []any{h, divisor}, s)
	return s
}

func (v *Verbose) SetDataCharacteristics(h Handle, wordLength, stopBits, parity byte) Status {
	s := v.impl.SetDataCharacteristics(h, wordLength, stopBits, parity)
	v.t.Call("FT_SetDataCharacteristics", []any{h, wordLength, stopBits, parity}, s)
	return s
}

func (v *Verbose) SetTimeouts(h Handle, read, write int) Status {
	s := v.impl.SetTimeouts(h, read, write)
	v.t.Call("FT_SetTimeouts", []any{h, read, write}, s)
	return s
}

func (v *Verbose) SetFlowControl(h Handle, flow uint16, xon, xoff byte) Status {
	s := v.impl.SetFlowControl(h, flow, xon, xoff)
	v.t.Call("FT_SetFlowControl", []any{h, flow, xon, xoff}, s)
	return s
}

func (v *Verbose) SetDtr(h Handle) Status {
	s := v.impl.SetDtr(h)
	v.t.Call("FT_SetDtr", []any{h}, s)
	return s
}

func (v *Verbose) ClrDtr(h Handle) Status {
	s := v.impl.ClrDtr(h)
	v.t.Call("FT_ClrDtr", []any{h}, s)
	return s
}

func (v *Verbose) SetRts(h Handle) Status {
	s := v.impl.SetRts(h)
	v.t.Call("FT_SetRts", []any{h}, s)
	return s
}

func (v *Verbose) ClrRts(h Handle) Status {
	s := v.impl.ClrRts(h)
	v.t.Call("FT_ClrRts", []any{h}, s)
	return s
}

func (v *Verbose) GetModemStatus(h Handle) (uint32, Status) {
	status, s := v.impl.GetModemStatus(h)
	v.t.Call("FT_GetModemStatus", []any{h}, s, "status", status)
	return status, s
}

func (v *Verbose) GetQueueStatus(h Handle) (uint32, Status) {
	n, s := v.impl.GetQueueStatus(h)
	v.t.Call("FT_GetQueueStatus", []any{h}, s, "inRxQueue", n)
	return n, s
}

func (v *Verbose) GetStatus(h Handle) (rx, tx, event uint32, s Status) {
	rx, tx, event, s = v.impl.GetStatus(h)
	v.t.Call("FT_GetStatus", []any{h}, s, "inRxQueue", rx, "inTxQueue", tx, "eventStatus", event)
	return rx, tx, event, s
}

func (v *Verbose) SetEventNotification(h Handle, mask uint32, event uintptr) Status {
	s := v.impl.SetEventNotification(h, mask, event)
	v.t.Call("FT_SetEventNotification", []any{h, mask, event}, s)
	return s
}

func (v *Verbose) SetChars(h Handle, eventChar, eventCharEnabled, errorChar, errorCharEnabled byte) Status {
	s := v.impl.SetChars(h, eventChar, eventCharEnabled, errorChar, errorCharEnabled)
	v.t.Call("FT_SetChars", []any{h, eventChar, eventCharEnabled, errorChar, errorCharEnabled}, s)
	return s
}

func (v *Verbose) SetBreakOn(h Handle) Status {
	s := v.impl.SetBreakOn(h)
	v.t.Call("FT_SetBreakOn", []any{h}, s)
	return s
}

func (v *Verbose) SetBreakOff(h Handle) Status {
	s := v.impl.SetBreakOff(h)
	v.t.Call("FT_SetBreakOff", []any{h}, s)
	return s
}

func (v *Verbose) Purge(h Handle, mask uint32) Status {
	s := v.impl.Purge(h, mask)
	v.t.Call("FT_Purge", []any{h, mask}, s)
	return s
}

func (v *Verbose) ResetDevice(h Handle) Status {
	s := v.impl.ResetDevice(h)
	v.t.Call("FT_ResetDevice", []any{h}, s)
	return s
}

func (v *Verbose) ResetPort(h Handle) Status {
	s := v.impl.ResetPort(h)
	v.t.Call("FT_ResetPort", []any{h}, s)
	return s
}

func (v *Verbose) CyclePort(h Handle) Status {
	s := v.impl.CyclePort(h)
	v.t.Call("FT_CyclePort", []any{h}, s)
	return s
}

func (v *Verbose) StopInTask(h Handle) Status {
	s := v.impl.StopInTask(h)
	v.t.Call("FT_StopInTask", []any{h}, s)
	return s
}

func (v *Verbose) RestartInTask(h Handle) Status {
	s := v.impl.RestartInTask(h)
	v.t.Call("FT_RestartInTask", []any{h}, s)
	return s
}

func (v *Verbose) SetWaitMask(h Handle, mask uint32) Status {
	s := v.impl.SetWaitMask(h, mask)
	v.t.Call("FT_SetWaitMask", []any{h, mask}, s)
	return s
}

func (v *Verbose) WaitOnMask(h Handle) (uint32, Status) {
	mask, s := v.impl.WaitOnMask(h)
	v.t.Call("FT_WaitOnMask", []any{h}, s, "mask", mask)
	return mask, s
}

func (v *Verbose) SetLatencyTimer(h Handle, latency byte) Status {
	s := v.impl.SetLatencyTimer(h, latency)
	v.t.Call("FT_SetLatencyTimer", []any{h, latency}, s)
	return s
}

func (v *Verbose) GetLatencyTimer(h Handle) (byte, Status) {
	latency, s := v.impl.GetLatencyTimer(h)
	v.t.Call("FT_GetLatencyTimer", []any{h}, s, "latency", latency)
	return latency, s
}

func (v *Verbose) SetBitMode(h Handle, mask, enable byte) Status {
	s := v.impl.SetBitMode(h, mask, enable)
	v.t.Call("FT_SetBitMode", []any{h, mask, enable}, s)
	return s
}

func (v *Verbose) GetBitMode(h Handle) (byte, Status) {
	mode, s := v.impl.GetBitMode(h)
	v.t.Call("FT_GetBitMode", []any{h}, s, "mode", mode)
	return mode, s
}

func (v *Verbose) SetUSBParameters(h Handle, inSize, outSize uint32) Status {
	s := v.impl.SetUSBParameters(h, inSize, outSize)
	v.t.Call("FT_SetUSBParameters", []any{h, inSize, outSize}, s)
	return s
}

func (v *Verbose) CreateDeviceInfoList() (uint32, Status) {
	n, s := v.impl.CreateDeviceInfoList()
	v.t.Call("FT_CreateDeviceInfoList", nil, s, "numDevs", n)
	return n, s
}

func (v *Verbose) GetDeviceInfoDetail(index int) (DeviceInfo, Status) {
	info, s := v.impl.GetDeviceInfoDetail(index)
	v.t.Call("FT_GetDeviceInfoDetail", []any{index}, s,
		"id", info.ID, "serialNumber", info.SerialNumber, "description", info.Description)
	return info, s
}
