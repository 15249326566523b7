// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import "C"

import (
	"unsafe"

	"github.com/warthog618/go-instrsim/d2xx"
)

func status(s d2xx.Status) C.int {
	return C.int(s)
}

func handle(h C.int) d2xx.Handle {
	return d2xx.Handle(h)
}

//export FT_Open
func FT_Open(deviceNumber C.long, pHandle *C.int) C.int {
	h, s := lib.Open(int(deviceNumber))
	if pHandle != nil {
		*pHandle = C.int(h)
	}
	return status(s)
}

//export FT_OpenEx
func FT_OpenEx(arg1 C.int, flags C.long, pHandle *C.int) C.int {
	h, s := lib.OpenEx(int(arg1), int(flags))
	if pHandle != nil {
		*pHandle = C.int(h)
	}
	return status(s)
}

//export FT_Close
func FT_Close(h C.int) C.int {
	return status(lib.Close(handle(h)))
}

// FT_Read fills ReadFillLength bytes, whatever bytesToRead, and does not
// write bytesReturned.
//
//export FT_Read
func FT_Read(h C.int, buf unsafe.Pointer, bytesToRead C.long, bytesReturned *C.long) C.int {
	_, s := lib.Read(handle(h), buffer(buf, d2xx.ReadFillLength), int(bytesToRead))
	return status(s)
}

//export FT_Write
func FT_Write(h C.int, buf unsafe.Pointer, bytesToWrite C.long, bytesWritten *C.long) C.int {
	n, s := lib.Write(handle(h), buffer(buf, int(bytesToWrite)), int(bytesToWrite))
	putLong(bytesWritten, uint32(n))
	return status(s)
}

//export FT_SetBaudRate
func FT_SetBaudRate(h C.int, baudRate C.long) C.int {
	return status(lib.SetBaudRate(handle(h), int(baudRate)))
}

//export FT_SetDivisor
func FT_SetDivisor(h C.int, divisor C.short) C.int {
	return status(lib.SetDivisor(handle(h), uint16(divisor)))
}

//export FT_SetDataCharacteristics
func FT_SetDataCharacteristics(h C.int, wordLength, stopBits, parity C.char) C.int {
	return status(lib.SetDataCharacteristics(handle(h), byte(wordLength), byte(stopBits), byte(parity)))
}

//export FT_SetTimeouts
func FT_SetTimeouts(h C.int, read, write C.long) C.int {
	return status(lib.SetTimeouts(handle(h), int(read), int(write)))
}

//export FT_SetFlowControl
func FT_SetFlowControl(h C.int, flow C.short, xonChar, xoffChar C.char) C.int {
	return status(lib.SetFlowControl(handle(h), uint16(flow), byte(xonChar), byte(xoffChar)))
}

//export FT_SetDtr
func FT_SetDtr(h C.int) C.int {
	return status(lib.SetDtr(handle(h)))
}

//export FT_ClrDtr
func FT_ClrDtr(h C.int) C.int {
	return status(lib.ClrDtr(handle(h)))
}

//export FT_SetRts
func FT_SetRts(h C.int) C.int {
	return status(lib.SetRts(handle(h)))
}

//export FT_ClrRts
func FT_ClrRts(h C.int) C.int {
	return status(lib.ClrRts(handle(h)))
}

//export FT_GetModemStatus
func FT_GetModemStatus(h C.int, pStatus *C.long) C.int {
	ms, s := lib.GetModemStatus(handle(h))
	putLong(pStatus, ms)
	return status(s)
}

//export FT_GetQueueStatus
func FT_GetQueueStatus(h C.int, inRxQueue *C.long) C.int {
	n, s := lib.GetQueueStatus(handle(h))
	putLong(inRxQueue, n)
	return status(s)
}

//export FT_GetStatus
func FT_GetStatus(h C.int, inRxQueue, inTxQueue, eventStatus *C.long) C.int {
	rx, tx, ev, s := lib.GetStatus(handle(h))
	putLong(inRxQueue, rx)
	putLong(inTxQueue, tx)
	putLong(eventStatus, ev)
	return status(s)
}

//export FT_SetEventNotification
func FT_SetEventNotification(h C.int, mask C.long, eventHandle unsafe.Pointer) C.int {
	return status(lib.SetEventNotification(handle(h), uint32(mask), uintptr(eventHandle)))
}

//export FT_SetChars
func FT_SetChars(h C.int, eventChar, eventCharEnabled, errorChar, errorCharEnabled C.char) C.int {
	return status(lib.SetChars(handle(h),
		byte(eventChar), byte(eventCharEnabled), byte(errorChar), byte(errorCharEnabled)))
}

//export FT_SetBreakOn
func FT_SetBreakOn(h C.int) C.int {
	return status(lib.SetBreakOn(handle(h)))
}

//export FT_SetBreakOff
func FT_SetBreakOff(h C.int) C.int {
	return status(lib.SetBreakOff(handle(h)))
}

//export FT_Purge
func FT_Purge(h C.int, mask C.long) C.int {
	return status(lib.Purge(handle(h), uint32(mask)))
}

//export FT_ResetDevice
func FT_ResetDevice(h C.int) C.int {
	return status(lib.ResetDevice(handle(h)))
}

//export FT_ResetPort
func FT_ResetPort(h C.int) C.int {
	return status(lib.ResetPort(handle(h)))
}

//export FT_CyclePort
func FT_CyclePort(h C.int) C.int {
	return status(lib.CyclePort(handle(h)))
}

//export FT_StopInTask
func FT_StopInTask(h C.int) C.int {
	return status(lib.StopInTask(handle(h)))
}

//export FT_RestartInTask
func FT_RestartInTask(h C.int) C.int {
	return status(lib.RestartInTask(handle(h)))
}

//export FT_SetWaitMask
func FT_SetWaitMask(h C.int, mask C.long) C.int {
	return status(lib.SetWaitMask(handle(h), uint32(mask)))
}

//export FT_WaitOnMask
func FT_WaitOnMask(h C.int, mask *C.long) C.int {
	m, s := lib.WaitOnMask(handle(h))
	putLong(mask, m)
	return status(s)
}

//export FT_SetLatencyTimer
func FT_SetLatencyTimer(h C.int, latency C.char) C.int {
	return status(lib.SetLatencyTimer(handle(h), byte(latency)))
}

//export FT_GetLatencyTimer
func FT_GetLatencyTimer(h C.int, latency *C.char) C.int {
	l, s := lib.GetLatencyTimer(handle(h))
	putChar(latency, l)
	return status(s)
}

//export FT_SetBitMode
func FT_SetBitMode(h C.int, mask, enable C.char) C.int {
	return status(lib.SetBitMode(handle(h), byte(mask), byte(enable)))
}

//export FT_GetBitMode
func FT_GetBitMode(h C.int, mode *C.char) C.int {
	m, s := lib.GetBitMode(handle(h))
	putChar(mode, m)
	return status(s)
}

//export FT_SetUSBParameters
func FT_SetUSBParameters(h C.int, inSize, outSize C.long) C.int {
	return status(lib.SetUSBParameters(handle(h), uint32(inSize), uint32(outSize)))
}

//export FT_CreateDeviceInfoList
func FT_CreateDeviceInfoList(numDevs *C.long) C.int {
	n, s := lib.CreateDeviceInfoList()
	putLong(numDevs, n)
	return status(s)
}

// FT_GetDeviceInfoDetail writes only the id, serial number and description.
//
// The strings are copied without a terminating NUL.
//
//export FT_GetDeviceInfoDetail
func FT_GetDeviceInfoDetail(index C.long, flags, typ, id, locID *C.long,
	serialNumber, description unsafe.Pointer, pHandle *C.int) C.int {
	info, s := lib.GetDeviceInfoDetail(int(index))
	putLong(id, info.ID)
	copy(buffer(serialNumber, d2xx.SerialNumberLength), info.SerialNumber)
	copy(buffer(description, d2xx.DescriptionLength), info.Description)
	return status(s)
}
