// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

/*
Package d2xx simulates the FTDI D2XX driver API for testing users of that API.

The [Sim] returns fixed results for every call, depending only on the
arguments of that call, so tests can assert exactly what a D2XX user does with
each result.  No device is opened, and no state is kept between calls.

Handles identify which open variant was used: [Sim.Open] returns handle 1 and
[Sim.OpenEx] returns handle 2.  [Sim.GetQueueStatus] reports an empty receive
queue for handle 1 and 90 bytes pending for any other handle.

The only failure reported is [NotSupported], from [Sim.SetDivisor].

The cmd/d2xx package exports the Sim as a C shared library that may be loaded
in place of libftd2xx.
*/
package d2xx

// Handle identifies an open device.
type Handle int32

const (
	// OpenHandle is the handle returned by Open.
	OpenHandle Handle = 1

	// OpenExHandle is the handle returned by OpenEx.
	OpenExHandle Handle = 2
)

const (
	// ReadFillLength is the number of bytes Read places in the buffer,
	// irrespective of the number of bytes requested.
	ReadFillLength = 92

	// ReadFillByte is the value of each byte placed in the buffer by Read.
	ReadFillByte = 'A'

	// WriteCount is the number of bytes Write reports as written.
	WriteCount = 10

	// RxQueueEmpty is the receive queue depth reported for OpenHandle.
	RxQueueEmpty = 0

	// RxQueuePending is the receive queue depth reported for other handles.
	RxQueuePending = 90
)

// Modem status bits, reported in the low byte of GetModemStatus.
const (
	ModemCTS = 0x10
	ModemDSR = 0x20
	ModemRI  = 0x40
	ModemDCD = 0x80
)

// Line status bits, reported in the second byte of GetModemStatus.
const (
	LineOE   = 0x02
	LinePE   = 0x04
	LineFE   = 0x08
	LineBI   = 0x10
	LineTHRE = 0x20
	LineTEMT = 0x40
)

const (
	// ModemStatus is the modem status reported by GetModemStatus,
	// a modem byte of 0x11 and a line byte of 0x60.
	ModemStatus uint32 = 0x11 | (LineTHRE|LineTEMT)<<8

	// StatusRxQueue is the receive queue depth reported by GetStatus.
	StatusRxQueue = 1

	// StatusTxQueue is the transmit queue depth reported by GetStatus.
	StatusTxQueue = 2

	// StatusEvent is the event status reported by GetStatus.
	StatusEvent = 3

	// WaitMask is the mask reported by WaitOnMask.
	WaitMask = 4

	// LatencyTimer is the latency, in milliseconds, reported by GetLatencyTimer.
	LatencyTimer = 7

	// BitMode is the pin state reported by GetBitMode.
	BitMode = 20
)

// API is the set of D2XX functions provided by the simulator.
type API interface {
	SetVIDPID(vid, pid uint32) Status
	Open(deviceNumber int) (Handle, Status)
	OpenEx(arg, flags int) (Handle, Status)
	Close(h Handle) Status
	Read(h Handle, buf []byte, bytesToRead int) (int, Status)
	Write(h Handle, buf []byte, bytesToWrite int) (int, Status)
	SetBaudRate(h Handle, baudRate int) Status
	SetDivisor(h Handle, divisor uint16) Status
	SetDataCharacteristics(h Handle, wordLength, stopBits, parity byte) Status
	SetTimeouts(h Handle, read, write int) Status
	SetFlowControl(h Handle, flow uint16, xon, xoff byte) Status
	SetDtr(h Handle) Status
	ClrDtr(h Handle) Status
	SetRts(h Handle) Status
	ClrRts(h Handle) Status
	GetModemStatus(h Handle) (uint32, Status)
	GetQueueStatus(h Handle) (uint32, Status)
	GetStatus(h Handle) (rx, tx, event uint32, s Status)
	SetEventNotification(h Handle, mask uint32, event uintptr) Status
	SetChars(h Handle, eventChar, eventCharEnabled, errorChar, errorCharEnabled byte) Status
	SetBreakOn(h Handle) Status
	SetBreakOff(h Handle) Status
	Purge(h Handle, mask uint32) Status
	ResetDevice(h Handle) Status
	ResetPort(h Handle) Status
	CyclePort(h Handle) Status
	StopInTask(h Handle) Status
	RestartInTask(h Handle) Status
	SetWaitMask(h Handle, mask uint32) Status
	WaitOnMask(h Handle) (uint32, Status)
	SetLatencyTimer(h Handle, latency byte) Status
	GetLatencyTimer(h Handle) (byte, Status)
	SetBitMode(h Handle, mask, enable byte) Status
	GetBitMode(h Handle) (byte, Status)
	SetUSBParameters(h Handle, inSize, outSize uint32) Status
	CreateDeviceInfoList() (uint32, Status)
	GetDeviceInfoDetail(index int) (DeviceInfo, Status)
}

// Sim provides the simulated D2XX API.
//
// The zero value is ready to use, and a Sim may be shared by any number of
// goroutines.
type Sim struct{}

var _ API = Sim{}

// SetVIDPID accepts any VID and PID.
func (Sim) SetVIDPID(vid, pid uint32) Status {
	return OK
}

// Open returns OpenHandle, whatever the deviceNumber.
func (Sim) Open(deviceNumber int) (Handle, Status) {
	return OpenHandle, OK
}

// OpenEx returns OpenExHandle, whatever the arguments.
func (Sim) OpenEx(arg, flags int) (Handle, Status) {
	return OpenExHandle, OK
}

// Close reports success.
//
// The handle remains usable.
func (Sim) Close(h Handle) Status {
	return OK
}

// Read fills the start of buf with ReadFillLength ReadFillByte bytes.
//
// The bytesToRead is ignored, so more or fewer bytes than were requested may
// be filled.  Only the Go buffer limits the fill, and the number of bytes
// filled is returned.
func (Sim) Read(h Handle, buf []byte, bytesToRead int) (int, Status) {
	n := ReadFillLength
	if len(buf) < n {
		n = len(buf)
	}
	for i := range buf[:n] {
		buf[i] = ReadFillByte
	}
	return n, OK
}

// Write reports WriteCount bytes written, whatever the size of buf.
func (Sim) Write(h Handle, buf []byte, bytesToWrite int) (int, Status) {
	return WriteCount, OK
}

// SetBaudRate accepts any baud rate.
func (Sim) SetBaudRate(h Handle, baudRate int) Status {
	return OK
}

// SetDivisor always reports NotSupported.
func (Sim) SetDivisor(h Handle, divisor uint16) Status {
	return NotSupported
}

func (Sim) SetDataCharacteristics(h Handle, wordLength, stopBits, parity byte) Status {
	return OK
}

func (Sim) SetTimeouts(h Handle, read, write int) Status {
	return OK
}

func (Sim) SetFlowControl(h Handle, flow uint16, xon, xoff byte) Status {
	return OK
}

func (Sim) SetDtr(h Handle) Status {
	return OK
}

func (Sim) ClrDtr(h Handle) Status {
	return OK
}

func (Sim) SetRts(h Handle) Status {
	return OK
}

func (Sim) ClrRts(h Handle) Status {
	return OK
}

// GetModemStatus returns ModemStatus.
func (Sim) GetModemStatus(h Handle) (uint32, Status) {
	return ModemStatus, OK
}

// GetQueueStatus returns the number of bytes in the receive queue.
//
// This is RxQueueEmpty for OpenHandle and RxQueuePending for any other handle.
func (Sim) GetQueueStatus(h Handle) (uint32, Status) {
	if h == OpenHandle {
		return RxQueueEmpty, OK
	}
	return RxQueuePending, OK
}

// GetStatus returns StatusRxQueue, StatusTxQueue and StatusEvent.
func (Sim) GetStatus(h Handle) (rx, tx, event uint32, s Status) {
	return StatusRxQueue, StatusTxQueue, StatusEvent, OK
}

func (Sim) SetEventNotification(h Handle, mask uint32, event uintptr) Status {
	return OK
}

func (Sim) SetChars(h Handle, eventChar, eventCharEnabled, errorChar, errorCharEnabled byte) Status {
	return OK
}

func (Sim) SetBreakOn(h Handle) Status {
	return OK
}

func (Sim) SetBreakOff(h Handle) Status {
	return OK
}

func (Sim) Purge(h Handle, mask uint32) Status {
	return OK
}

func (Sim) ResetDevice(h Handle) Status {
	return OK
}

func (Sim) ResetPort(h Handle) Status {
	return OK
}

func (Sim) CyclePort(h Handle) Status {
	return OK
}

func (Sim) StopInTask(h Handle) Status {
	return OK
}

func (Sim) RestartInTask(h Handle) Status {
	return OK
}

func (Sim) SetWaitMask(h Handle, mask uint32) Status {
	return OK
}

// WaitOnMask returns WaitMask immediately.
func (Sim) WaitOnMask(h Handle) (uint32, Status) {
	return WaitMask, OK
}

func (Sim) SetLatencyTimer(h Handle, latency byte) Status {
	return OK
}

// GetLatencyTimer returns LatencyTimer.
func (Sim) GetLatencyTimer(h Handle) (byte, Status) {
	return LatencyTimer, OK
}

func (Sim) SetBitMode(h Handle, mask, enable byte) Status {
	return OK
}

// GetBitMode returns BitMode.
func (Sim) GetBitMode(h Handle) (byte, Status) {
	return BitMode, OK
}

func (Sim) SetUSBParameters(h Handle, inSize, outSize uint32) Status {
	return OK
}

// CreateDeviceInfoList returns DeviceCount.
func (Sim) CreateDeviceInfoList() (uint32, Status) {
	return DeviceCount, OK
}

// GetDeviceInfoDetail returns the details of the device at index.
//
// All devices share the DeviceID.  The serial number and description are
// filled with 'A' and 'B' for index 1, 'C' and 'D' for index 2, and 'E' and
// 'F' for any other index.  The index is not checked against DeviceCount.
func (Sim) GetDeviceInfoDetail(index int) (DeviceInfo, Status) {
	return descriptorFor(index).info(), OK
}
