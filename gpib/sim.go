// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

/*
Package gpib simulates the NI-488.2 GPIB API for testing users of that API.

The [Sim] returns a fixed result from every call, depending only on the
arguments of that call.  Many functions return a value unique to that function,
so a test can assert which function a GPIB user called.

The modelled failures are:

  - [Sim.Dev] on board 3, which returns -1.
  - [Sim.Find] for the name "bad", which returns -1.
  - [Sim.Cmd], which always returns ERR.
  - [Sim.Ln] for any address other than the three listeners.

The thread status queries report a clear status, an EARG error and a count of
10, as if a 10 byte transfer had just completed, whatever was called before.

The cmd/gpib package exports the Sim as a C shared library that may be loaded
in place of the vendor GPIB library.
*/
package gpib

const (
	// DevHandle is the unit descriptor returned by Dev.
	DevHandle = 3

	// InvalidBoard is the board index for which Dev fails.
	InvalidBoard = 3

	// FindHandle is the unit descriptor returned by Find.
	FindHandle = 2

	// BadName is the device name for which Find fails.
	BadName = "bad"

	// Version is the version reported by Version.
	Version = "1.2"

	// ReadFillLength is the number of bytes Rd places in the buffer.
	ReadFillLength = 10

	// ReadFillByte is the value of each byte placed in the buffer by Rd.
	ReadFillByte = 'A'

	// Count is the byte count reported by ThreadIbcnt.
	Count = 10

	// AskTimeout is the timeout reported by Ask for IbaTMO.
	AskTimeout = T1s

	// PollResponse is the serial poll byte reported by Rsp.
	PollResponse = 'p'
)

// Values returned by functions that report a fixed, call identifying, Status.
const (
	ConfigStatus     Status = 22
	LinesValue              = 24
	LocStatus        Status = 25
	OnlStatus        Status = 26
	PctStatus        Status = 27
	SicStatus        Status = 29
	SpbValue                = 30
	TrgStatus        Status = 31
	WaitStatus       Status = 32
	WrtStatus        Status = 33
	WrtaStatus       Status = 34
	cacStatusOffset         = 10
	gtsStatusOffset         = 1
	failedDescriptor        = -1
)

// Address identifies a listener on a board.
type Address struct {
	// The board index or unit descriptor.
	Board int

	// The primary address.
	Pad int

	// The secondary address.
	Sad int
}

// Listeners are the addresses for which Ln reports a listener.
var Listeners = [...]Address{
	{0, 5, 0},
	{15, 11, 0},
	{15, 11, 123},
}

// API is the set of NI-488.2 functions provided by the simulator.
type API interface {
	ThreadIbsta() Status
	ThreadIberr() Error
	ThreadIbcnt() int
	Ask(ud, option int) (value int, ok bool, sta Status)
	Cac(ud, synchronous int) Status
	Clr(ud int) Status
	Cmd(ud int, cmd []byte) Status
	Config(ud, option, value int) Status
	Dev(board, pad, sad, tmo, eot, eos int) int
	Gts(ud, shadow int) Status
	Lines(ud int) (int16, Status)
	Ln(ud, pad, sad int) (bool, Status)
	Loc(ud int) Status
	Onl(ud, onl int) Status
	Pct(ud int) Status
	Rd(ud int, buf []byte) Status
	Rsp(ud int) (byte, Status)
	Sic(ud int) Status
	Spb(ud int) (int16, Status)
	Trg(ud int) Status
	Wait(ud, mask int) Status
	Wrt(ud int, buf []byte) Status
	Wrta(ud int, buf []byte) Status
	Find(name string) int
	Version() string
}

// Sim provides the simulated NI-488.2 API.
//
// The zero value is ready to use, and a Sim may be shared by any number of
// goroutines.
type Sim struct{}

var _ API = Sim{}

// ThreadIbsta returns a clear status.
func (Sim) ThreadIbsta() Status {
	return 0
}

// ThreadIberr returns EARG.
func (Sim) ThreadIberr() Error {
	return EARG
}

// ThreadIbcnt returns Count.
func (Sim) ThreadIbcnt() int {
	return Count
}

// Ask returns AskTimeout for the IbaTMO option.
//
// For any other option the value is not provided and ok is false.
func (Sim) Ask(ud, option int) (value int, ok bool, sta Status) {
	if option == IbaTMO {
		return int(AskTimeout), true, 0
	}
	return 0, false, 0
}

// Cac returns synchronous+10.
func (Sim) Cac(ud, synchronous int) Status {
	return Status(synchronous + cacStatusOffset)
}

// Clr returns TIMO, as if the clear timed out.
func (Sim) Clr(ud int) Status {
	return TIMO
}

// Cmd returns ERR.
func (Sim) Cmd(ud int, cmd []byte) Status {
	return ERR
}

func (Sim) Config(ud, option, value int) Status {
	return ConfigStatus
}

// Dev returns DevHandle, or -1 if board is InvalidBoard.
func (Sim) Dev(board, pad, sad, tmo, eot, eos int) int {
	if board == InvalidBoard {
		return failedDescriptor
	}
	return DevHandle
}

// Gts returns shadow+1.
func (Sim) Gts(ud, shadow int) Status {
	return Status(shadow + gtsStatusOffset)
}

// Lines returns LinesValue.
func (Sim) Lines(ud int) (int16, Status) {
	return LinesValue, 0
}

// Ln reports if there is a listener at the address.
//
// Only the addresses in Listeners are found.  Any other address returns ERR
// and found is false.
func (Sim) Ln(ud, pad, sad int) (bool, Status) {
	a := Address{ud, pad, sad}
	for _, l := range Listeners {
		if a == l {
			return true, 0
		}
	}
	return false, ERR
}

func (Sim) Loc(ud int) Status {
	return LocStatus
}

func (Sim) Onl(ud, onl int) Status {
	return OnlStatus
}

func (Sim) Pct(ud int) Status {
	return PctStatus
}

// Rd fills the start of buf with ReadFillLength ReadFillByte bytes and
// returns END.
//
// The fill is limited only by the length of buf.
func (Sim) Rd(ud int, buf []byte) Status {
	n := ReadFillLength
	if len(buf) < n {
		n = len(buf)
	}
	for i := range buf[:n] {
		buf[i] = ReadFillByte
	}
	return END
}

// Rsp returns PollResponse.
func (Sim) Rsp(ud int) (byte, Status) {
	return PollResponse, 0
}

func (Sim) Sic(ud int) Status {
	return SicStatus
}

// Spb returns SpbValue.
func (Sim) Spb(ud int) (int16, Status) {
	return SpbValue, 0
}

func (Sim) Trg(ud int) Status {
	return TrgStatus
}

// Wait returns immediately, whatever the mask.
func (Sim) Wait(ud, mask int) Status {
	return WaitStatus
}

func (Sim) Wrt(ud int, buf []byte) Status {
	return WrtStatus
}

func (Sim) Wrta(ud int, buf []byte) Status {
	return WrtaStatus
}

// Find returns FindHandle, or -1 if name is exactly BadName.
func (Sim) Find(name string) int {
	if name == BadName {
		return failedDescriptor
	}
	return FindHandle
}

// Version returns Version.
func (Sim) Version() string {
	return Version
}
