// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gpib

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Status is the ibsta value returned by most NI-488.2 functions.
//
// The bits of a real ibsta describe the state of the board and the outcome of
// the call.  The simulator also returns fixed values from some functions that
// identify which function was called, so not every value is meaningful as a
// bit set.
type Status int32

// Status bits.
const (
	DCAS  Status = 0x0001
	DTAS  Status = 0x0002
	LACS  Status = 0x0004
	TACS  Status = 0x0008
	ATN   Status = 0x0010
	CIC   Status = 0x0020
	REM   Status = 0x0040
	LOK   Status = 0x0080
	CMPL  Status = 0x0100
	EVENT Status = 0x0200
	SPOLL Status = 0x0400
	RQS   Status = 0x0800
	SRQI  Status = 0x1000
	END   Status = 0x2000
	TIMO  Status = 0x4000
	ERR   Status = 0x8000
)

var statusBitNames = []struct {
	bit  Status
	name string
}{
	{ERR, "ERR"},
	{TIMO, "TIMO"},
	{END, "END"},
	{SRQI, "SRQI"},
	{RQS, "RQS"},
	{SPOLL, "SPOLL"},
	{EVENT, "EVENT"},
	{CMPL, "CMPL"},
	{LOK, "LOK"},
	{REM, "REM"},
	{CIC, "CIC"},
	{ATN, "ATN"},
	{TACS, "TACS"},
	{LACS, "LACS"},
	{DTAS, "DTAS"},
	{DCAS, "DCAS"},
}

// Has returns true if all the bits in mask are set.
func (s Status) Has(mask Status) bool {
	return s&mask == mask
}

// String lists the names of the bits set, most significant first.
//
// e.g. "ERR|TIMO"
func (s Status) String() string {
	if s == 0 {
		return "0"
	}
	var names []string
	rem := s
	for _, b := range statusBitNames {
		if s&b.bit != 0 {
			names = append(names, b.name)
			rem &^= b.bit
		}
	}
	if rem != 0 {
		names = append(names, fmt.Sprintf("%#x", int32(rem)))
	}
	return strings.Join(names, "|")
}

// Error is an iberr value.
//
// It is only meaningful when the ERR bit is set in the corresponding Status.
type Error int32

// Error codes.
const (
	EDVR Error = 0
	ECIC Error = 1
	ENOL Error = 2
	EADR Error = 3
	EARG Error = 4
	ESAC Error = 5
	EABO Error = 6
	ENEB Error = 7
	EDMA Error = 8
	EOIP Error = 10
	ECAP Error = 11
	EFSO Error = 12
	EBUS Error = 14
	ESTB Error = 15
	ESRQ Error = 16
	ETAB Error = 20
	ELCK Error = 21
	EARM Error = 22
	EHDL Error = 23
	EWIP Error = 26
	ERST Error = 27
	EPWR Error = 28
)

var errorMessages = map[Error]string{
	EDVR: "a system call has failed",
	ECIC: "the interface board needs to be controller-in-charge, but is not",
	ENOL: "data or command bytes were written, but there are no listeners addressed",
	EADR: "the interface board has failed to address itself properly",
	EARG: "one or more arguments to the function call were invalid",
	ESAC: "the interface board needs to be system controller, but is not",
	EABO: "a read or write of data bytes has been aborted",
	ENEB: "the interface board does not exist, its driver is not loaded, or it is in use",
	EDMA: "DMA error",
	EOIP: "an asynchronous IO operation is in progress",
	ECAP: "the board lacks the capability, or the capability is disabled",
	EFSO: "file system error",
	EBUS: "writing command bytes to the bus has timed out",
	ESTB: "one or more serial poll status bytes have been lost",
	ESRQ: "the service request line is stuck on",
	ETAB: "table problem",
	ELCK: "address or board is locked",
	EARM: "the ibnotify callback failed to rearm",
	EHDL: "the input handle is invalid for this operation",
	EWIP: "wait already in progress on input handle",
	ERST: "the event notification was cancelled due to a reset of the interface",
	EPWR: "the system or board has lost power or gone to standby",
}

func (e Error) Error() string {
	if m, ok := errorMessages[e]; ok {
		return m
	}
	return fmt.Sprintf("unknown error %d", int32(e))
}

// ErrTimeout indicates the TIMO bit was set in a Status.
var ErrTimeout = errors.New("timeout")

// Check translates the outcome of a call to fn into a Go error.
//
// TIMO takes precedence and returns an error wrapping ErrTimeout.
// Otherwise, if the ERR bit is set the returned error wraps the iberr.
// Otherwise nil is returned.
func Check(fn string, sta Status, iberr Error) error {
	if sta.Has(TIMO) {
		return errors.Wrapf(ErrTimeout, "%s, ibsta:%#x", fn, int32(sta))
	}
	if sta.Has(ERR) {
		return errors.Wrapf(iberr, "%s, ibsta:%#x, iberr:%#x", fn, int32(sta), int32(iberr))
	}
	return nil
}

// Timeout is the enumerated timeout used by Dev and the IbaTMO option.
type Timeout int

// Timeouts.
const (
	TNONE Timeout = iota
	T10us
	T30us
	T100us
	T300us
	T1ms
	T3ms
	T10ms
	T30ms
	T100ms
	T300ms
	T1s
	T3s
	T10s
	T30s
	T100s
	T300s
	T1000s
)

// Options accepted by Ask and Config.
const (
	IbaPAD            = 0x0001
	IbaSAD            = 0x0002
	IbaTMO            = 0x0003
	IbaEOT            = 0x0004
	IbaPPC            = 0x0005
	IbaREADDR         = 0x0006
	IbaAUTOPOLL       = 0x0007
	IbaCICPROT        = 0x0008
	IbaSC             = 0x000A
	IbaSRE            = 0x000B
	IbaEOSrd          = 0x000C
	IbaEOSwrt         = 0x000D
	IbaEOScmp         = 0x000E
	IbaEOSchar        = 0x000F
	IbaPP2            = 0x0010
	IbaTIMING         = 0x0011
	IbaReadAdjust     = 0x0013
	IbaWriteAdjust    = 0x0014
	IbaSendLLO        = 0x0017
	IbaSPollTime      = 0x0018
	IbaPPollTime      = 0x0019
	IbaEndBitIsNormal = 0x001A
	IbaUnAddr         = 0x001B
	IbaHSCableLength  = 0x001F
	IbaIst            = 0x0020
	IbaRsv            = 0x0021
	IbaBNA            = 0x0200
)
