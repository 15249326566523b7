// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package d2xx

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status is the FT_STATUS returned by every D2XX function.
type Status int32

const (
	// OK indicates the call succeeded.
	OK Status = iota
	InvalidHandle
	DeviceNotFound
	DeviceNotOpened
	IOError
	InsufficientResources
	InvalidParameter
	InvalidBaudRate
	DeviceNotOpenedForErase
	DeviceNotOpenedForWrite
	FailedToWriteDevice
	EEPROMReadFailed
	EEPROMWriteFailed
	EEPROMEraseFailed
	EEPROMNotPresent
	EEPROMNotProgrammed
	InvalidArgs

	// NotSupported is the only failure the simulator reports, from SetDivisor.
	NotSupported

	OtherError
	DeviceListNotReady
)

var statusNames = [...]string{
	"FT_OK",
	"FT_INVALID_HANDLE",
	"FT_DEVICE_NOT_FOUND",
	"FT_DEVICE_NOT_OPENED",
	"FT_IO_ERROR",
	"FT_INSUFFICIENT_RESOURCES",
	"FT_INVALID_PARAMETER",
	"FT_INVALID_BAUD_RATE",
	"FT_DEVICE_NOT_OPENED_FOR_ERASE",
	"FT_DEVICE_NOT_OPENED_FOR_WRITE",
	"FT_FAILED_TO_WRITE_DEVICE",
	"FT_EEPROM_READ_FAILED",
	"FT_EEPROM_WRITE_FAILED",
	"FT_EEPROM_ERASE_FAILED",
	"FT_EEPROM_NOT_PRESENT",
	"FT_EEPROM_NOT_PROGRAMMED",
	"FT_INVALID_ARGS",
	"FT_NOT_SUPPORTED",
	"FT_OTHER_ERROR",
	"FT_DEVICE_LIST_NOT_READY",
}

// String returns the name the D2XX headers use for the status.
//
// e.g. "FT_NOT_SUPPORTED"
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("FT_STATUS(%d)", int32(s))
}

var (
	ErrInvalidHandle           = errors.New("invalid handle")
	ErrDeviceNotFound          = errors.New("device not found")
	ErrDeviceNotOpened         = errors.New("device not opened")
	ErrIO                      = errors.New("io error")
	ErrInsufficientResources   = errors.New("insufficient resources")
	ErrInvalidParameter        = errors.New("invalid parameter")
	ErrInvalidBaudRate         = errors.New("invalid baud rate")
	ErrDeviceNotOpenedForErase = errors.New("device not opened for erase")
	ErrDeviceNotOpenedForWrite = errors.New("device not opened for write")
	ErrFailedToWriteDevice     = errors.New("failed to write device")
	ErrEEPROMReadFailed        = errors.New("eeprom read failed")
	ErrEEPROMWriteFailed       = errors.New("eeprom write failed")
	ErrEEPROMEraseFailed       = errors.New("eeprom erase failed")
	ErrEEPROMNotPresent        = errors.New("eeprom not present")
	ErrEEPROMNotProgrammed     = errors.New("eeprom not programmed")
	ErrInvalidArgs             = errors.New("invalid args")
	ErrNotSupported            = errors.New("not supported")
	ErrOther                   = errors.New("other error")
	ErrDeviceListNotReady      = errors.New("device list not ready")
)

var statusErrors = map[Status]error{
	InvalidHandle:           ErrInvalidHandle,
	DeviceNotFound:          ErrDeviceNotFound,
	DeviceNotOpened:         ErrDeviceNotOpened,
	IOError:                 ErrIO,
	InsufficientResources:   ErrInsufficientResources,
	InvalidParameter:        ErrInvalidParameter,
	InvalidBaudRate:         ErrInvalidBaudRate,
	DeviceNotOpenedForErase: ErrDeviceNotOpenedForErase,
	DeviceNotOpenedForWrite: ErrDeviceNotOpenedForWrite,
	FailedToWriteDevice:     ErrFailedToWriteDevice,
	EEPROMReadFailed:        ErrEEPROMReadFailed,
	EEPROMWriteFailed:       ErrEEPROMWriteFailed,
	EEPROMEraseFailed:       ErrEEPROMEraseFailed,
	EEPROMNotPresent:        ErrEEPROMNotPresent,
	EEPROMNotProgrammed:     ErrEEPROMNotProgrammed,
	InvalidArgs:             ErrInvalidArgs,
	NotSupported:            ErrNotSupported,
	OtherError:              ErrOther,
	DeviceListNotReady:      ErrDeviceListNotReady,
}

// Err translates the status into a Go error.
//
// OK translates to nil.  Known failures wrap the corresponding Err sentinel,
// so errors.Is(s.Err(), ErrNotSupported) holds for NotSupported.
func (s Status) Err() error {
	if s == OK {
		return nil
	}
	if err, ok := statusErrors[s]; ok {
		return errors.Wrap(err, s.String())
	}
	return errors.Errorf("unknown status: %d", int32(s))
}
