// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package d2xx

import "strings"

// DeviceInfo contains the details reported for a device by GetDeviceInfoDetail.
//
// The simulator only reports the fields listed here.  The flags, type,
// location ID and handle outputs of FT_GetDeviceInfoDetail are never written.
type DeviceInfo struct {
	// The vendor ID in the upper 16 bits, and product ID in the lower 16 bits.
	ID uint32

	// The serial number.
	//
	// SerialNumberLength bytes, all the same character.
	SerialNumber string

	// The product description.
	//
	// DescriptionLength bytes, all the same character.
	Description string
}

// VID returns the USB vendor ID of the device.
func (d DeviceInfo) VID() uint16 {
	return uint16(d.ID >> 16)
}

// PID returns the USB product ID of the device.
func (d DeviceInfo) PID() uint16 {
	return uint16(d.ID)
}

const (
	// DeviceID is the ID reported for every device, an FT232R (0403:6001).
	DeviceID uint32 = 0x0403<<16 | 0x6001

	// DeviceCount is the number of devices reported by CreateDeviceInfoList.
	DeviceCount = 4

	// SerialNumberLength is the number of serial number bytes written.
	SerialNumberLength = 6

	// DescriptionLength is the number of description bytes written.
	DescriptionLength = 10
)

// descriptor is the fill pattern used for the string fields of a device.
type descriptor struct {
	serial      byte
	description byte
}

// descriptorFor selects the pattern for the device at index.
//
// Indices 1 and 2 have their own patterns, every other index shares a third.
func descriptorFor(index int) descriptor {
	switch index {
	case 1:
		return descriptor{'A', 'B'}
	case 2:
		return descriptor{'C', 'D'}
	default:
		return descriptor{'E', 'F'}
	}
}

func (p descriptor) info() DeviceInfo {
	return DeviceInfo{
		ID:           DeviceID,
		SerialNumber: strings.Repeat(string(p.serial), SerialNumberLength),
		Description:  strings.Repeat(string(p.description), DescriptionLength),
	}
}
