// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gpib

import "github.com/pkg/errors"

// Device binds a unit descriptor to an API, for tests that only deal with one
// instrument.
type Device struct {
	api API
	ud  int
}

// OpenDev acquires a unit descriptor using Dev and binds it.
func OpenDev(api API, board, pad, sad int, tmo Timeout, eot, eos int) (*Device, error) {
	ud := api.Dev(board, pad, sad, int(tmo), eot, eos)
	if ud < 0 {
		return nil, errors.Errorf("cannot acquire a handle for board %d, pad %d, sad %d", board, pad, sad)
	}
	return &Device{api, ud}, nil
}

// OpenFind acquires a unit descriptor using Find and binds it.
func OpenFind(api API, name string) (*Device, error) {
	ud := api.Find(name)
	if ud < 0 {
		return nil, errors.Errorf("cannot find a device with name '%s'", name)
	}
	return &Device{api, ud}, nil
}

// Handle returns the bound unit descriptor.
func (d *Device) Handle() int {
	return d.ud
}

func (d *Device) check(fn string, sta Status) error {
	if !sta.Has(ERR) && !sta.Has(TIMO) {
		return nil
	}
	return Check(fn, sta, d.api.ThreadIberr())
}

// Read fills buf and returns the number of bytes the device reports read.
//
// The count is taken from ThreadIbcnt, and is capped at the length of buf.
func (d *Device) Read(buf []byte) (int, error) {
	if err := d.check("ibrd", d.api.Rd(d.ud, buf)); err != nil {
		return 0, err
	}
	n := d.api.ThreadIbcnt()
	if n > len(buf) {
		n = len(buf)
	}
	return n, nil
}

// Write writes buf and returns the number of bytes the device reports written.
func (d *Device) Write(buf []byte) (int, error) {
	if err := d.check("ibwrt", d.api.Wrt(d.ud, buf)); err != nil {
		return 0, err
	}
	return d.api.ThreadIbcnt(), nil
}

// Command sends command bytes.
func (d *Device) Command(cmd []byte) error {
	return d.check("ibcmd", d.api.Cmd(d.ud, cmd))
}

// Clear sends the device clear message.
func (d *Device) Clear() error {
	return d.check("ibclr", d.api.Clr(d.ud))
}

// Trigger sends the group execute trigger message.
func (d *Device) Trigger() (Status, error) {
	sta := d.api.Trg(d.ud)
	return sta, d.check("ibtrg", sta)
}

// SerialPoll returns the serial poll response byte.
func (d *Device) SerialPoll() (byte, error) {
	b, sta := d.api.Rsp(d.ud)
	if err := d.check("ibrsp", sta); err != nil {
		return 0, err
	}
	return b, nil
}

// Timeout returns the timeout configured for the device.
func (d *Device) Timeout() (Timeout, error) {
	v, ok, sta := d.api.Ask(d.ud, IbaTMO)
	if err := d.check("ibask", sta); err != nil {
		return TNONE, err
	}
	if !ok {
		return TNONE, errors.New("timeout not reported")
	}
	return Timeout(v), nil
}

// Listener reports if there is a listener at the address.
//
// The Board of the address is passed to Ln as the board index.
func Listener(api API, a Address) bool {
	found, sta := api.Ln(a.Board, a.Pad, a.Sad)
	return found && !sta.Has(ERR)
}
