// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package d2xx

// Port binds a Handle to an API, for tests that only deal with one device.
type Port struct {
	api API
	h   Handle
}

// OpenPort opens a device using Open and binds the returned handle.
func OpenPort(api API, deviceNumber int) (*Port, error) {
	h, s := api.Open(deviceNumber)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return &Port{api, h}, nil
}

// OpenPortEx opens a device using OpenEx and binds the returned handle.
func OpenPortEx(api API, arg, flags int) (*Port, error) {
	h, s := api.OpenEx(arg, flags)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return &Port{api, h}, nil
}

// Handle returns the handle bound to the port.
func (p *Port) Handle() Handle {
	return p.h
}

// Close closes the bound handle.
func (p *Port) Close() error {
	return p.api.Close(p.h).Err()
}

// Read fills buf as Sim.Read does, requesting len(buf) bytes.
func (p *Port) Read(buf []byte) (int, error) {
	n, s := p.api.Read(p.h, buf, len(buf))
	return n, s.Err()
}

// Write writes buf and returns the number of bytes the device reports written.
func (p *Port) Write(buf []byte) (int, error) {
	n, s := p.api.Write(p.h, buf, len(buf))
	return n, s.Err()
}

// QueueStatus returns the number of bytes waiting in the receive queue.
func (p *Port) QueueStatus() (int, error) {
	n, s := p.api.GetQueueStatus(p.h)
	return int(n), s.Err()
}

// ModemStatus returns the modem status byte and the line status byte.
func (p *Port) ModemStatus() (modem, line byte, err error) {
	v, s := p.api.GetModemStatus(p.h)
	return byte(v), byte(v >> 8), s.Err()
}

// SetBaudRate sets the baud rate of the bound device.
func (p *Port) SetBaudRate(baudRate int) error {
	return p.api.SetBaudRate(p.h, baudRate).Err()
}

// SetDivisor sets the baud rate divisor of the bound device.
func (p *Port) SetDivisor(divisor uint16) error {
	return p.api.SetDivisor(p.h, divisor).Err()
}
