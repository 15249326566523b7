// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package d2xx_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/go-instrsim/d2xx"
)

func TestOpen(t *testing.T) {
	s := d2xx.Sim{}

	h, st := s.Open(0)
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, d2xx.Handle(1), h)

	hx, st := s.OpenEx(0, 0)
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, d2xx.Handle(2), hx)
	assert.NotEqual(t, h, hx)

	// independent of arguments
	h, _ = s.Open(7)
	assert.Equal(t, d2xx.OpenHandle, h)
	hx, _ = s.OpenEx(123, 4)
	assert.Equal(t, d2xx.OpenExHandle, hx)

	// close does not invalidate
	assert.Equal(t, d2xx.OK, s.Close(h))
	n, st := s.GetQueueStatus(h)
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, uint32(0), n)
	assert.Equal(t, d2xx.OK, s.Close(h))
}

func checkFill(t *testing.T, buf []byte, n int) {
	t.Helper()
	assert.Equal(t, bytes.Repeat([]byte{'A'}, n), buf[:n])
	for _, b := range buf[n:] {
		assert.Equal(t, byte(0), b)
	}
}

func TestRead(t *testing.T) {
	s := d2xx.Sim{}
	patterns := []struct {
		name        string
		bufLen      int
		bytesToRead int
		filled      int
	}{
		{"request smaller", 128, 10, 92},
		{"request larger", 128, 200, 92},
		{"request exact", 128, 92, 92},
		{"request zero", 128, 0, 92},
		{"short buffer", 50, 100, 50},
		{"empty buffer", 0, 100, 0},
	}
	for _, p := range patterns {
		tf := func(t *testing.T) {
			buf := make([]byte, p.bufLen)
			n, st := s.Read(d2xx.OpenHandle, buf, p.bytesToRead)
			assert.Equal(t, d2xx.OK, st)
			assert.Equal(t, p.filled, n)
			checkFill(t, buf, p.filled)
		}
		t.Run(p.name, tf)
	}
	// nil buffer
	n, st := s.Read(d2xx.OpenHandle, nil, 10)
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, 0, n)
}

func TestWrite(t *testing.T) {
	s := d2xx.Sim{}
	for _, size := range []int{0, 1, 10, 1000} {
		n, st := s.Write(d2xx.OpenExHandle, make([]byte, size), size)
		assert.Equal(t, d2xx.OK, st)
		assert.Equal(t, 10, n)
	}
}

func TestSetters(t *testing.T) {
	s := d2xx.Sim{}
	h := d2xx.OpenHandle
	setters := []struct {
		name string
		fn   func() d2xx.Status
	}{
		{"SetVIDPID", func() d2xx.Status { return s.SetVIDPID(0x0403, 0x6001) }},
		{"SetBaudRate", func() d2xx.Status { return s.SetBaudRate(h, 9600) }},
		{"SetDataCharacteristics", func() d2xx.Status { return s.SetDataCharacteristics(h, 8, 0, 0) }},
		{"SetTimeouts", func() d2xx.Status { return s.SetTimeouts(h, 1000, 1000) }},
		{"SetFlowControl", func() d2xx.Status { return s.SetFlowControl(h, 0x0100, 0x11, 0x13) }},
		{"SetDtr", func() d2xx.Status { return s.SetDtr(h) }},
		{"ClrDtr", func() d2xx.Status { return s.ClrDtr(h) }},
		{"SetRts", func() d2xx.Status { return s.SetRts(h) }},
		{"ClrRts", func() d2xx.Status { return s.ClrRts(h) }},
		{"SetEventNotification", func() d2xx.Status { return s.SetEventNotification(h, 1, 0) }},
		{"SetChars", func() d2xx.Status { return s.SetChars(h, '\n', 1, 0, 0) }},
		{"SetBreakOn", func() d2xx.Status { return s.SetBreakOn(h) }},
		{"SetBreakOff", func() d2xx.Status { return s.SetBreakOff(h) }},
		{"Purge", func() d2xx.Status { return s.Purge(h, 3) }},
		{"ResetDevice", func() d2xx.Status { return s.ResetDevice(h) }},
		{"ResetPort", func() d2xx.Status { return s.ResetPort(h) }},
		{"CyclePort", func() d2xx.Status { return s.CyclePort(h) }},
		{"StopInTask", func() d2xx.Status { return s.StopInTask(h) }},
		{"RestartInTask", func() d2xx.Status { return s.RestartInTask(h) }},
		{"SetWaitMask", func() d2xx.Status { return s.SetWaitMask(h, 4) }},
		{"SetLatencyTimer", func() d2xx.Status { return s.SetLatencyTimer(h, 2) }},
		{"SetBitMode", func() d2xx.Status { return s.SetBitMode(h, 0xff, 1) }},
		{"SetUSBParameters", func() d2xx.Status { return s.SetUSBParameters(h, 4096, 4096) }},
	}
	for _, p := range setters {
		tf := func(t *testing.T) {
			assert.Equal(t, d2xx.OK, p.fn())
		}
		t.Run(p.name, tf)
	}

	// the one failure
	for _, div := range []uint16{0, 1, 0xffff} {
		assert.Equal(t, d2xx.NotSupported, s.SetDivisor(h, div))
		assert.Equal(t, d2xx.Status(17), s.SetDivisor(d2xx.OpenExHandle, div))
	}
}

func TestQueueStatus(t *testing.T) {
	s := d2xx.Sim{}
	n, st := s.GetQueueStatus(1)
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, uint32(0), n)

	for _, h := range []d2xx.Handle{-1, 0, 2, 3, 1000} {
		n, st = s.GetQueueStatus(h)
		assert.Equal(t, d2xx.OK, st)
		assert.Equal(t, uint32(90), n, h)
	}
}

func TestStatusQueries(t *testing.T) {
	s := d2xx.Sim{}
	h := d2xx.OpenExHandle

	ms, st := s.GetModemStatus(h)
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, uint32(24593), ms)
	assert.Equal(t, uint32(17), ms&0xff)
	assert.Equal(t, uint32(96), ms>>8)

	rx, tx, ev, st := s.GetStatus(h)
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, uint32(1), rx)
	assert.Equal(t, uint32(2), tx)
	assert.Equal(t, uint32(3), ev)

	mask, st := s.WaitOnMask(h)
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, uint32(4), mask)

	lat, st := s.GetLatencyTimer(h)
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, byte(7), lat)

	mode, st := s.GetBitMode(h)
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, byte(20), mode)
}

func TestDeviceInfo(t *testing.T) {
	s := d2xx.Sim{}
	n, st := s.CreateDeviceInfoList()
	assert.Equal(t, d2xx.OK, st)
	assert.Equal(t, uint32(4), n)

	patterns := []struct {
		index       int
		serial      string
		description string
	}{
		{0, "EEEEEE", "FFFFFFFFFF"},
		{1, "AAAAAA", "BBBBBBBBBB"},
		{2, "CCCCCC", "DDDDDDDDDD"},
		{3, "EEEEEE", "FFFFFFFFFF"},
		{-1, "EEEEEE", "FFFFFFFFFF"},
		{42, "EEEEEE", "FFFFFFFFFF"},
	}
	for _, p := range patterns {
		info, st := s.GetDeviceInfoDetail(p.index)
		assert.Equal(t, d2xx.OK, st)
		assert.Equal(t, uint32(67330049), info.ID, p.index)
		assert.Equal(t, uint16(0x0403), info.VID())
		assert.Equal(t, uint16(0x6001), info.PID())
		assert.Equal(t, p.serial, info.SerialNumber, p.index)
		assert.Equal(t, p.description, info.Description, p.index)
	}
}

func TestDeterminism(t *testing.T) {
	s := d2xx.Sim{}
	first := make([]byte, 100)
	s.Read(2, first, 5)
	info, _ := s.GetDeviceInfoDetail(2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf := make([]byte, 100)
				s.Read(2, buf, 5)
				assert.Equal(t, first, buf)
				xinfo, _ := s.GetDeviceInfoDetail(2)
				assert.Equal(t, info, xinfo)
				n, _ := s.GetQueueStatus(2)
				assert.Equal(t, uint32(90), n)
			}
		}()
	}
	wg.Wait()
}

func TestPort(t *testing.T) {
	p, err := d2xx.OpenPort(d2xx.Sim{}, 0)
	require.Nil(t, err)
	require.NotNil(t, p)
	assert.Equal(t, d2xx.OpenHandle, p.Handle())

	n, err := p.QueueStatus()
	assert.Nil(t, err)
	assert.Equal(t, 0, n)

	buf := make([]byte, 100)
	n, err = p.Read(buf)
	assert.Nil(t, err)
	assert.Equal(t, 92, n)
	checkFill(t, buf, 92)

	n, err = p.Write([]byte("*IDN?\n"))
	assert.Nil(t, err)
	assert.Equal(t, 10, n)

	modem, line, err := p.ModemStatus()
	assert.Nil(t, err)
	assert.Equal(t, byte(0x11), modem)
	assert.Equal(t, byte(0x60), line)

	assert.Nil(t, p.SetBaudRate(115200))
	err = p.SetDivisor(26)
	assert.ErrorIs(t, err, d2xx.ErrNotSupported)
	assert.Nil(t, p.Close())

	px, err := d2xx.OpenPortEx(d2xx.Sim{}, 0, 0)
	require.Nil(t, err)
	assert.Equal(t, d2xx.OpenExHandle, px.Handle())
	n, err = px.QueueStatus()
	assert.Nil(t, err)
	assert.Equal(t, 90, n)
}
