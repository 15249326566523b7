// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package d2xx_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/go-instrsim/d2xx"
	"github.com/warthog618/go-instrsim/internal/trace"
)

func newVerbose(buf *bytes.Buffer) *d2xx.Verbose {
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return d2xx.NewVerbose(d2xx.Sim{}, trace.WithLogger(slog.New(h)))
}

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	v := newVerbose(&buf)

	h, st := v.OpenEx(0, 0)
	assert.Equal(t, d2xx.OpenExHandle, h)
	assert.Equal(t, d2xx.OK, st)

	n, st := v.GetQueueStatus(h)
	assert.Equal(t, uint32(90), n)
	assert.Equal(t, d2xx.OK, st)

	assert.Equal(t, d2xx.NotSupported, v.SetDivisor(h, 3))

	rbuf := make([]byte, 100)
	fn, st := v.Read(h, rbuf, 10)
	assert.Equal(t, 92, fn)
	assert.Equal(t, d2xx.OK, st)

	info, st := v.GetDeviceInfoDetail(1)
	assert.Equal(t, "AAAAAA", info.SerialNumber)
	assert.Equal(t, d2xx.OK, st)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `msg="d2xx.FT_OpenEx(0, 0) -> FT_OK" handle=2`, lines[0])
	assert.Equal(t, `msg="d2xx.FT_GetQueueStatus(2) -> FT_OK" inRxQueue=90`, lines[1])
	assert.Equal(t, `msg="d2xx.FT_SetDivisor(2, 3) -> FT_NOT_SUPPORTED"`, lines[2])
	assert.Equal(t, `msg="d2xx.FT_Read(2, 10) -> FT_OK" filled=92`, lines[3])
	assert.Equal(t,
		`msg="d2xx.FT_GetDeviceInfoDetail(1) -> FT_OK" id=67330049 serialNumber=AAAAAA description=BBBBBBBBBB`,
		lines[4])
}

func TestVerboseMatchesSim(t *testing.T) {
	var buf bytes.Buffer
	v := newVerbose(&buf)
	s := d2xx.Sim{}

	for _, h := range []d2xx.Handle{1, 2, 5} {
		xn, xst := s.GetQueueStatus(h)
		n, st := v.GetQueueStatus(h)
		assert.Equal(t, xn, n)
		assert.Equal(t, xst, st)

		xrx, xtx, xev, xst := s.GetStatus(h)
		rx, tx, ev, st := v.GetStatus(h)
		assert.Equal(t, []uint32{xrx, xtx, xev}, []uint32{rx, tx, ev})
		assert.Equal(t, xst, st)
	}
	xn, _ := s.CreateDeviceInfoList()
	n, _ := v.CreateDeviceInfoList()
	assert.Equal(t, xn, n)
	assert.Contains(t, buf.String(), `msg="d2xx.FT_CreateDeviceInfoList() -> FT_OK" numDevs=4`)
}
