// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gpib_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/warthog618/go-instrsim/gpib"
)

func TestStatusString(t *testing.T) {
	patterns := []struct {
		sta  gpib.Status
		name string
	}{
		{0, "0"},
		{gpib.ERR, "ERR"},
		{gpib.ERR | gpib.TIMO, "ERR|TIMO"},
		{gpib.END | gpib.CMPL, "END|CMPL"},
		{gpib.DCAS, "DCAS"},
		{22, "ATN|LACS|DTAS"},
		{0x10000, "0x10000"},
		{gpib.ERR | 0x10000, "ERR|0x10000"},
	}
	for _, p := range patterns {
		assert.Equal(t, p.name, p.sta.String())
	}
}

func TestStatusHas(t *testing.T) {
	sta := gpib.ERR | gpib.END
	assert.True(t, sta.Has(gpib.ERR))
	assert.True(t, sta.Has(gpib.END))
	assert.True(t, sta.Has(gpib.ERR|gpib.END))
	assert.False(t, sta.Has(gpib.TIMO))
	assert.False(t, sta.Has(gpib.ERR|gpib.TIMO))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "one or more arguments to the function call were invalid", gpib.EARG.Error())
	assert.Equal(t, "unknown error 9", gpib.Error(9).Error())
	for _, e := range []gpib.Error{gpib.EDVR, gpib.ECIC, gpib.ENOL, gpib.EHDL, gpib.EPWR} {
		assert.NotContains(t, e.Error(), "unknown")
	}
}

func TestCheck(t *testing.T) {
	assert.Nil(t, gpib.Check("ibwrt", gpib.WrtStatus, gpib.EARG))
	assert.Nil(t, gpib.Check("ibrd", gpib.END, gpib.EARG))

	err := gpib.Check("ibcmd", gpib.ERR, gpib.EARG)
	assert.EqualError(t, err,
		"ibcmd, ibsta:0x8000, iberr:0x4: one or more arguments to the function call were invalid")
	assert.True(t, errors.Is(err, gpib.EARG))
	assert.Equal(t, gpib.EARG, errors.Cause(err))

	err = gpib.Check("ibclr", gpib.TIMO, gpib.EARG)
	assert.True(t, errors.Is(err, gpib.ErrTimeout))
	assert.EqualError(t, err, "ibclr, ibsta:0x4000: timeout")

	// timeout takes precedence
	err = gpib.Check("ibrd", gpib.ERR|gpib.TIMO, gpib.EABO)
	assert.True(t, errors.Is(err, gpib.ErrTimeout))
}
