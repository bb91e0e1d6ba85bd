// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funcplot/funcplot/math32/minmax"
)

func TestViewStates(t *testing.T) {
	cf := NewConfig()
	vw := &View{}
	assert.False(t, vw.IsSet())
	x, y := vw.Current(cf)
	assert.Equal(t, cf.XLim, x)
	assert.Equal(t, cf.YLim, y)

	vw.Init(cf)
	assert.True(t, vw.IsSet())
	assert.Equal(t, cf.XLim, vw.X)

	vw.Set(minmax.Range(0, 1), minmax.Range(0, 2))
	x, y = vw.Current(cf)
	assert.Equal(t, minmax.Range(0, 1), x)
	assert.Equal(t, minmax.Range(0, 2), y)

	// Init after Set must not clobber the override
	vw.Init(cf)
	x, _ = vw.Current(cf)
	assert.Equal(t, minmax.Range(0, 1), x)

	vw.Reset(cf)
	assert.True(t, vw.IsSet())
	x, _ = vw.Current(cf)
	assert.Equal(t, cf.XLim, x)

	vw.Set(minmax.Range(0, 1), minmax.Range(0, 2))
	vw.HardReset()
	assert.False(t, vw.IsSet())
	x, _ = vw.Current(cf)
	assert.Equal(t, cf.XLim, x)
}

func TestMinMaxSanitize(t *testing.T) {
	r := minmax.Range(3, -3)
	r.Sanitize()
	assert.Equal(t, minmax.Range(-3, 3), r)

	var z minmax.F64
	z.Sanitize()
	assert.True(t, z.Range() > 0)
}
