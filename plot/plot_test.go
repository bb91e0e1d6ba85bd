// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/math32/minmax"
	"github.com/funcplot/funcplot/plot"
	_ "github.com/funcplot/funcplot/plot/plots"
)

func sine() *plot.Config {
	cf := plot.NewConfig()
	cf.Items = []plot.Item{
		{Kind: plot.Function, Expr: "a sin(x)", Style: plot.Style{Label: "a sin(x)"}},
	}
	cf.Params = []plot.Param{{Name: "a", Value: 1, Min: 0, Max: 5, Step: 0.1}}
	return cf
}

func TestDrawIdempotent(t *testing.T) {
	pt := plot.New(sine())
	sc1 := pt.Draw()
	w1 := pt.Warnings()
	sc2 := pt.Draw()
	assert.Equal(t, sc1, sc2)
	assert.Equal(t, w1, pt.Warnings())
	assert.Equal(t, sc1.SVGString(), sc2.SVGString())
}

func TestDrawGroups(t *testing.T) {
	pt := plot.New(sine())
	sc := pt.Draw()
	var names []string
	for _, g := range sc.Groups {
		names = append(names, g.Name)
	}
	// overlay appears only when a draw hook emits something
	assert.Equal(t, []string{"grid", "axes", "curves", "legend"}, names)
}

func TestSetParamRedraw(t *testing.T) {
	pt := plot.New(sine())
	pt.Draw()
	base := len(pt.Primitives())
	require.Greater(t, base, 0)
	y1 := pt.Primitives()[0].Data[0][0].Y

	require.NoError(t, pt.SetParam("a", 3))
	pt.Draw()
	y3 := pt.Primitives()[0].Data[0][0].Y
	assert.InDelta(t, 3*y1, y3, 1e-9)

	assert.Error(t, pt.SetParam("nope", 1))
}

func TestSetConfigViewReset(t *testing.T) {
	pt := plot.New(sine())
	pt.Draw()
	pt.View.Set(minmax.Range(0, 1), minmax.Range(0, 1))

	// same limits: the override survives
	cf := sine()
	cf.Params[0].Value = 2
	pt.SetConfig(cf)
	assert.True(t, pt.View.IsSet())

	// changed limits: hard reset
	cf = sine()
	cf.XLim.Set(-5, 5)
	pt.SetConfig(cf)
	assert.False(t, pt.View.IsSet())
}

func TestWarningsDeduped(t *testing.T) {
	cf := plot.NewConfig()
	cf.Items = []plot.Item{
		{Kind: plot.Function, Expr: "x +"},
		{Kind: plot.Function, Expr: "x +"},
	}
	pt := plot.New(cf)
	pt.Draw()
	ws := pt.Warnings()
	require.NotEmpty(t, ws)
	seen := map[string]bool{}
	for _, w := range ws {
		assert.False(t, seen[w], "duplicate warning: %q", w)
		seen[w] = true
	}
}

func TestDecodeConfig(t *testing.T) {
	data := []byte(`{
		"xlim": {"min": -5, "max": 5},
		"ylim": {"min": -2, "max": 2},
		"items": [{"kind": "function", "expr": "sin(x)"}]
	}`)
	cf, warns, err := plot.DecodeConfig(data)
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.Equal(t, -5.0, cf.XLim.Min)
	require.Len(t, cf.Items, 1)
	assert.Equal(t, plot.Function, cf.Items[0].Kind)
	assert.Equal(t, float32(2), cf.SampleStepPx, "defaults fill unset fields")
}

func TestDecodeConfigUnknownField(t *testing.T) {
	data := []byte(`{"items": [], "wibble": 3}`)
	cf, warns, err := plot.DecodeConfig(data)
	require.NoError(t, err)
	require.NotNil(t, cf)
	assert.NotEmpty(t, warns, "unknown keys warn but do not fail")
}

func TestDecodeConfigBadJSON(t *testing.T) {
	_, _, err := plot.DecodeConfig([]byte(`{`))
	assert.Error(t, err)
}

func TestDecodeConfigUnknownKind(t *testing.T) {
	data := []byte(`{"items": [{"kind": "wobble", "expr": "x"}]}`)
	cf, _, err := plot.DecodeConfig(data)
	require.NoError(t, err)
	require.Len(t, cf.Items, 1)
	assert.Equal(t, plot.NoItem, cf.Items[0].Kind)
	pt := plot.New(cf)
	pt.Draw()
	assert.NotEmpty(t, pt.Warnings())
}

func TestSVGOutput(t *testing.T) {
	pt := plot.New(sine())
	sc := pt.Draw()
	svg := sc.SVGString()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "<path")
	assert.Contains(t, svg, "<text")
	assert.Contains(t, svg, "</svg>")

	fnm := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, sc.SVGToFile(fnm))
	data, err := os.ReadFile(fnm)
	require.NoError(t, err)
	assert.Equal(t, svg, string(data))
}

func TestHitTest(t *testing.T) {
	cf := plot.NewConfig()
	cf.Items = []plot.Item{{Kind: plot.Function, Expr: "x"}}
	pt := plot.New(cf)
	pt.Draw()

	// a point on the diagonal
	pos := pt.Transform
	hit, ok := pt.ClosestPrimitive(
		math32.Vec2(pos.PX(2), pos.PY(2)), cf.SnapRadiusPx)
	require.True(t, ok)
	assert.Equal(t, 0, hit.Item)
	assert.InDelta(t, 2.0, hit.Data.X, 0.05)
	assert.InDelta(t, 2.0, hit.Data.Y, 0.05)

	_, ok = pt.ClosestPrimitive(math32.Vec2(30, 30), cf.SnapRadiusPx)
	assert.False(t, ok)
}
