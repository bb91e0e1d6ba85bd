// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import "github.com/funcplot/funcplot/plot"

// Projection maps the primary interactor's state to the point set shown
// on a linked secondary plot.
type Projection func(pri *Interactor) []plot.Point

// TraceProjection is the default [Projection]: the (x, slope) samples
// accumulated by tangent dragging with tracing enabled.
func TraceProjection(pri *Interactor) []plot.Point {
	if sel := pri.Selection(); sel != nil {
		return sel.Trace
	}
	return nil
}

// LinkedView couples a secondary plot to a primary interactor: after
// every draw of the primary plot, the projection's output replaces the
// point set of the secondary's first Points item (appended if absent)
// and the secondary redraws. The canonical use is a derivative display
// under the main plot.
type LinkedView struct {

	// Primary is the interactor driving the link.
	Primary *Interactor

	// Secondary is the dependent plot.
	Secondary *plot.Plot

	// Project produces the secondary's point set; defaults to
	// [TraceProjection].
	Project Projection
}

// NewLinkedView links the secondary plot to the primary interactor,
// registering the update hook on the primary's plot.
func NewLinkedView(pri *Interactor, sec *plot.Plot) *LinkedView {
	lv := &LinkedView{Primary: pri, Secondary: sec, Project: TraceProjection}
	pri.Plot.OnDraw(func(*plot.Plot) { lv.update() })
	return lv
}

func (lv *LinkedView) update() {
	pts := lv.Project(lv.Primary)
	cf := lv.Secondary.Config.Clone()
	idx := -1
	for i := range cf.Items {
		if cf.Items[i].Kind == plot.Points {
			idx = i
			break
		}
	}
	if idx < 0 {
		cf.Items = append(cf.Items, plot.Item{Kind: plot.Points})
		idx = len(cf.Items) - 1
	}
	cf.Items[idx].Points = pts
	lv.Secondary.SetConfig(cf)
	lv.Secondary.Draw()
}
