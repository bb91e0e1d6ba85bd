// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots provides the standard plotters for each item kind,
// registered with the plot package on import:
//
//	import _ "github.com/funcplot/funcplot/plot/plots"
package plots
