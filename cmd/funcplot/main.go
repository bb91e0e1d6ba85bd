// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command funcplot renders a plot configuration to an interactive
// window or an SVG file.
//
//	funcplot -config plot.json             interactive viewer
//	funcplot -config plot.json -svg out.svg one-shot SVG render
//
// The viewer watches the configuration file and reloads it on change.
// Keys: R resets the view, 1-4 arm the selection modes (none, point,
// slope, tangent), T toggles tangent tracing, S saves an SVG snapshot.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/funcplot/funcplot/base/errors"
	"github.com/funcplot/funcplot/base/iox/tomlx"
	"github.com/funcplot/funcplot/base/iox/yamlx"
	"github.com/funcplot/funcplot/events"
	"github.com/funcplot/funcplot/interact"
	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/plot"
	_ "github.com/funcplot/funcplot/plot/plots"
)

// wheelScale converts one ebiten wheel unit into a scroll event delta;
// negative so that scrolling up zooms in.
const wheelScale = -50

func main() {
	cfile := flag.String("config", "", "plot configuration file (json)")
	svg := flag.String("svg", "", "render once to the given SVG file and exit")
	flag.Parse()

	cf, err := loadConfig(*cfile)
	if err != nil {
		slog.Error("loading configuration", "file", *cfile, "err", err)
		os.Exit(1)
	}
	pt := plot.New(cf)
	pt.Draw()
	logWarnings(pt)

	if *svg != "" {
		if err := pt.Scene.SVGToFile(*svg); err != nil {
			slog.Error("writing svg", "file", *svg, "err", err)
			os.Exit(1)
		}
		return
	}

	vw := &viewer{pt: pt, it: interact.New(pt), cfile: *cfile}
	vw.it.Listen(&vw.src)
	if *cfile != "" {
		vw.reload = watchConfig(*cfile)
	}
	ebiten.SetWindowTitle("funcplot")
	ebiten.SetWindowSize(pt.Scene.Size.X, pt.Scene.Size.Y)
	if err := ebiten.RunGame(vw); err != nil {
		slog.Error("viewer", "err", err)
		os.Exit(1)
	}
}

// loadConfig reads a configuration file, chosen by extension: json
// (with unknown-key warnings), toml, or yaml. With no file, a sine
// demo configuration is returned.
func loadConfig(fnm string) (*plot.Config, error) {
	if fnm == "" {
		cf := plot.NewConfig()
		cf.Items = []plot.Item{{Kind: plot.Function, Expr: "sin(x)"}}
		return cf, nil
	}
	switch filepath.Ext(fnm) {
	case ".toml":
		cf := plot.NewConfig()
		return cf, tomlx.Open(cf, fnm)
	case ".yaml", ".yml":
		cf := plot.NewConfig()
		return cf, yamlx.Open(cf, fnm)
	}
	data, err := os.ReadFile(fnm)
	if err != nil {
		return nil, err
	}
	cf, warns, err := plot.DecodeConfig(data)
	for _, w := range warns {
		slog.Warn(w)
	}
	return cf, err
}

func logWarnings(pt *plot.Plot) {
	for _, w := range pt.Warnings() {
		slog.Warn(w)
	}
}

// watchConfig watches the configuration file and signals each change on
// the returned channel.
func watchConfig(fnm string) chan struct{} {
	ch := make(chan struct{}, 1)
	wt, err := fsnotify.NewWatcher()
	if errors.Log(err) != nil {
		return ch
	}
	if err := wt.Add(fnm); errors.Log(err) != nil {
		return ch
	}
	go func() {
		for {
			select {
			case ev, ok := <-wt.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
					select {
					case ch <- struct{}{}:
					default:
					}
				}
			case err, ok := <-wt.Errors:
				if !ok {
					return
				}
				slog.Warn("watching configuration", "err", err)
			}
		}
	}()
	return ch
}

// viewer is the ebiten game adapting window input into events and
// rasterizing the latest scene each frame.
type viewer struct {
	pt     *plot.Plot
	it     *interact.Interactor
	src    events.Source
	cfile  string
	reload chan struct{}

	lastPos math32.Vector2
	down    bool
	shots   int
}

func (vw *viewer) Update() error {
	select {
	case <-vw.reload:
		if cf, err := loadConfig(vw.cfile); errors.Log(err) == nil {
			vw.pt.SetConfig(cf)
			vw.pt.Draw()
			logWarnings(vw.pt)
		}
	default:
	}

	cx, cy := ebiten.CursorPosition()
	pos := math32.Vec2(float32(cx), float32(cy))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		vw.down = true
		vw.src.Send(events.NewMouse(events.MouseDown, events.Left, pos))
	}
	if pos != vw.lastPos {
		vw.src.Send(events.NewMouse(events.MouseMove, events.NoButton, pos))
		vw.lastPos = pos
	}
	if vw.down && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		vw.down = false
		vw.src.Send(events.NewMouse(events.MouseUp, events.Left, pos))
	}
	if _, yoff := ebiten.Wheel(); yoff != 0 {
		vw.src.Send(events.NewScroll(pos, math32.Vec2(0, float32(yoff)*wheelScale)))
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		vw.it.Reset()
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		vw.it.SetMode(interact.SelectNone)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		vw.it.SetMode(interact.SelectPoint)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		vw.it.SetMode(interact.SelectSlope)
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		vw.it.SetMode(interact.SelectTangent)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		vw.it.Tracing = !vw.it.Tracing
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		vw.shots++
		fnm := fmt.Sprintf("funcplot-%02d.svg", vw.shots)
		if errors.Log(vw.pt.Scene.SVGToFile(fnm)) == nil {
			slog.Info("saved", "file", fnm)
		}
	}
	return nil
}

func (vw *viewer) Draw(screen *ebiten.Image) {
	rasterize(screen, vw.pt.Scene)
}

func (vw *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return vw.pt.Scene.Size.X, vw.pt.Scene.Size.Y
}
