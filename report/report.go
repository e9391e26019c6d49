// Copyright 2026 The PINN-ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package report renders training results to image files with gonum/plot.
// It is a pure sink: callers pass arrays, nothing here reads or mutates
// training state.
package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pinn-ml/pinn/pinn"
)

var (
	predColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	exactColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	trueColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

func xys(xs, ys []float64) (plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("report: mismatched series lengths %d vs %d", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts, nil
}

// SaveSolution renders the trained solution against the exact one.
func SaveSolution(path string, ts, pred, exact []float64) error {
	p := plot.New()
	p.Title.Text = "Damped harmonic oscillator"
	p.X.Label.Text = "t"
	p.Y.Label.Text = "u(t)"

	exactPts, err := xys(ts, exact)
	if err != nil {
		return err
	}
	exactLine, err := plotter.NewLine(exactPts)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	exactLine.Color = exactColor
	exactLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	predPts, err := xys(ts, pred)
	if err != nil {
		return err
	}
	predLine, err := plotter.NewLine(predPts)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	predLine.Color = predColor

	p.Add(exactLine, predLine)
	p.Legend.Add("exact", exactLine)
	p.Legend.Add("network", predLine)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// SaveLoss renders the training loss over the snapshot history.
func SaveLoss(path string, history []pinn.Snapshot) error {
	p := plot.New()
	p.Title.Text = "Training loss"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "loss"

	pts := make(plotter.XYs, len(history))
	for i, snap := range history {
		pts[i].X = float64(snap.Iteration)
		pts[i].Y = snap.Loss
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	line.Color = predColor

	p.Add(line)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// SaveMuTrajectory renders the learned damping coefficient over the
// snapshot history against its true value.
func SaveMuTrajectory(path string, history []pinn.Snapshot, muTrue float64) error {
	p := plot.New()
	p.Title.Text = "Damping coefficient discovery"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "mu"

	pts := make(plotter.XYs, len(history))
	for i, snap := range history {
		pts[i].X = float64(snap.Iteration)
		pts[i].Y = snap.Mu
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	line.Color = predColor

	truth := plotter.NewFunction(func(x float64) float64 { return muTrue })
	truth.Color = trueColor
	truth.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(line, truth)
	p.Legend.Add("learned", line)
	p.Legend.Add("true", truth)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
