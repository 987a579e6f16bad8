// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Canvas adapts a tcell screen to the debugdraw.Renderer interface. World
// coordinates map to cells through a uniform scale, with the Y axis halved
// because terminal cells are roughly twice as tall as they are wide.
type Canvas struct {
	screen tcell.Screen
	scale  float64

	r, g, b, a float64
	lineWidth  float64
}

// NewCanvas wraps a screen at the given world-units-per-cell scale.
func NewCanvas(screen tcell.Screen, scale float64) *Canvas {

	return &Canvas{screen: screen, scale: scale, r: 1, g: 1, b: 1, a: 1, lineWidth: 1}
}

func (c *Canvas) Color() (r, g, b, a float64) { return c.r, c.g, c.b, c.a }

func (c *Canvas) SetColor(r, g, b, a float64) {

	c.r, c.g, c.b, c.a = r, g, b, a
}

func (c *Canvas) LineWidth() float64 { return c.lineWidth }

// SetLineWidth stores the width for interface symmetry; terminal cells have
// no sub-cell width, so it does not change the rendering.
func (c *Canvas) SetLineWidth(width float64) { c.lineWidth = width }

func (c *Canvas) style() tcell.Style {

	color := tcell.NewRGBColor(
		int32(c.r*c.a*255),
		int32(c.g*c.a*255),
		int32(c.b*c.a*255),
	)
	return tcell.StyleDefault.Foreground(color)
}

func (c *Canvas) cell(x, y float64) (int, int) {

	return int(math.Round(x / c.scale)), int(math.Round(y / c.scale / 2))
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {

	cx1, cy1 := c.cell(x1, y1)
	cx2, cy2 := c.cell(x2, y2)
	c.bresenham(cx1, cy1, cx2, cy2)
}

func (c *Canvas) Polygon(mode string, points []float64) {

	n := len(points) / 2
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		c.Line(points[i*2], points[i*2+1], points[j*2], points[j*2+1])
	}
}

func (c *Canvas) Rectangle(mode string, x, y, width, height float64) {

	c.Line(x, y, x+width, y)
	c.Line(x+width, y, x+width, y+height)
	c.Line(x+width, y+height, x, y+height)
	c.Line(x, y+height, x, y)
}

func (c *Canvas) Circle(mode string, x, y, radius float64) {

	steps := int(math.Max(8, radius/c.scale*4))
	for i := 0; i < steps; i++ {
		a1 := float64(i) / float64(steps) * 2 * math.Pi
		a2 := float64(i+1) / float64(steps) * 2 * math.Pi
		c.Line(
			x+radius*math.Cos(a1), y+radius*math.Sin(a1),
			x+radius*math.Cos(a2), y+radius*math.Sin(a2),
		)
	}
}

// Triangulate fans the polygon around its first vertex. A scanline canvas
// has no use for a quality mesh, it only needs triangles to outline.
func (c *Canvas) Triangulate(points []float64) [][]float64 {

	n := len(points) / 2
	if n < 3 {
		return nil
	}
	out := make([][]float64, 0, n-2)
	for i := 1; i < n-1; i++ {
		out = append(out, []float64{
			points[0], points[1],
			points[i*2], points[i*2+1],
			points[(i+1)*2], points[(i+1)*2+1],
		})
	}
	return out
}

func (c *Canvas) bresenham(x1, y1, x2, y2 int) {

	style := c.style()
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		c.screen.SetContent(x1, y1, '█', nil, style)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {

	if v < 0 {
		return -v
	}
	return v
}
