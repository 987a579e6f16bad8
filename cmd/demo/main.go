// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Demo: a terminal sandbox for the collision-class world. Balls drop onto a
// ground chain and a couple of platforms; ghosts fall straight through the
// balls because their class ignores them. Space spawns a ball, g spawns a
// ghost, c runs a circle query around the screen center, q or escape quits.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kestrel2d/ccworld"
	"github.com/kestrel2d/ccworld/internal/level"
	"github.com/kestrel2d/ccworld/util/logger"
)

const (
	tickRate   = 30
	worldScale = 2.0 // world units per terminal cell column
)

func sandboxLevel(width, height float64) *level.Level {

	return &level.Level{
		Name:    "sandbox",
		Gravity: [2]float64{0, 60},
		Classes: []level.Class{
			{Name: "Ground", Spec: ccworld.CollisionClass{}},
			{Name: "Ball", Spec: ccworld.CollisionClass{}},
			{Name: "Ghost", Spec: ccworld.CollisionClass{
				Ignores: ccworld.IgnoreNames("Ball", "Ghost"),
			}},
		},
		Entities: []level.Entity{
			{
				Name: "ground", Class: "Ground", Kind: ccworld.Static,
				Shape: ccworld.Chain{
					Points: []float64{0, height - 4, width, height - 4},
				},
			},
			{
				Name: "platform-left", Class: "Ground", Kind: ccworld.Static,
				Shape: ccworld.BSGRectangle{W: width / 3, H: 4, Cut: 1},
				X:     width / 4, Y: height * 0.55,
			},
			{
				Name: "platform-right", Class: "Ground", Kind: ccworld.Static,
				Shape: ccworld.Rectangle{W: width / 3, H: 4},
				X:     width * 3 / 4, Y: height * 0.35,
			},
		},
	}
}

type demo struct {
	screen tcell.Screen
	canvas *Canvas
	blip   *Blip

	world  *ccworld.World
	mobile []*ccworld.Collider

	width, height float64
}

func newDemo() (*demo, error) {

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	cols, rows := screen.Size()

	d := &demo{
		screen: screen,
		canvas: NewCanvas(screen, worldScale),
		blip:   NewBlip(),
		width:  float64(cols) * worldScale,
		height: float64(rows) * worldScale * 2,
	}

	lvl := sandboxLevel(d.width, d.height)
	world, _, err := lvl.Build()
	if err != nil {
		screen.Fini()
		return nil, err
	}
	d.world = world
	d.world.SetQueryDebugDrawing(true)
	return d, nil
}

func (d *demo) spawnBall() {

	x := d.width*0.2 + rand.Float64()*d.width*0.6
	c := d.world.NewCircleCollider(ccworld.Dynamic, x, 4, 2+rand.Float64()*2)
	c.SetCollisionClass("Ball")
	d.mobile = append(d.mobile, c)
}

func (d *demo) spawnGhost() {

	x := d.width*0.2 + rand.Float64()*d.width*0.6
	c := d.world.NewRectangleCollider(ccworld.Dynamic, x, 4, 4, 4)
	c.SetCollisionClass("Ghost")
	d.mobile = append(d.mobile, c)
}

func (d *demo) tick(dt float64) {

	d.world.Update(dt)

	for _, c := range d.mobile {
		if c.Enter("Ground") {
			d.blip.Play(440)
		}
		if c.Enter("Ball") {
			d.blip.Play(660)
		}
	}
}

func (d *demo) render() {

	d.screen.Clear()
	d.world.Draw(d.canvas, 1)
	d.screen.Show()
}

func (d *demo) run() {

	defer d.screen.Fini()
	defer d.world.Destroy()

	keys := make(chan *tcell.EventKey, 8)
	go func() {
		for {
			ev := d.screen.PollEvent()
			switch e := ev.(type) {
			case *tcell.EventKey:
				keys <- e
			case *tcell.EventResize:
				d.screen.Sync()
			case nil:
				close(keys)
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for {
		select {
		case key, ok := <-keys:
			if !ok {
				return
			}
			switch {
			case key.Key() == tcell.KeyEscape, key.Rune() == 'q':
				return
			case key.Rune() == ' ':
				d.spawnBall()
			case key.Rune() == 'g':
				d.spawnGhost()
			case key.Rune() == 'c':
				d.world.QueryCircleArea(d.width/2, d.height/2, 20, ccworld.FilterAll("Ghost"))
			}
		case <-ticker.C:
			d.tick(1.0 / tickRate)
			d.render()
		}
	}
}

func main() {

	logAddr := flag.String("logaddr", "", "ship logs to a tcp collector (host:port)")
	flag.Parse()

	// The screen owns stdout once the demo starts, so console logging is
	// useless here; a network sink is the way to watch the world's logs.
	if *logAddr != "" {
		sink, err := logger.NewNet("tcp", *logAddr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "demo: log collector: %v\n", err)
			os.Exit(1)
		}
		logger.AddWriter(sink)
		logger.SetLevel(logger.DEBUG)
		// Child loggers copy their level at creation, so the world's logger
		// needs its own level raised.
		if wl := logger.Find("CCW/WORLD"); wl != nil {
			wl.SetLevel(logger.DEBUG)
		}
	}

	d, err := newDemo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
	d.run()
}
