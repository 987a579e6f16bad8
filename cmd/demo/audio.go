// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Blip plays short sine tones for collision feedback. If the speaker cannot
// be initialized (no audio device), every Play becomes a no-op.
type Blip struct {
	enabled bool
}

func NewBlip() *Blip {

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Blip{enabled: err == nil}
}

// Play emits a 60ms tone at the given frequency.
func (b *Blip) Play(freq int) {

	if !b.enabled {
		return
	}
	tone, err := generators.SinTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), tone))
}
