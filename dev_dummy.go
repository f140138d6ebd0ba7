//go:build !driftdev

package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

type Tuner struct {
	DoShow bool
}

func NewTuner() *Tuner {
	return new(Tuner)
}

func (tn *Tuner) Update() {
}

func (tn *Tuner) Draw(dst *eb.Image) {
}

type EaseEditor struct {
	DoShow bool
}

func NewEaseEditor() *EaseEditor {
	return new(EaseEditor)
}

func (ee *EaseEditor) Update() {
}

func (ee *EaseEditor) Draw(dst *eb.Image) {
}
