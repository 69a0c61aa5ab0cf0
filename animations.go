// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package cliasi

import (
	"fmt"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// animation is a named multi-frame animation. frameEvery decouples the
// animation's advance rate from the spinner glyph's: the displayed frame
// only changes every frameEvery ticks.
type animation struct {
	frameEvery int
	frames     []string
}

var spinnerSets = [][]string{
	{"+", "-", "*"},
	{"/", "|", "\\", "-"},
	{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"},
}

var downloadSets = [][]string{
	{"🢓", "↧", "⭣", "⯯", "⤓", "⩡", "_", "_"},
}

var mainAnimations = []animation{
	{
		frameEvery: 2,
		frames: []string{
			"|#   |", "| #  |", "|  # |", "|   #|",
			"|   #|", "|  # |", "| #  |", "|#   |",
		},
	},
	{
		frameEvery: 1,
		frames: []string{
			"[|\\____________]",
			"[_|\\___________]",
			"[__|\\__________]",
			"[___|\\_________]",
			"[____|\\________]",
			"[_____|\\_______]",
			"[______|\\______]",
			"[_______|\\_____]",
			"[________|\\____]",
			"[_________|\\___]",
			"[__________|\\__]",
			"[___________|\\_]",
			"[____________|\\]",
			"[____________/|]",
			"[___________/|_]",
			"[__________/|__]",
			"[_________/|___]",
			"[________/|____]",
			"[_______/|_____]",
			"[______/|______]",
			"[_____/|_______]",
			"[____/|________]",
			"[___/|_________]",
			"[__/|__________]",
			"[_/|___________]",
			"[/|____________]",
		},
	},
}

// frameAt returns the animation frame for a tick index.
func (a animation) frameAt(index int) string {
	return a.frames[(index/a.frameEvery)%len(a.frames)]
}

func pickSpinner(rng *rand.Rand) []string {
	return spinnerSets[rng.Intn(len(spinnerSets))]
}

func pickDownload(rng *rand.Rand) []string {
	return downloadSets[rng.Intn(len(downloadSets))]
}

func pickAnimation(rng *rand.Rand) animation {
	return mainAnimations[rng.Intn(len(mainAnimations))]
}

// unicornSteps is the number of hues in one rainbow cycle.
const unicornSteps = 12

const sgrReset = "\033[0m"

// unicornTint colors a segment with the rainbow hue for the given frame,
// rendered as a 24-bit SGR sequence.
func unicornTint(frame int) colorize {
	hue := float64(frame%unicornSteps) * (360.0 / unicornSteps)
	r, g, b := colorful.Hsv(hue, 0.82, 1.0).RGB255()
	code := fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
	return func(s string) string { return code + s + sgrReset }
}
