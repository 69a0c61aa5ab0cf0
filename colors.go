// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package cliasi

import (
	"github.com/fatih/color"
)

// palette holds the per-level colors for one instance. Colors are enabled
// or disabled per *color.Color so independent instances never fight over
// the package-global color.NoColor switch.
type palette struct {
	// enabled mirrors the per-color state so callers that build their
	// own escape sequences (the rainbow tint) can honor it too.
	enabled bool

	neutral   *color.Color
	info      *color.Color
	warn      *color.Color
	fail      *color.Color
	success   *color.Color
	ask       *color.Color
	askHidden *color.Color
	bar       *color.Color
	download  *color.Color
	spinner   *color.Color
	dim       *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		enabled:   enabled,
		neutral:   mk(color.FgWhite, color.Faint),
		info:      mk(color.FgHiWhite),
		warn:      mk(color.FgHiYellow),
		fail:      mk(color.FgHiRed),
		success:   mk(color.FgHiGreen),
		ask:       mk(color.FgMagenta),
		askHidden: mk(color.FgHiMagenta),
		bar:       mk(color.FgBlue),
		download:  mk(color.FgHiCyan),
		spinner:   mk(color.FgHiMagenta),
		dim:       mk(color.Faint),
	}
}

// colorize wraps one segment of a frame in color codes.
type colorize func(s string) string

func tint(c *color.Color) colorize {
	return func(s string) string { return c.Sprint(s) }
}
