// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// Package layout computes the visual text of a progress bar line. It is
// pure string math: no terminal access, no shared state.
package layout

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
)

// MinBarWidth is the floor for the space inside the brackets. Narrow
// terminals get a bar of this width rather than a zero or negative one.
const MinBarWidth = 8

const (
	fillGlyph = '='
	ellipsis  = "…"
)

// Clamp bounds progress to [0, 100].
func Clamp(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// PercentSuffix returns the trailing percent label for a progress value,
// including its leading space, e.g. " 42%".
func PercentSuffix(progress int) string {
	return fmt.Sprintf(" %d%%", Clamp(progress))
}

// FormatBar renders a bracketed progress bar sized to termWidth columns.
// overhead is the column count already consumed outside the brackets
// (symbol, spacing, prefix, separator, and the percent suffix when shown).
// The message is centered inside the bar, truncated with an ellipsis if it
// does not fit, and fill glyphs never overwrite message cells — so a long
// message can make the visible fill lag the numeric progress slightly.
func FormatBar(message string, progress int, showPercent bool, termWidth, overhead int) string {
	p := Clamp(progress)

	if overhead < 0 {
		overhead = 0
	}
	inside := termWidth - overhead - 2
	if inside < MinBarWidth {
		inside = MinBarWidth
	}

	msg := message
	if runewidth.StringWidth(msg) > inside {
		if inside >= 3 {
			msg = runewidth.Truncate(msg, inside, ellipsis)
		} else {
			msg = runewidth.Truncate(msg, inside, "")
		}
	}
	msgRunes := []rune(msg)

	start := 0
	if w := runewidth.StringWidth(msg); inside > w {
		start = (inside - w) / 2
	}
	end := start + len(msgRunes)
	if end > inside {
		end = inside
	}

	bar := make([]rune, inside)
	for i := range bar {
		bar[i] = ' '
	}
	copy(bar[start:end], msgRunes)

	// Fill left to right, skipping the message span.
	target := int(math.Round(float64(p) / 100 * float64(inside)))
	filled := 0
	for i := 0; filled < target && i < inside; i++ {
		if i >= start && i < end {
			continue
		}
		bar[i] = fillGlyph
		filled++
	}

	out := "[" + string(bar) + "]"
	if showPercent {
		out += PercentSuffix(p)
	}
	return out
}
