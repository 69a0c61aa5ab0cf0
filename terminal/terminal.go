// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// Package terminal abstracts the output line and input side of a text
// console. The library renders every frame through a [Terminal], so tests
// (and embedders) can swap the real ANSI console for a recording fake.
package terminal

// DefaultWidth is used when the column count cannot be queried.
const DefaultWidth = 80

// Terminal is the sink and source the presentation layer talks to.
type Terminal interface {
	// Print writes text verbatim, no terminator added.
	Print(text string)
	// ClearLine returns the cursor to column 0 and erases the line.
	ClearLine()
	// CursorUp moves the cursor up n lines.
	CursorUp(n int)
	// Width reports the console width in columns, falling back to
	// DefaultWidth when it cannot be determined.
	Width() int
	// IsTTY reports whether colored output should be produced.
	IsTTY() bool
	// ReadLine reads one line of input, without the trailing newline.
	ReadLine() (string, error)
	// ReadPassword reads one line of input without echoing it.
	ReadPassword() (string, error)
}
