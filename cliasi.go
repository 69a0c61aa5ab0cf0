// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// Package cliasi renders colored status lines, prefixed log-style
// messages, interactive prompts, and static or animated progress
// indicators on a single terminal line.
//
// Every instance is built explicitly with [New]; there is no package-wide
// default. Output goes through a [terminal.Terminal], which tests replace
// with [terminal.NewMock].
package cliasi

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dotandev/cliasi/internal/layout"
	"github.com/dotandev/cliasi/terminal"
)

// Cliasi is one output instance: a prefix, a separator, a verbosity
// threshold, and a rendering mode. Configuration is immutable after New
// except the prefix, which UpdatePrefix may change at any time.
type Cliasi struct {
	prefixMu sync.Mutex
	prefix   string

	separator    string
	oneLine      bool
	verboseLevel int

	term terminal.Terminal

	randMu sync.Mutex
	rng    *rand.Rand

	pal palette
}

// New creates an output instance. prefix is displayed as "[prefix]" in
// front of every message.
func New(prefix string, opts ...Option) *Cliasi {
	s := resolve(opNew, "New", opts)

	term := s.term
	if term == nil {
		term = terminal.NewANSI()
	}
	rng := s.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c := &Cliasi{
		prefix:       prefix,
		separator:    s.separator,
		oneLine:      s.instOneLine,
		verboseLevel: s.verboseLevel,
		term:         term,
		rng:          rng,
		pal:          newPalette(s.colors && term.IsTTY()),
	}
	return c
}

// UpdatePrefix replaces the message prefix. Prefixes read best at three
// characters but any string works.
func (c *Cliasi) UpdatePrefix(prefix string) {
	c.prefixMu.Lock()
	c.prefix = prefix
	c.prefixMu.Unlock()
}

func (c *Cliasi) bracketedPrefix() string {
	c.prefixMu.Lock()
	defer c.prefixMu.Unlock()
	return "[" + c.prefix + "]"
}

// suppressed reports whether a message with the given verbosity is below
// this instance's display threshold.
func (c *Cliasi) suppressed(verbosity int) bool {
	return verbosity > c.verboseLevel
}

// print composes and writes one terminal line: clear the current line,
// then symbol, dimmed prefix, separator and body. It never fails; garbage
// input yields a garbled line at worst.
func (c *Cliasi) print(col colorize, symbol, body string, oneLine, colorBody bool) {
	if colorBody {
		body = col(body)
	}
	parts := make([]string, 0, 4)
	if symbol != "" {
		parts = append(parts, col(symbol))
	}
	parts = append(parts, c.pal.dim.Sprint(c.bracketedPrefix()), c.separator, body)

	c.term.ClearLine()
	c.term.Print(strings.Join(parts, " "))
	if !oneLine {
		c.term.Print("\n")
	}
}

// Newline prints a bare newline, finalizing whatever is on the line.
func (c *Cliasi) Newline() {
	c.term.Print("\n")
}

// ── Leveled lines ────────────────────────────────────────────────────────

// Neutral sends a message in format "# [prefix] | message".
func (c *Cliasi) Neutral(message string, opts ...Option) {
	s := resolve(opPrint, "Neutral", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	c.print(tint(c.pal.neutral), "#", message, s.oneLineOr(c.oneLine), false)
}

// Info sends an info message in format "i [prefix] | message".
func (c *Cliasi) Info(message string, opts ...Option) {
	s := resolve(opPrint, "Info", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	c.print(tint(c.pal.info), "i", message, s.oneLineOr(c.oneLine), false)
}

// Log sends a log message in format "LOG [prefix] | message".
func (c *Cliasi) Log(message string, opts ...Option) {
	s := resolve(opPrint, "Log", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	c.print(tint(c.pal.neutral), "LOG", message, s.oneLineOr(c.oneLine), false)
}

// LogSmall sends a compact log message in format "L [prefix] | message".
func (c *Cliasi) LogSmall(message string, opts ...Option) {
	s := resolve(opPrint, "LogSmall", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	c.print(tint(c.pal.neutral), "L", message, s.oneLineOr(c.oneLine), false)
}

// List sends a list-style message in format "- [prefix] | message".
func (c *Cliasi) List(message string, opts ...Option) {
	s := resolve(opPrint, "List", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	c.print(tint(c.pal.info), "-", message, s.oneLineOr(c.oneLine), false)
}

// Plain sends a message with no level symbol: "[prefix] | message".
func (c *Cliasi) Plain(message string, opts ...Option) {
	s := resolve(opPrint, "Plain", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	c.print(tint(c.pal.info), "", message, s.oneLineOr(c.oneLine), false)
}

// Warn sends a warning in format "! [prefix] | message", body colored.
func (c *Cliasi) Warn(message string, opts ...Option) {
	s := resolve(opPrint, "Warn", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	c.print(tint(c.pal.warn), "!", message, s.oneLineOr(c.oneLine), true)
}

// Fail sends a failure in format "X [prefix] | message", body colored.
func (c *Cliasi) Fail(message string, opts ...Option) {
	s := resolve(opPrint, "Fail", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	c.print(tint(c.pal.fail), "X", message, s.oneLineOr(c.oneLine), true)
}

// Success sends a success line in format "✔ [prefix] | message", body
// colored.
func (c *Cliasi) Success(message string, opts ...Option) {
	s := resolve(opPrint, "Success", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	c.print(tint(c.pal.success), "✔", message, s.oneLineOr(c.oneLine), true)
}

// ── Prompt ───────────────────────────────────────────────────────────────

// Ask prompts in format "? [prefix] | question" and reads one input line.
// With [HideInput] the answer is read without echo. In one-line mode the
// consumed prompt line is erased after the answer is read.
func (c *Cliasi) Ask(question string, opts ...Option) (string, error) {
	s := resolve(opAsk, "Ask", opts)

	col := c.pal.ask
	if s.hideInput {
		col = c.pal.askHidden
	}
	c.print(tint(col), "?", question, true, false)

	var answer string
	var err error
	if s.hideInput {
		answer, err = c.term.ReadPassword()
	} else {
		answer, err = c.term.ReadLine()
	}
	if err != nil {
		return "", wrapReadInput(err)
	}

	if s.oneLineOr(c.oneLine) {
		c.term.CursorUp(1)
		c.term.ClearLine()
	}
	return answer, nil
}

// ── Static progress bars ─────────────────────────────────────────────────

// barBody lays out the bracketed bar for the current terminal width.
func (c *Cliasi) barBody(message, symbol string, progress int, showPercent bool) string {
	overhead := runewidth.StringWidth(symbol) +
		runewidth.StringWidth(c.bracketedPrefix()) +
		runewidth.StringWidth(c.separator) + 3
	if showPercent {
		overhead += len(layout.PercentSuffix(progress))
	}
	return layout.FormatBar(message, progress, showPercent, c.term.Width(), overhead)
}

// Progressbar renders a progress bar once. Re-invoke with [Inline] to
// animate it manually.
func (c *Cliasi) Progressbar(message string, progress int, opts ...Option) {
	s := resolve(opBar, "Progressbar", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	body := c.barBody(message, "#", progress, s.showPercent)
	c.print(tint(c.pal.bar), "#", body, s.oneLineOr(false), true)
}

// ProgressbarDownload renders a download-styled progress bar once.
func (c *Cliasi) ProgressbarDownload(message string, progress int, opts ...Option) {
	s := resolve(opBar, "ProgressbarDownload", opts)
	if c.suppressed(s.verbosity) {
		return
	}
	body := c.barBody(message, "⤓", progress, s.showPercent)
	c.print(tint(c.pal.download), "⤓", body, s.oneLineOr(false), true)
}

// ── Blocking animation ───────────────────────────────────────────────────

// AnimateBlocking renders a spinner on the caller's goroutine for the
// given duration, then finishes with a success line.
func (c *Cliasi) AnimateBlocking(message string, d time.Duration, opts ...Option) {
	s := resolve(opAnimate, "AnimateBlocking", opts)
	if c.suppressed(s.verbosity) {
		time.Sleep(d)
		return
	}

	symbols, anim := c.pickStyles()
	remaining := d
	for frame := 0; remaining > 0; frame++ {
		col := tint(c.pal.spinner)
		if s.unicorn && c.pal.enabled {
			col = unicornTint(frame)
		}
		c.print(col, symbols[frame%len(symbols)], anim.frameAt(frame)+" "+message, true, false)

		remaining -= s.interval
		if remaining < s.interval {
			break
		}
		time.Sleep(s.interval)
	}
	if remaining > 0 {
		time.Sleep(remaining)
	}

	c.print(tint(c.pal.success), "✔", message, s.oneLineOr(c.oneLine), true)
}

// pickStyles selects a spinner glyph set and a main animation using the
// injected random source.
func (c *Cliasi) pickStyles() ([]string, animation) {
	c.randMu.Lock()
	defer c.randMu.Unlock()
	return pickSpinner(c.rng), pickAnimation(c.rng)
}
