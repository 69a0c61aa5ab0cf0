// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package cliasi

import (
	"math/rand"
	"time"

	"github.com/dotandev/cliasi/terminal"
)

// DefaultInterval is the delay between animation frames unless overridden
// with [Interval].
const DefaultInterval = 250 * time.Millisecond

// opClass marks which operations an option may be passed to. Passing an
// option to an operation outside its class is a programming error and
// panics at call time rather than silently degrading.
type opClass uint8

const (
	opNew opClass = 1 << iota
	opPrint
	opAsk
	opBar
	opAnimate
)

type settings struct {
	// per-call
	verbosity   int
	oneLine     *bool
	showPercent bool
	hideInput   bool
	unicorn     bool
	interval    time.Duration

	// construction
	instOneLine  bool
	colors       bool
	verboseLevel int
	separator    string
	term         terminal.Terminal
	rng          *rand.Rand
}

// Option configures either a [Cliasi] instance (the With* options) or a
// single call (the rest). Options validate the operation they are applied
// to; see [ErrUnsupportedOption].
type Option struct {
	name  string
	ops   opClass
	apply func(*settings)
}

func resolve(op opClass, operation string, opts []Option) settings {
	s := settings{
		colors:    true,
		separator: "|",
		interval:  DefaultInterval,
	}
	for _, o := range opts {
		if o.ops&op == 0 {
			panic(wrapUnsupportedOption(o.name, operation))
		}
		o.apply(&s)
	}
	return s
}

// oneLineOr resolves the effective one-line mode for a call: an explicit
// Inline/Multiline wins, otherwise the operation's default applies.
func (s settings) oneLineOr(def bool) bool {
	if s.oneLine != nil {
		return *s.oneLine
	}
	return def
}

// ── Construction options ─────────────────────────────────────────────────

// WithOneLine makes messages overwrite the current line by default instead
// of appending new lines.
func WithOneLine() Option {
	return Option{name: "WithOneLine", ops: opNew, apply: func(s *settings) {
		s.instOneLine = true
	}}
}

// WithoutColors disables ANSI colors for this instance regardless of TTY
// detection.
func WithoutColors() Option {
	return Option{name: "WithoutColors", ops: opNew, apply: func(s *settings) {
		s.colors = false
	}}
}

// WithVerboseLevel sets the highest message verbosity this instance still
// displays. Messages sent with a higher [Verbosity] are suppressed.
func WithVerboseLevel(level int) Option {
	return Option{name: "WithVerboseLevel", ops: opNew, apply: func(s *settings) {
		s.verboseLevel = level
	}}
}

// WithSeparator replaces the default "|" between prefix and message.
func WithSeparator(separator string) Option {
	return Option{name: "WithSeparator", ops: opNew, apply: func(s *settings) {
		s.separator = separator
	}}
}

// WithTerminal replaces the output terminal, e.g. with a
// [terminal.MockTerminal] in tests.
func WithTerminal(t terminal.Terminal) Option {
	return Option{name: "WithTerminal", ops: opNew, apply: func(s *settings) {
		s.term = t
	}}
}

// WithRand injects the random source used to pick spinner and animation
// styles, so tests can pin the selection.
func WithRand(rng *rand.Rand) Option {
	return Option{name: "WithRand", ops: opNew, apply: func(s *settings) {
		s.rng = rng
	}}
}

// ── Per-call options ─────────────────────────────────────────────────────

// Verbosity tags a message or animation with a verbosity level. Levels
// above the instance threshold are suppressed.
func Verbosity(level int) Option {
	return Option{name: "Verbosity", ops: opPrint | opBar | opAnimate, apply: func(s *settings) {
		s.verbosity = level
	}}
}

// Inline forces this call to stay on the current line.
func Inline() Option {
	return Option{name: "Inline", ops: opPrint | opAsk | opBar | opAnimate, apply: func(s *settings) {
		v := true
		s.oneLine = &v
	}}
}

// Multiline forces this call to terminate its line.
func Multiline() Option {
	return Option{name: "Multiline", ops: opPrint | opAsk | opBar | opAnimate, apply: func(s *settings) {
		v := false
		s.oneLine = &v
	}}
}

// ShowPercent appends the numeric percentage after a progress bar.
func ShowPercent() Option {
	return Option{name: "ShowPercent", ops: opBar, apply: func(s *settings) {
		s.showPercent = true
	}}
}

// HideInput makes Ask read the answer without echoing it.
func HideInput() Option {
	return Option{name: "HideInput", ops: opAsk, apply: func(s *settings) {
		s.hideInput = true
	}}
}

// Unicorn cycles the frame color through a rainbow. Inert when colors
// are disabled.
func Unicorn() Option {
	return Option{name: "Unicorn", ops: opAnimate, apply: func(s *settings) {
		s.unicorn = true
	}}
}

// Interval sets the delay between animation frames.
func Interval(d time.Duration) Option {
	return Option{name: "Interval", ops: opAnimate, apply: func(s *settings) {
		if d > 0 {
			s.interval = d
		}
	}}
}
