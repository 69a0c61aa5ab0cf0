// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package cliasi

import (
	"sync"
	"time"

	"github.com/fatih/color"
)

// Task is the handle for a running background animation. Animate and the
// animated progress bar constructors always return a usable Task — when
// the animation is verbosity-suppressed the returned handle is a no-op,
// so callers never branch on nil.
type Task interface {
	// Update overwrites the given fields and forces an immediate
	// re-render at the current frame. Fields not passed keep their
	// value.
	Update(updates ...Update)
	// Stop cancels the animation and blocks until the background
	// goroutine has exited; no frame is written after Stop returns.
	// Calling Stop again is a no-op.
	Stop()
}

// Update is one field change for Task.Update.
type Update struct {
	apply func(*taskState)
}

// Message replaces the displayed message. An empty string is ignored, so
// a message is never cleared by accident.
func Message(message string) Update {
	return Update{apply: func(st *taskState) {
		if message != "" {
			st.message = message
		}
	}}
}

// Progress replaces the displayed progress. Spinner-only tasks ignore it.
func Progress(progress int) Update {
	return Update{apply: func(st *taskState) {
		st.progress = progress
	}}
}

// taskState is the mutable display state shared between the caller (via
// Update) and the render loop. Always accessed under the task mutex.
type taskState struct {
	message  string
	progress int
	frame    int
}

type task struct {
	mu      sync.Mutex
	state   taskState
	stopped bool

	// render composes and writes one frame from the given state.
	// Called only with mu held, which serializes tick renders against
	// caller-forced renders: once Update has written a field, every
	// later render observes it (last writer wins).
	render func(st taskState)

	oneLine bool
	newline func()

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newTask(message string, progress int, oneLine bool, newline func()) *task {
	return &task{
		state:   taskState{message: message, progress: progress},
		oneLine: oneLine,
		newline: newline,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start launches the render loop. The first frame is drawn immediately;
// afterwards one frame per tick until stopped. The wait is interruptible,
// so Stop never has to sit out a full interval.
func (t *task) start(interval time.Duration) {
	go func() {
		defer close(t.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			t.mu.Lock()
			t.render(t.state)
			t.state.frame++
			t.mu.Unlock()

			select {
			case <-t.stop:
				return
			case <-ticker.C:
			}
		}
	}()
}

func (t *task) Update(updates ...Update) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// The handle is dead once Stop has begun; a late Update must not
	// write to the terminal again. Checked under mu so an Update racing
	// a concurrent Stop cannot render after Stop returns.
	if t.stopped {
		return
	}
	for _, u := range updates {
		u.apply(&t.state)
	}
	// Forced render at the current frame index; the index only advances
	// on ticks so an update does not speed up the animation.
	t.render(t.state)
}

func (t *task) Stop() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		t.stopped = true
		t.mu.Unlock()
		close(t.stop)
		<-t.done
		if !t.oneLine {
			t.newline()
		}
	})
}

// noopTask is returned for verbosity-suppressed animations. It writes
// nothing and tolerates any Update/Stop sequence.
type noopTask struct{}

func (noopTask) Update(updates ...Update) {}
func (noopTask) Stop()                    {}

// ── Background animation constructors ────────────────────────────────────

// Animate starts a non-blocking spinner. Stop it through the returned
// Task; update the message with Task.Update(Message(...)).
func (c *Cliasi) Animate(message string, opts ...Option) Task {
	s := resolve(opAnimate, "Animate", opts)
	if c.suppressed(s.verbosity) {
		return noopTask{}
	}
	symbols, anim := c.pickStyles()
	return c.startSpinner(message, symbols, anim, c.pal.spinner, s)
}

// AnimateDownload starts a non-blocking download animation.
func (c *Cliasi) AnimateDownload(message string, opts ...Option) Task {
	s := resolve(opAnimate, "AnimateDownload", opts)
	if c.suppressed(s.verbosity) {
		return noopTask{}
	}
	c.randMu.Lock()
	symbols := pickDownload(c.rng)
	anim := pickAnimation(c.rng)
	c.randMu.Unlock()
	return c.startSpinner(message, symbols, anim, c.pal.download, s)
}

func (c *Cliasi) startSpinner(message string, symbols []string, anim animation, col *color.Color, s settings) Task {
	t := newTask(message, 0, s.oneLineOr(c.oneLine), c.Newline)
	t.render = func(st taskState) {
		tintFn := tint(col)
		if s.unicorn && c.pal.enabled {
			tintFn = unicornTint(st.frame)
		}
		body := anim.frameAt(st.frame) + " " + st.message
		c.print(tintFn, symbols[st.frame%len(symbols)], body, true, false)
	}
	t.start(s.interval)
	return t
}

// AnimatedProgressbar starts a non-blocking animated progress bar.
// Update progress and message through the returned Task.
func (c *Cliasi) AnimatedProgressbar(message string, progress int, opts ...Option) Task {
	s := resolve(opBar|opAnimate, "AnimatedProgressbar", opts)
	if c.suppressed(s.verbosity) {
		return noopTask{}
	}
	c.randMu.Lock()
	symbols := pickSpinner(c.rng)
	c.randMu.Unlock()
	return c.startBar(message, progress, symbols, c.pal.bar, s)
}

// AnimatedProgressbarDownload starts a non-blocking animated download bar.
func (c *Cliasi) AnimatedProgressbarDownload(message string, progress int, opts ...Option) Task {
	s := resolve(opBar|opAnimate, "AnimatedProgressbarDownload", opts)
	if c.suppressed(s.verbosity) {
		return noopTask{}
	}
	c.randMu.Lock()
	symbols := pickDownload(c.rng)
	c.randMu.Unlock()
	return c.startBar(message, progress, symbols, c.pal.download, s)
}

func (c *Cliasi) startBar(message string, progress int, symbols []string, col *color.Color, s settings) Task {
	t := newTask(message, progress, s.oneLineOr(false), c.Newline)
	t.render = func(st taskState) {
		tintFn := tint(col)
		if s.unicorn && c.pal.enabled {
			tintFn = unicornTint(st.frame)
		}
		symbol := symbols[st.frame%len(symbols)]
		body := c.barBody(st.message, symbol, st.progress, s.showPercent)
		c.print(tintFn, symbol, body, true, true)
	}
	t.start(s.interval)
	return t
}
