// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package cliasi

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/cliasi/terminal"
)

// waitFor polls until cond is true or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestAnimateRendersFrames(t *testing.T) {
	c, mock := newTest(t)
	task := c.Animate("Working", Interval(10*time.Millisecond))
	defer task.Stop()

	waitFor(t, time.Second, func() bool {
		return strings.Contains(mock.Output(), "Working")
	})
}

func TestUpdateForcesImmediateRender(t *testing.T) {
	c, mock := newTest(t)
	// Interval long enough that only Update triggers renders after the
	// initial frame.
	task := c.Animate("before", Interval(time.Hour))
	defer task.Stop()

	waitFor(t, time.Second, func() bool {
		return strings.Contains(mock.Output(), "before")
	})

	task.Update(Message("after"))
	assert.Contains(t, mock.LastWrite(), "after",
		"forced render must show the new message without waiting for a tick")
}

func TestUpdateKeepsAbsentFields(t *testing.T) {
	c, mock := newTest(t)
	task := c.AnimatedProgressbar("keep me", 25, Interval(time.Hour), ShowPercent())
	defer task.Stop()

	task.Update(Progress(75))
	last := mock.LastWrite()
	assert.Contains(t, last, "keep me", "message survives a progress-only update")
	assert.Contains(t, last, "75%")

	task.Update(Message(""))
	assert.Contains(t, mock.LastWrite(), "keep me", "empty message never clears")
}

func TestStopJoinsAndSilences(t *testing.T) {
	c, mock := newTest(t)
	interval := 10 * time.Millisecond
	task := c.Animate("spin", Interval(interval))

	time.Sleep(25 * time.Millisecond)
	task.Stop()

	frames := len(mock.Writes())
	require.Greater(t, frames, 0)

	// No frame may be written after Stop returns.
	time.Sleep(5 * interval)
	assert.Equal(t, frames, len(mock.Writes()))
}

func TestStopIsIdempotent(t *testing.T) {
	c, mock := newTest(t)
	task := c.Animate("spin", Interval(10*time.Millisecond))

	time.Sleep(15 * time.Millisecond)
	task.Stop()
	after := mock.Writes()
	task.Stop()
	task.Stop()

	assert.Equal(t, after, mock.Writes(), "repeated Stop changes nothing")

	newlines := 0
	for _, w := range after {
		if w == "\n" {
			newlines++
		}
	}
	assert.Equal(t, 1, newlines, "exactly one trailing newline")
}

func TestStopOneLineModeOmitsNewline(t *testing.T) {
	c, mock := newTest(t, WithOneLine())
	task := c.Animate("spin", Interval(10*time.Millisecond))
	time.Sleep(15 * time.Millisecond)
	task.Stop()

	assert.NotContains(t, mock.Writes(), "\n")
}

func TestUpdateAfterStopIsIgnored(t *testing.T) {
	c, mock := newTest(t)
	task := c.Animate("spin", Interval(10*time.Millisecond))
	time.Sleep(15 * time.Millisecond)
	task.Stop()

	before := len(mock.Writes())
	task.Update(Message("ghost"))
	assert.Equal(t, before, len(mock.Writes()))
	assert.NotContains(t, mock.Output(), "ghost")
}

func TestUnicornInertWhenColorsDisabled(t *testing.T) {
	c, mock := newTest(t)
	task := c.Animate("quiet colors", Unicorn(), Interval(10*time.Millisecond))

	waitFor(t, time.Second, func() bool {
		return strings.Contains(mock.Output(), "quiet colors")
	})
	task.Stop()

	assert.NotContains(t, mock.Output(), "\x1b[",
		"no escape sequences may reach a color-disabled sink")
}

func TestUnicornEmitsRainbowOnTTY(t *testing.T) {
	mock := terminal.NewMock()
	mock.FixedWidth = 40
	mock.TTY = true
	c := New("TEST", WithTerminal(mock), WithRand(rand.New(rand.NewSource(1))))

	task := c.Animate("rainbow", Unicorn(), Interval(10*time.Millisecond))
	waitFor(t, time.Second, func() bool {
		return strings.Contains(mock.Output(), "rainbow")
	})
	task.Stop()

	assert.Contains(t, mock.Output(), "\x1b[38;2;", "24-bit rainbow codes expected")
}

func TestUpdateRacingStopNeverRendersAfterStop(t *testing.T) {
	c, mock := newTest(t)
	task := c.Animate("race", Interval(time.Millisecond))

	quit := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		for {
			select {
			case <-quit:
				return
			default:
				task.Update(Message("racer"))
			}
		}
	}()

	time.Sleep(5 * time.Millisecond)
	task.Stop()
	after := len(mock.Writes())

	// The updater keeps hammering; none of its calls may write anymore.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, len(mock.Writes()))

	close(quit)
	<-exited
}

func TestFrameCountBounds(t *testing.T) {
	c, mock := newTest(t)
	interval := 20 * time.Millisecond
	task := c.Animate("tick", Interval(interval))

	time.Sleep(2 * interval)
	task.Stop()

	frames := 0
	for _, w := range mock.Writes() {
		if w == "[clear]" {
			frames++
		}
	}
	assert.GreaterOrEqual(t, frames, 1)
	assert.LessOrEqual(t, frames, 8, "runaway render loop")
}

func TestSuppressedTaskIsFullyInert(t *testing.T) {
	c, mock := newTest(t)
	task := c.Animate("quiet", Verbosity(5), Interval(time.Millisecond))
	require.NotNil(t, task)

	task.Update(Message("still quiet"), Progress(50))
	task.Stop()
	task.Stop()
	task.Update(Message("after stop"))

	time.Sleep(10 * time.Millisecond)
	assert.Empty(t, mock.Writes(), "suppressed task must never write")
}

func TestAnimatedProgressbarUpdatesPercent(t *testing.T) {
	c, mock := newTest(t)
	task := c.AnimatedProgressbar("dl", 42, Interval(time.Hour), ShowPercent())
	defer task.Stop()

	waitFor(t, time.Second, func() bool {
		return strings.Contains(mock.Output(), "42%")
	})

	task.Update(Progress(77))
	assert.Contains(t, mock.LastWrite(), "77%")

	task.Update(Progress(2000))
	assert.Contains(t, mock.LastWrite(), "100%")

	task.Update(Progress(-3))
	assert.Contains(t, mock.LastWrite(), " 0%")
}

func TestSpinnerIgnoresProgressUpdates(t *testing.T) {
	c, mock := newTest(t)
	task := c.Animate("steady", Interval(time.Hour))
	defer task.Stop()

	waitFor(t, time.Second, func() bool {
		return strings.Contains(mock.Output(), "steady")
	})

	task.Update(Progress(50))
	assert.Contains(t, mock.LastWrite(), "steady")
	assert.NotContains(t, mock.LastWrite(), "50")
}

func TestAnimatedProgressbarDownloadRenders(t *testing.T) {
	c, mock := newTest(t)
	task := c.AnimatedProgressbarDownload("fetch", 10, Interval(time.Hour))
	defer task.Stop()

	waitFor(t, time.Second, func() bool {
		return strings.Contains(mock.Output(), "fetch")
	})
}

func TestAnimateDownloadRenders(t *testing.T) {
	c, mock := newTest(t)
	task := c.AnimateDownload("pulling", Interval(10*time.Millisecond))

	waitFor(t, time.Second, func() bool {
		return strings.Contains(mock.Output(), "pulling")
	})
	task.Stop()
}

func TestConcurrentUpdatesDoNotRace(t *testing.T) {
	c, _ := newTest(t)
	task := c.AnimatedProgressbar("racing", 0, Interval(time.Millisecond))

	done := make(chan struct{})
	go func() {
		for p := 0; p <= 100; p++ {
			task.Update(Progress(p))
		}
		close(done)
	}()
	<-done
	task.Stop()
}
