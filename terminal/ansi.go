// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package terminal

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ANSI control sequences
const (
	ansiClearLine = "\r\033[2K\r"
	ansiCursorUp  = "\033[%dA"
)

// ANSITerminal renders to stdout and reads from stdin.
type ANSITerminal struct {
	out io.Writer
	in  *bufio.Reader

	isTTY   bool
	ttyOnce sync.Once

	widthWarn sync.Once
}

func NewANSI() *ANSITerminal {
	return &ANSITerminal{
		out: os.Stdout,
		in:  bufio.NewReader(os.Stdin),
	}
}

func (t *ANSITerminal) Print(text string) {
	fmt.Fprint(t.out, text)
}

func (t *ANSITerminal) ClearLine() {
	fmt.Fprint(t.out, ansiClearLine)
}

func (t *ANSITerminal) CursorUp(n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(t.out, ansiCursorUp, n)
}

// Width queries the terminal size once per call so window resizes are
// picked up between frames. The fallback diagnostic is logged once.
func (t *ANSITerminal) Width() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		t.widthWarn.Do(func() {
			slog.Warn("could not retrieve terminal size, using fallback",
				"fallback", DefaultWidth, "error", err)
		})
		return DefaultWidth
	}
	return cols
}

func (t *ANSITerminal) IsTTY() bool {
	t.ttyOnce.Do(func() {
		t.isTTY = t.checkTTY()
	})
	return t.isTTY
}

func (t *ANSITerminal) checkTTY() bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func (t *ANSITerminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword reads without echo. The terminal stays in raw mode while
// reading, so the user's newline is not echoed either; emit it here to
// keep the cursor math identical to the echoing path.
func (t *ANSITerminal) ReadPassword() (string, error) {
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	t.Print("\n")
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
