// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package terminal

import (
	"io"
	"strings"
	"sync"
)

// MockTerminal records every write and serves scripted input. It is safe
// for concurrent use so background animation goroutines can render while
// a test inspects the output.
type MockTerminal struct {
	mu     sync.Mutex
	writes []string
	inputs []string

	// FixedWidth is the width reported by Width. Zero means DefaultWidth.
	FixedWidth int
	// TTY toggles colored output. Off by default so tests assert on
	// plain text.
	TTY bool
}

func NewMock() *MockTerminal {
	return &MockTerminal{}
}

// Feed queues input lines for ReadLine and ReadPassword.
func (m *MockTerminal) Feed(lines ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, lines...)
}

func (m *MockTerminal) Print(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, text)
}

func (m *MockTerminal) ClearLine() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, "[clear]")
}

func (m *MockTerminal) CursorUp(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, "[up]")
}

func (m *MockTerminal) Width() int {
	if m.FixedWidth > 0 {
		return m.FixedWidth
	}
	return DefaultWidth
}

func (m *MockTerminal) IsTTY() bool {
	return m.TTY
}

func (m *MockTerminal) ReadLine() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.inputs) == 0 {
		return "", io.EOF
	}
	line := m.inputs[0]
	m.inputs = m.inputs[1:]
	return line, nil
}

func (m *MockTerminal) ReadPassword() (string, error) {
	return m.ReadLine()
}

// Writes returns a snapshot of everything recorded so far.
func (m *MockTerminal) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.writes))
	copy(out, m.writes)
	return out
}

// Output returns all recorded writes joined together.
func (m *MockTerminal) Output() string {
	return strings.Join(m.Writes(), "")
}

// LastWrite returns the most recent write, or "".
func (m *MockTerminal) LastWrite() string {
	w := m.Writes()
	if len(w) == 0 {
		return ""
	}
	return w[len(w)-1]
}

// Reset discards recorded output.
func (m *MockTerminal) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = m.writes[:0]
}
