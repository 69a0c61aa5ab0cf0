// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package cliasi

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrUnsupportedOption = errors.New("unsupported option")
	ErrReadInput         = errors.New("failed to read input")
)

func wrapUnsupportedOption(option, operation string) error {
	return fmt.Errorf("%w: %s is not valid for %s", ErrUnsupportedOption, option, operation)
}

func wrapReadInput(err error) error {
	return fmt.Errorf("%w: %w", ErrReadInput, err)
}
