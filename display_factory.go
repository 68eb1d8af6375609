//go:build !tinygo

// display_factory.go - Backend construction for hosted builds

package main

import (
	"fmt"
)

// NewDisplayOutput creates the requested backend.
func NewDisplayOutput(backend int) (DisplayOutput, error) {
	switch backend {
	case DISPLAY_BACKEND_EBITEN:
		return NewEbitenDisplay()
	case DISPLAY_BACKEND_TERMINAL:
		return NewTerminalDisplay()
	case DISPLAY_BACKEND_HEADLESS:
		return NewHeadlessDisplay(), nil
	case DISPLAY_BACKEND_PIGLOW:
		return NewPiGlowDisplay()
	default:
		return nil, &DisplayError{
			Operation: "create",
			Details:   fmt.Sprintf("unknown backend %d", backend),
		}
	}
}
