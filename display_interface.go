// display_interface.go - Output backend interface for the ornament LEDs

package main

import (
	"fmt"
)

// DisplayError carries context for display backend failures.
type DisplayError struct {
	Operation string // what was being attempted
	Details   string // additional error context
	Err       error  // underlying error if any
}

func (e *DisplayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("display %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("display %s failed: %s", e.Operation, e.Details)
}

func (e *DisplayError) Unwrap() error { return e.Err }

// FrameSource supplies the current brightness state to a backend. The
// animation engine satisfies it directly.
type FrameSource interface {
	LEDSnapshot() [MatrixLEDs]uint8
	AccentSnapshot() [AccentColors]uint8
}

// DisplayEvent is a discrete input gesture reported by an interactive
// backend.
type DisplayEvent int

const (
	EventNone DisplayEvent = iota
	EventPairing
	EventBattery
	EventQuit
)

// DisplayOutput is the minimal contract every output backend implements.
// Start begins rendering frames pulled from source; backends that also
// take input report gestures on Events and expose the momentary button
// state through ButtonHeld.
type DisplayOutput interface {
	Start(source FrameSource) error
	Stop() error
	IsStarted() bool

	// ButtonHeld reports whether the user button is currently pressed.
	// Non-interactive backends always return false.
	ButtonHeld() bool

	// Events returns the gesture channel, or nil for non-interactive
	// backends.
	Events() <-chan DisplayEvent
}

// Display backend selectors.
const (
	DISPLAY_BACKEND_EBITEN   = iota // windowed, pure Go
	DISPLAY_BACKEND_TERMINAL        // ANSI rendering in the controlling terminal
	DISPLAY_BACKEND_HEADLESS        // no output, tests and benchmarks
	DISPLAY_BACKEND_PIGLOW          // PiGlow board over I2C
)
