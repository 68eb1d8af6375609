//go:build !linux || tinygo

// display_backend_piglow_stub.go - PiGlow placeholder for non-Linux hosts

package main

// PiGlowDisplay needs the Linux I2C device interface.
type PiGlowDisplay struct{}

func NewPiGlowDisplay() (*PiGlowDisplay, error) {
	return nil, &DisplayError{Operation: "create", Details: "piglow backend requires linux"}
}

func (d *PiGlowDisplay) Start(source FrameSource) error {
	return &DisplayError{Operation: "start", Details: "piglow backend requires linux"}
}

func (d *PiGlowDisplay) Stop() error                 { return nil }
func (d *PiGlowDisplay) IsStarted() bool             { return false }
func (d *PiGlowDisplay) ButtonHeld() bool            { return false }
func (d *PiGlowDisplay) Events() <-chan DisplayEvent { return nil }
