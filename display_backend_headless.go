// display_backend_headless.go - Null display for tests and benchmarks

package main

// HeadlessDisplay discards every frame. It exists so the firmware loop,
// tests and benchmarks can run without a window, terminal or I2C bus.
type HeadlessDisplay struct {
	source  FrameSource
	started bool
}

func NewHeadlessDisplay() *HeadlessDisplay {
	return &HeadlessDisplay{}
}

func (d *HeadlessDisplay) Start(source FrameSource) error {
	d.source = source
	d.started = true
	return nil
}

func (d *HeadlessDisplay) Stop() error {
	d.started = false
	return nil
}

func (d *HeadlessDisplay) IsStarted() bool { return d.started }

func (d *HeadlessDisplay) ButtonHeld() bool { return false }

func (d *HeadlessDisplay) Events() <-chan DisplayEvent { return nil }
