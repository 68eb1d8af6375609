//go:build linux && !tinygo

// display_backend_piglow.go - PiGlow (SN3218) output over I2C

package main

import (
	"sync"
	"time"

	"golang.org/x/exp/io/i2c"
)

// SN3218 register map.
const (
	sn3218Addr         = 0x54
	sn3218RegEnable    = 0x00
	sn3218RegFirstLED  = 0x01 // 18 PWM registers follow
	sn3218RegBank      = 0x13 // 3 enable bank registers follow
	sn3218RegUpdate    = 0x16
	sn3218RegReset     = 0x17
	sn3218ChannelCount = 18
)

// PiGlowDisplay drives a PiGlow board. The twelve matrix LEDs map onto
// channels 0-11 and the accent triple onto channels 12-14; the remaining
// three channels stay dark.
type PiGlowDisplay struct {
	mutex   sync.Mutex
	dev     *i2c.Device
	source  FrameSource
	started bool
	done    chan struct{}
}

func NewPiGlowDisplay() (*PiGlowDisplay, error) {
	dev, err := i2c.Open(&i2c.Devfs{Dev: "/dev/i2c-1"}, sn3218Addr)
	if err != nil {
		return nil, &DisplayError{Operation: "create", Details: "opening /dev/i2c-1", Err: err}
	}
	d := &PiGlowDisplay{dev: dev}
	if err := d.resetChip(); err != nil {
		dev.Close()
		return nil, err
	}
	return d, nil
}

func (d *PiGlowDisplay) resetChip() error {
	writes := []struct {
		reg  byte
		data []byte
	}{
		{sn3218RegReset, []byte{0xFF}},
		{sn3218RegEnable, []byte{0x01}},
		{sn3218RegBank, []byte{0x3F, 0x3F, 0x3F}},
	}
	for _, w := range writes {
		if err := d.dev.WriteReg(w.reg, w.data); err != nil {
			return &DisplayError{Operation: "reset", Details: "writing SN3218 register", Err: err}
		}
	}
	return nil
}

func (d *PiGlowDisplay) Start(source FrameSource) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.started {
		return &DisplayError{Operation: "start", Details: "already started"}
	}
	d.source = source
	d.started = true
	d.done = make(chan struct{})
	go d.refreshLoop()
	return nil
}

func (d *PiGlowDisplay) Stop() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if !d.started {
		return nil
	}
	d.started = false
	close(d.done)
	var dark [sn3218ChannelCount]byte
	d.dev.WriteReg(sn3218RegFirstLED, dark[:])
	d.dev.WriteReg(sn3218RegUpdate, []byte{0xFF})
	return d.dev.Close()
}

func (d *PiGlowDisplay) IsStarted() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.started
}

func (d *PiGlowDisplay) ButtonHeld() bool { return false }

func (d *PiGlowDisplay) Events() <-chan DisplayEvent { return nil }

func (d *PiGlowDisplay) refreshLoop() {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-d.done:
			return
		case <-ticker.C:
			d.refresh()
		}
	}
}

func (d *PiGlowDisplay) refresh() {
	leds := d.source.LEDSnapshot()
	rgb := d.source.AccentSnapshot()

	var pwm [sn3218ChannelCount]byte
	for i, v := range leds {
		pwm[i] = piglowGamma[v]
	}
	for i, v := range rgb {
		pwm[MatrixLEDs+i] = piglowGamma[v]
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()
	if !d.started {
		return
	}
	if err := d.dev.WriteReg(sn3218RegFirstLED, pwm[:]); err != nil {
		return
	}
	d.dev.WriteReg(sn3218RegUpdate, []byte{0xFF})
}
