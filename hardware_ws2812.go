//go:build tinygo

// hardware_ws2812.go - WS2812 strip output and GPIO button on microcontroller targets

package main

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ws2812"
)

// WS2812Display drives a strip of thirteen WS2812 pixels: the twelve
// matrix positions followed by the accent pixel. The button is a GPIO
// with pullup, closed to ground when pressed.
type WS2812Display struct {
	strip   ws2812.Device
	button  machine.Pin
	source  FrameSource
	started bool
	done    chan struct{}
}

func NewWS2812Display(dataPin, buttonPin machine.Pin) *WS2812Display {
	dataPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	buttonPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &WS2812Display{
		strip:  ws2812.New(dataPin),
		button: buttonPin,
	}
}

func (d *WS2812Display) Start(source FrameSource) error {
	d.source = source
	d.started = true
	d.done = make(chan struct{})
	go d.refreshLoop()
	return nil
}

func (d *WS2812Display) Stop() error {
	if d.started {
		d.started = false
		close(d.done)
	}
	return nil
}

func (d *WS2812Display) IsStarted() bool { return d.started }

// ButtonHeld reads the pin directly; debouncing is the Button machine's
// job.
func (d *WS2812Display) ButtonHeld() bool {
	return !d.button.Get() // active low
}

func (d *WS2812Display) Events() <-chan DisplayEvent { return nil }

func (d *WS2812Display) refreshLoop() {
	for {
		select {
		case <-d.done:
			return
		default:
		}
		d.refresh()
		time.Sleep(20 * time.Millisecond)
	}
}

func (d *WS2812Display) refresh() {
	leds := d.source.LEDSnapshot()
	rgb := d.source.AccentSnapshot()

	pixels := make([]color.RGBA, MatrixLEDs+1)
	for i, v := range leds {
		lum := piglowGamma[v]
		pixels[i] = color.RGBA{R: lum, G: uint8(int(lum) * 230 / 255), B: uint8(int(lum) * 130 / 255)}
	}
	pixels[MatrixLEDs] = color.RGBA{
		R: piglowGamma[rgb[0]],
		G: piglowGamma[rgb[1]],
		B: piglowGamma[rgb[2]],
	}
	d.strip.WriteColors(pixels)
}
