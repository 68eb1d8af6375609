// battery_gauge.go - Battery voltage to LED gauge conversion

package main

import (
	"math"
)

// Battery discharge model of a CR2032 coin cell. The cell sags to about
// 2.8V as soon as the LEDs load it, so that is treated as full; below
// 2.0V the LEDs are barely visible, so that is empty. The gauge has
// seven levels, shown symmetrically from both ends of the matrix plus a
// red accent tick above level six.
const (
	batteryFullVolts  = 2.8
	batteryEmptyVolts = 2.0
	batteryLevels     = 7
)

// BatteryChargeLevel converts a cell voltage to a gauge level in [0,7].
func BatteryChargeLevel(volts float64) uint8 {
	level := math.Floor(batteryLevels*(volts-batteryEmptyVolts)/(batteryFullVolts-batteryEmptyVolts) + 0.5)
	if level < 0 {
		return 0
	}
	if level > batteryLevels {
		return batteryLevels
	}
	return uint8(level)
}

// RenderBatteryGauge produces the matrix and accent vectors for a charge
// level. LEDs fill pairwise from both ends toward the middle; a level past
// the six matrix pairs lights the red accent element.
func RenderBatteryGauge(level uint8) (leds [MatrixLEDs]uint8, rgb [AccentColors]uint8) {
	for i := 0; i < MatrixLEDs/2; i++ {
		if level >= uint8(i) {
			leds[i] = MaxBrightness
			leds[MatrixLEDs-i-1] = MaxBrightness
		}
	}
	if level > MatrixLEDs/2 {
		rgb[0] = MaxBrightness
	}
	return leds, rgb
}

// BatteryGauge is a FrameSource showing a fixed gauge frame. The main loop
// swaps it in front of the display while the gauge is being shown.
type BatteryGauge struct {
	leds [MatrixLEDs]uint8
	rgb  [AccentColors]uint8
}

// NewBatteryGauge renders the gauge for the given voltage.
func NewBatteryGauge(volts float64) *BatteryGauge {
	g := &BatteryGauge{}
	g.leds, g.rgb = RenderBatteryGauge(BatteryChargeLevel(volts))
	return g
}

func (g *BatteryGauge) LEDSnapshot() [MatrixLEDs]uint8      { return g.leds }
func (g *BatteryGauge) AccentSnapshot() [AccentColors]uint8 { return g.rgb }
