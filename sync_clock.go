// sync_clock.go - Shared millisecond timebase for the animation channels

package main

import (
	"sync"
)

// MsClock is a free-running 16-bit millisecond counter. It deliberately
// wraps at 65536 ms; consumers take wrapping differences rather than
// absolute values. Two feeds can drive it: a hardware-style interrupt at
// ClockPrescaler times the millisecond rate, or direct AddMs calls from a
// host ticker.
type MsClock struct {
	mutex     sync.Mutex
	ms        uint16
	prescaler uint8
	paused    bool
}

// NewMsClock returns a clock at zero, running.
func NewMsClock() *MsClock {
	return &MsClock{}
}

// Interrupt advances the prescaler and, every ClockPrescaler calls, the
// millisecond counter. Wire it to a periodic timer source.
func (c *MsClock) Interrupt() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.paused {
		return
	}
	c.prescaler++
	if c.prescaler >= ClockPrescaler {
		c.prescaler = 0
		c.ms++
	}
}

// AddMs advances the counter by n milliseconds in one step.
func (c *MsClock) AddMs(n uint16) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.paused {
		return
	}
	c.ms += n
}

// Now returns the current counter value.
func (c *MsClock) Now() uint16 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.ms
}

// Reset zeroes the counter and the prescaler.
func (c *MsClock) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.ms = 0
	c.prescaler = 0
}

// Pause stops the clock; Interrupt and AddMs become no-ops until Resume.
func (c *MsClock) Pause() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.paused = true
}

// Resume restarts a paused clock.
func (c *MsClock) Resume() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.paused = false
}
