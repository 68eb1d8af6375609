// button.go - Nonblocking debounce state machine for the user button

package main

const (
	buttonDebounceMs = 50
	buttonLongHoldMs = 2000
)

// ButtonAction is the gesture a Poll call resolved to.
type ButtonAction int

const (
	ButtonNone ButtonAction = iota
	// ButtonShortPress fires on release of a press shorter than the long
	// hold threshold.
	ButtonShortPress
	// ButtonLongHold fires once when the button has been held past the
	// threshold, while it is still down.
	ButtonLongHold
	// ButtonLongRelease fires when a long hold is released and the
	// release has debounced.
	ButtonLongRelease
)

type buttonState int

const (
	buttonUnpressed buttonState = iota
	buttonBouncing  // just pressed, contacts still bouncing
	buttonPressed   // debounced, waiting for release or long hold
	buttonLongHeld  // past the long hold threshold, still down
	buttonReleasing // just released, contacts still bouncing
)

// Button debounces a momentary switch sampled by polling. Both edges get a
// settling interval before they count, and a press held past the long hold
// threshold turns into a long gesture instead of a short press. Timing
// comes from the shared millisecond clock, compared with wrapping
// arithmetic so an expiry is never missed even if polls skip ticks.
type Button struct {
	clock    *MsClock
	state    buttonState
	deadline uint16
	wasLong  bool
}

func NewButton(clock *MsClock) *Button {
	return &Button{clock: clock}
}

// expired reports whether the deadline has passed, tolerating counter
// wraparound.
func (b *Button) expired(now uint16) bool {
	return int16(now-b.deadline) >= 0
}

// Poll advances the state machine with the current switch level and
// returns the gesture that resolved on this call, if any. Call it from
// the main loop every cycle.
func (b *Button) Poll(held bool) ButtonAction {
	now := b.clock.Now()
	switch b.state {
	case buttonBouncing:
		if b.expired(now) {
			if held {
				b.deadline = now + buttonLongHoldMs
				b.state = buttonPressed
			} else {
				b.state = buttonUnpressed
			}
		}

	case buttonPressed:
		if !held {
			b.deadline = now + buttonDebounceMs
			b.state = buttonReleasing
			return ButtonShortPress
		}
		if b.expired(now) {
			b.state = buttonLongHeld
			b.wasLong = true
			return ButtonLongHold
		}

	case buttonLongHeld:
		if !held {
			b.deadline = now + buttonDebounceMs
			b.state = buttonReleasing
		}

	case buttonReleasing:
		if b.expired(now) {
			if !held {
				b.state = buttonUnpressed
				if b.wasLong {
					b.wasLong = false
					return ButtonLongRelease
				}
			} else {
				// still down, keep waiting for a clean release
				b.deadline = now + buttonDebounceMs
			}
		}

	default: // buttonUnpressed
		if held {
			b.deadline = now + buttonDebounceMs
			b.state = buttonBouncing
		}
	}
	return ButtonNone
}
