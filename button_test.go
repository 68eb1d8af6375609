// button_test.go - Tests for the button debounce state machine

package main

import (
	"testing"
)

// pollFor polls the button every millisecond for ms milliseconds with the
// given level, returning the first non-none action seen.
func pollFor(button *Button, clock *MsClock, held bool, ms int) ButtonAction {
	result := ButtonNone
	for i := 0; i < ms; i++ {
		clock.AddMs(1)
		if action := button.Poll(held); action != ButtonNone && result == ButtonNone {
			result = action
		}
	}
	return result
}

// TestButton_ShortPress verifies a debounced press and release resolves to
// a single short press on the release edge.
func TestButton_ShortPress(t *testing.T) {
	clock := NewMsClock()
	button := NewButton(clock)

	if action := button.Poll(true); action != ButtonNone {
		t.Fatalf("Expected no action on the press edge, got %v", action)
	}
	if action := pollFor(button, clock, true, 100); action != ButtonNone {
		t.Fatalf("Expected no action while held short, got %v", action)
	}
	if action := button.Poll(false); action != ButtonShortPress {
		t.Fatalf("Expected a short press on release, got %v", action)
	}
	// The release settles with no further gestures.
	if action := pollFor(button, clock, false, 100); action != ButtonNone {
		t.Errorf("Expected no action after the release settled, got %v", action)
	}
}

// TestButton_BounceRejected verifies a contact closure shorter than the
// debounce interval produces nothing.
func TestButton_BounceRejected(t *testing.T) {
	clock := NewMsClock()
	button := NewButton(clock)

	button.Poll(true)
	if action := pollFor(button, clock, true, buttonDebounceMs/2); action != ButtonNone {
		t.Fatalf("Expected no action mid-bounce, got %v", action)
	}
	if action := pollFor(button, clock, false, 200); action != ButtonNone {
		t.Errorf("Expected a sub-debounce blip to be rejected, got %v", action)
	}
}

// TestButton_LongHold verifies the long gesture fires once while held and
// the matching release arrives after the button settles, with no short
// press in between.
func TestButton_LongHold(t *testing.T) {
	clock := NewMsClock()
	button := NewButton(clock)

	button.Poll(true)
	if action := pollFor(button, clock, true, buttonDebounceMs+buttonLongHoldMs); action != ButtonLongHold {
		t.Fatalf("Expected a long hold past the threshold, got %v", action)
	}
	// Holding longer repeats nothing.
	if action := pollFor(button, clock, true, 500); action != ButtonNone {
		t.Errorf("Expected the long hold to fire once, got %v", action)
	}
	if action := pollFor(button, clock, false, buttonDebounceMs+10); action != ButtonLongRelease {
		t.Errorf("Expected a long release after the button settled, got %v", action)
	}
	if action := pollFor(button, clock, false, 100); action != ButtonNone {
		t.Errorf("Expected nothing more after the long release, got %v", action)
	}
}

// TestButton_CounterWraparound runs a long hold across the 16-bit clock
// wrap and checks the deadlines still expire.
func TestButton_CounterWraparound(t *testing.T) {
	clock := NewMsClock()
	clock.AddMs(65500) // the hold spans the counter wrap
	button := NewButton(clock)

	button.Poll(true)
	if action := pollFor(button, clock, true, buttonDebounceMs+buttonLongHoldMs); action != ButtonLongHold {
		t.Errorf("Expected the long hold to survive the counter wrap, got %v", action)
	}
}

// TestButton_SecondPress verifies the machine returns to idle and a second
// press works like the first.
func TestButton_SecondPress(t *testing.T) {
	clock := NewMsClock()
	button := NewButton(clock)

	for press := 0; press < 2; press++ {
		button.Poll(true)
		pollFor(button, clock, true, 100)
		if action := button.Poll(false); action != ButtonShortPress {
			t.Fatalf("Press %d: expected a short press, got %v", press, action)
		}
		pollFor(button, clock, false, 100)
	}
}
