//go:build tinygo

// main_tinygo.go - Ornament Engine entry point for microcontroller builds

package main

import (
	"machine"
	"time"
)

const autoPowerDownMs = 5 * 60 * 60 * 1000

func main() {
	flash := NewSimFlash(FlashSize, FlashPageSize)
	store, err := NewSettingsStore(flash)
	if err != nil {
		return
	}

	catalog := BuiltinCatalog()
	clock := NewMsClock()
	engine := NewAnimationEngine(catalog, clock)
	engine.Init()
	engine.SetAnimation(int(store.Index()))

	display := NewWS2812Display(machine.GP2, machine.GP3)
	if err := display.Start(engine); err != nil {
		return
	}

	button := NewButton(clock)
	poweringDown := false
	var uptimeMs uint32

	for {
		time.Sleep(time.Millisecond)
		clock.AddMs(1)
		uptimeMs++

		if uptimeMs >= autoPowerDownMs {
			powerDown(display)
		}

		switch button.Poll(display.ButtonHeld()) {
		case ButtonShortPress:
			if !poweringDown {
				next := engine.CurrentAnimation() + 1
				if next >= catalog.Len()-1 {
					next = 0
				}
				engine.SetAnimation(next)
				store.Save(uint8(next))
			}
		case ButtonLongHold:
			poweringDown = true
			engine.SetAnimation(catalog.Len() - 1)
		case ButtonLongRelease:
			powerDown(display)
		}

		engine.Cycle()
	}
}

// powerDown blanks the strip and parks the core. Without a load switch
// on this board sleeping forever is the closest thing to switching off.
func powerDown(display *WS2812Display) {
	display.Stop()
	for {
		time.Sleep(time.Hour)
	}
}
