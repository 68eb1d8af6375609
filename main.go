//go:build !tinygo

// main.go - Ornament Engine entry point for hosted builds

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	// autoPowerDown is how long the ornament runs before switching
	// itself off, saving the coin cell when the owner forgets to.
	autoPowerDown = 5 * time.Hour
	// batteryGaugeShow is how long the gauge overlays the animation.
	batteryGaugeShow = 1 * time.Second
)

// sourceSwitch lets the main loop swap what the display renders without
// restarting the backend, used for the battery gauge overlay.
type sourceSwitch struct {
	mutex sync.Mutex
	src   FrameSource
}

func (s *sourceSwitch) Set(src FrameSource) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.src = src
}

func (s *sourceSwitch) LEDSnapshot() [MatrixLEDs]uint8 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.src.LEDSnapshot()
}

func (s *sourceSwitch) AccentSnapshot() [AccentColors]uint8 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.src.AccentSnapshot()
}

// ornament bundles one complete firmware instance: clock, engine, store
// and optional radio. The main window drives one; -radio starts a second
// headless one as the pairing partner.
type ornament struct {
	clock   *MsClock
	engine  *AnimationEngine
	store   *SettingsStore
	flash   *SimFlash
	button  *Button
	radio   *SyncController
	catalog *Catalog
}

func newOrnament(flash *SimFlash, link RadioLink) (*ornament, error) {
	store, err := NewSettingsStore(flash)
	if err != nil {
		return nil, err
	}
	catalog := BuiltinCatalog()
	clock := NewMsClock()
	engine := NewAnimationEngine(catalog, clock)
	engine.Init()
	engine.SetAnimation(int(store.Index()))

	o := &ornament{
		clock:   clock,
		engine:  engine,
		store:   store,
		flash:   flash,
		button:  NewButton(clock),
		catalog: catalog,
	}
	if link != nil {
		o.radio = NewSyncController(link, engine, clock, catalog)
		o.radio.OnIndexChange = func(index uint8) {
			if err := o.store.Save(index); err != nil {
				fmt.Printf("save failed: %v\n", err)
			}
		}
	}
	return o, nil
}

// selectNext cycles to the next animation, skipping the reserved all-off
// entry at the end of the catalog, and persists the selection.
func (o *ornament) selectNext() {
	next := o.engine.CurrentAnimation() + 1
	if next >= o.catalog.Len()-1 {
		next = 0
	}
	o.engine.SetAnimation(next)
	if err := o.store.Save(uint8(next)); err != nil {
		fmt.Printf("save failed: %v\n", err)
	}
	if o.radio != nil {
		o.radio.NotifyChange(uint8(next))
	}
}

func main() {
	var (
		displayName string
		flashPath   string
		scale       int
		animIndex   int
		withConsole bool
		withRadio   bool
		batteryV    float64
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&displayName, "display", "ebiten", "display backend: ebiten, terminal, headless, piglow")
	flagSet.StringVar(&flashPath, "flash", "ornament.flash", "settings flash image path (empty for volatile)")
	flagSet.IntVar(&scale, "scale", 2, "window scale for the ebiten display")
	flagSet.IntVar(&animIndex, "anim", -1, "start at this animation instead of the saved one")
	flagSet.BoolVar(&withConsole, "console", false, "read debug commands from stdin")
	flagSet.BoolVar(&withRadio, "radio", false, "run a second paired ornament on a loopback radio")
	flagSet.Float64Var(&batteryV, "battery", 2.8, "simulated battery voltage for the gauge")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./ornament_engine [-display ebiten|terminal|headless|piglow] [options]")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			flagSet.Usage()
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	backend := -1
	switch displayName {
	case "ebiten":
		backend = DISPLAY_BACKEND_EBITEN
	case "terminal":
		backend = DISPLAY_BACKEND_TERMINAL
	case "headless":
		backend = DISPLAY_BACKEND_HEADLESS
	case "piglow":
		backend = DISPLAY_BACKEND_PIGLOW
	default:
		fmt.Printf("Error: unknown display backend %q\n", displayName)
		os.Exit(1)
	}

	flash := NewSimFlash(FlashSize, FlashPageSize)
	if flashPath != "" {
		if err := flash.LoadImage(flashPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	var link, partnerLink RadioLink
	if withRadio {
		link, partnerLink = NewLoopbackPair()
	}

	orn, err := newOrnament(flash, link)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if animIndex >= 0 {
		orn.engine.SetAnimation(animIndex)
	}

	display, err := NewDisplayOutput(backend)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if eb, ok := display.(*EbitenDisplay); ok {
		eb.SetScale(scale)
	}

	source := &sourceSwitch{src: orn.engine}
	if err := display.Start(source); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var console *DebugConsole
	if withConsole {
		console = NewDebugConsole(orn.engine, orn.store, orn.catalog, flash, os.Stdout)
		go console.Run(os.Stdin)
	}

	if withRadio {
		partner, err := newOrnament(NewSimFlash(FlashSize, FlashPageSize), partnerLink)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		go runPartner(partner)
	}

	shutdown := func(code int) {
		display.Stop()
		if flashPath != "" {
			if err := flash.SaveImage(flashPath); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
		os.Exit(code)
	}

	started := time.Now()
	var gaugeUntil time.Time
	poweringDown := false

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		orn.clock.AddMs(1)

		if time.Since(started) >= autoPowerDown {
			shutdown(0)
		}
		if !gaugeUntil.IsZero() && time.Now().After(gaugeUntil) {
			gaugeUntil = time.Time{}
			source.Set(orn.engine)
		}

		switch orn.button.Poll(display.ButtonHeld()) {
		case ButtonShortPress:
			if poweringDown {
				break
			}
			// A renewed press while the pairing broadcast runs calls it
			// off instead of switching animations.
			if orn.radio != nil && orn.radio.Pairing() {
				orn.radio.CancelPairing()
				break
			}
			orn.selectNext()
		case ButtonLongHold:
			// Go dark while the button is held to signal the shutdown.
			poweringDown = true
			orn.engine.SetAnimation(orn.catalog.Len() - 1)
		case ButtonLongRelease:
			shutdown(0)
		}

		if ch := display.Events(); ch != nil {
			select {
			case ev := <-ch:
				switch ev {
				case EventPairing:
					if orn.radio != nil {
						if orn.radio.Pairing() {
							orn.radio.CancelPairing()
						} else {
							orn.radio.StartPairing()
						}
					}
				case EventBattery:
					source.Set(NewBatteryGauge(batteryV))
					gaugeUntil = time.Now().Add(batteryGaugeShow)
				case EventQuit:
					shutdown(0)
				}
			default:
			}
		}

		if console != nil {
			select {
			case <-console.Quit:
				shutdown(0)
			case cmd := <-console.Commands:
				cmd()
			default:
			}
		}

		if orn.radio != nil {
			orn.radio.Cycle()
		}
		orn.engine.Cycle()
	}
}

// runPartner drives the headless paired ornament. It answers pairing and
// mirrors animation changes for as long as the process lives.
func runPartner(o *ornament) {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		o.clock.AddMs(1)
		o.radio.Cycle()
		o.engine.Cycle()
	}
}
