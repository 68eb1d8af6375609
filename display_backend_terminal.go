//go:build !tinygo

// display_backend_terminal.go - ANSI rendering in the controlling terminal

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// TerminalDisplay renders the LED state as ANSI colour blocks and reads
// single-key gestures from the raw terminal. A terminal has no key-up
// events, so the hardware button is emulated with timed holds: space is a
// short tap and H holds the button long enough for the power-down gesture.
type TerminalDisplay struct {
	mutex     sync.Mutex
	source    FrameSource
	started   bool
	heldUntil time.Time
	oldState  *term.State
	done      chan struct{}
	events    chan DisplayEvent
}

const (
	terminalTapHold  = 120 * time.Millisecond
	terminalLongHold = 3 * time.Second
)

func NewTerminalDisplay() (*TerminalDisplay, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, &DisplayError{Operation: "create", Details: "stdin is not a terminal"}
	}
	return &TerminalDisplay{
		events: make(chan DisplayEvent, 8),
	}, nil
}

func (d *TerminalDisplay) Start(source FrameSource) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.started {
		return &DisplayError{Operation: "start", Details: "already started"}
	}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return &DisplayError{Operation: "start", Details: "raw mode", Err: err}
	}
	d.oldState = state
	d.source = source
	d.started = true
	d.done = make(chan struct{})

	fmt.Print("\x1b[2J\x1b[?25l") // clear screen, hide cursor
	go d.renderLoop()
	go d.inputLoop()
	return nil
}

func (d *TerminalDisplay) Stop() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if !d.started {
		return nil
	}
	d.started = false
	close(d.done)
	fmt.Print("\x1b[?25h\x1b[0m\r\n") // show cursor, reset attributes
	if d.oldState != nil {
		term.Restore(int(os.Stdin.Fd()), d.oldState)
		d.oldState = nil
	}
	return nil
}

func (d *TerminalDisplay) IsStarted() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.started
}

func (d *TerminalDisplay) ButtonHeld() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return time.Now().Before(d.heldUntil)
}

func (d *TerminalDisplay) Events() <-chan DisplayEvent {
	return d.events
}

func (d *TerminalDisplay) renderLoop() {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-d.done:
			return
		case <-ticker.C:
			d.render()
		}
	}
}

func (d *TerminalDisplay) render() {
	leds := d.source.LEDSnapshot()
	rgb := d.source.AccentSnapshot()

	out := "\x1b[H\r\n  "
	for _, v := range leds {
		// 24-step grayscale ramp of the 256-colour palette, warm-tinted
		// via the yellow foreground when fully lit.
		lum := 232 + int(v)*23/MaxBrightness
		out += fmt.Sprintf("\x1b[48;5;%dm  \x1b[0m ", lum)
	}
	out += "\r\n\r\n  accent: "
	out += fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m",
		int(rgb[0])*255/MaxBrightness,
		int(rgb[1])*255/MaxBrightness,
		int(rgb[2])*255/MaxBrightness)
	out += "\r\n\r\n  space=tap h=hold p=pair b=battery q=quit\r\n"
	fmt.Print(out)
}

func (d *TerminalDisplay) inputLoop() {
	buf := make([]byte, 1)
	for {
		select {
		case <-d.done:
			return
		default:
		}
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		switch buf[0] {
		case ' ':
			d.hold(terminalTapHold)
		case 'h', 'H':
			d.hold(terminalLongHold)
		case 'p', 'P':
			d.post(EventPairing)
		case 'b', 'B':
			d.post(EventBattery)
		case 'q', 'Q', 3: // Ctrl-C in raw mode
			d.post(EventQuit)
		}
	}
}

func (d *TerminalDisplay) hold(duration time.Duration) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.heldUntil = time.Now().Add(duration)
}

func (d *TerminalDisplay) post(ev DisplayEvent) {
	select {
	case d.events <- ev:
	default:
	}
}
