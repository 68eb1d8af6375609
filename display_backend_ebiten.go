//go:build !tinygo

// display_backend_ebiten.go - Windowed ornament rendering via Ebitengine

package main

import (
	"errors"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	ebitenCanvasSize = 200 // logical canvas, square
	ebitenLEDRadius  = 9
	ebitenRingRadius = 72
)

// errEbitenStopped distinguishes a requested shutdown from a RunGame error.
var errEbitenStopped = errors.New("display stopped")

// EbitenDisplay draws the twelve matrix LEDs as a ring of discs with the
// accent LED in the centre. Holding space is the hardware button; P, B and
// Q report pairing, battery gauge and quit gestures.
type EbitenDisplay struct {
	mutex   sync.Mutex
	source  FrameSource
	started bool
	stop    bool
	scale   int
	held    bool
	events  chan DisplayEvent
}

func NewEbitenDisplay() (*EbitenDisplay, error) {
	return &EbitenDisplay{
		scale:  2,
		events: make(chan DisplayEvent, 8),
	}, nil
}

// SetScale sets the integer window scale. Takes effect at Start.
func (d *EbitenDisplay) SetScale(scale int) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if scale >= 1 {
		d.scale = scale
	}
}

func (d *EbitenDisplay) Start(source FrameSource) error {
	d.mutex.Lock()
	if d.started {
		d.mutex.Unlock()
		return &DisplayError{Operation: "start", Details: "already started"}
	}
	d.source = source
	d.started = true
	d.stop = false
	scale := d.scale
	d.mutex.Unlock()

	ebiten.SetWindowSize(ebitenCanvasSize*scale, ebitenCanvasSize*scale)
	ebiten.SetWindowTitle("Ornament Engine")
	ebiten.SetTPS(120)

	go func() {
		err := ebiten.RunGame(d)
		d.mutex.Lock()
		d.started = false
		d.mutex.Unlock()
		if err != nil && !errors.Is(err, errEbitenStopped) {
			select {
			case d.events <- EventQuit:
			default:
			}
		}
	}()
	return nil
}

func (d *EbitenDisplay) Stop() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.stop = true
	return nil
}

func (d *EbitenDisplay) IsStarted() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.started
}

func (d *EbitenDisplay) ButtonHeld() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.held
}

func (d *EbitenDisplay) Events() <-chan DisplayEvent {
	return d.events
}

func (d *EbitenDisplay) post(ev DisplayEvent) {
	select {
	case d.events <- ev:
	default: // drop gestures nobody is draining
	}
}

// Update implements ebiten.Game.
func (d *EbitenDisplay) Update() error {
	d.mutex.Lock()
	stop := d.stop
	d.held = ebiten.IsKeyPressed(ebiten.KeySpace)
	d.mutex.Unlock()
	if stop {
		return errEbitenStopped
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		d.post(EventPairing)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		d.post(EventBattery)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		d.post(EventQuit)
	}
	return nil
}

// Draw implements ebiten.Game.
func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	if d.source == nil {
		return
	}
	leds := d.source.LEDSnapshot()
	rgb := d.source.AccentSnapshot()

	const center = float32(ebitenCanvasSize) / 2
	for i, v := range leds {
		// LED 0 sits at twelve o'clock, indices run clockwise.
		angle := 2*math.Pi*float64(i)/MatrixLEDs - math.Pi/2
		x := center + ebitenRingRadius*float32(math.Cos(angle))
		y := center + ebitenRingRadius*float32(math.Sin(angle))
		vector.DrawFilledCircle(screen, x, y, ebitenLEDRadius, warmWhite(v), true)
	}
	vector.DrawFilledCircle(screen, center, center, ebitenLEDRadius+3, accentColor(rgb), true)

	ebitenutil.DebugPrint(screen, "space=button  p=pair  b=battery  q=quit")
}

// Layout implements ebiten.Game.
func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ebitenCanvasSize, ebitenCanvasSize
}

// warmWhite maps a 4-bit brightness onto the yellowish white of the
// physical LEDs, with a dim floor so dark LEDs stay visible as sockets.
func warmWhite(v uint8) color.Color {
	lum := 24 + int(v)*(255-24)/MaxBrightness
	return color.RGBA{R: uint8(lum), G: uint8(lum * 230 / 255), B: uint8(lum * 130 / 255), A: 255}
}

func accentColor(rgb [AccentColors]uint8) color.Color {
	scale := func(v uint8) uint8 {
		return uint8(24 + int(v)*(255-24)/MaxBrightness)
	}
	return color.RGBA{R: scale(rgb[0]), G: scale(rgb[1]), B: scale(rgb[2]), A: 255}
}
