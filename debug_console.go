// debug_console.go - Interactive line console for poking the firmware state

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/google/shlex"
)

// DebugConsole reads commands from an input stream and applies them to the
// running firmware. Parsed commands are handed to the main loop through
// Commands as closures, so console input never races the single-threaded
// firmware core. The reader goroutine only parses and validates.
type DebugConsole struct {
	engine  *AnimationEngine
	store   *SettingsStore
	catalog *Catalog
	flash   *SimFlash
	out     io.Writer

	// Commands delivers parsed commands; the main loop drains it each
	// pass and executes them between engine cycles.
	Commands chan func()
	// Quit is closed when the console reads a quit command or EOF.
	Quit chan struct{}
}

func NewDebugConsole(engine *AnimationEngine, store *SettingsStore, catalog *Catalog, flash *SimFlash, out io.Writer) *DebugConsole {
	return &DebugConsole{
		engine:   engine,
		store:    store,
		catalog:  catalog,
		flash:    flash,
		out:      out,
		Commands: make(chan func(), 8),
		Quit:     make(chan struct{}),
	}
}

// Run reads lines until EOF or quit. Call it on its own goroutine.
func (c *DebugConsole) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	c.printf("ornament console, 'help' lists commands\n")
	for scanner.Scan() {
		words, err := shlex.Split(scanner.Text())
		if err != nil {
			c.printf("parse error: %v\n", err)
			continue
		}
		if len(words) == 0 {
			continue
		}
		if !c.dispatch(words) {
			close(c.Quit)
			return
		}
	}
	close(c.Quit)
}

// dispatch handles one command line; it returns false on quit.
func (c *DebugConsole) dispatch(words []string) bool {
	switch words[0] {
	case "help":
		c.printf("anim <n>    select animation n\n" +
			"list        list catalog entries\n" +
			"info        show playback state\n" +
			"save        persist the current selection\n" +
			"slots       show settings store state\n" +
			"battery <v> render the gauge for v volts\n" +
			"quit        exit\n")

	case "list":
		c.Commands <- func() {
			current := c.engine.CurrentAnimation()
			for i := 0; i < c.catalog.Len(); i++ {
				marker := "  "
				if i == current {
					marker = "> "
				}
				c.printf("%s%2d  %s\n", marker, i, c.catalog.Name(i))
			}
		}

	case "anim":
		if len(words) != 2 {
			c.printf("usage: anim <n>\n")
			break
		}
		n, err := strconv.Atoi(words[1])
		if err != nil || n < 0 || n >= c.catalog.Len() {
			c.printf("no animation %q, see 'list'\n", words[1])
			break
		}
		c.Commands <- func() {
			c.engine.SetAnimation(n)
			c.printf("animation %d (%s)\n", n, c.catalog.Name(n))
		}

	case "info":
		c.Commands <- func() {
			current := c.engine.CurrentAnimation()
			leds := c.engine.LEDSnapshot()
			rgb := c.engine.AccentSnapshot()
			c.printf("animation %d (%s)\nmatrix %v\naccent %v\n",
				current, c.catalog.Name(current), leds, rgb)
		}

	case "save":
		c.Commands <- func() {
			index := uint8(c.engine.CurrentAnimation())
			if err := c.store.Save(index); err != nil {
				c.printf("save failed: %v\n", err)
				return
			}
			c.printf("saved index %d, next slot %d\n", index, c.store.NextSlot())
		}

	case "slots":
		c.Commands <- func() {
			c.printf("index %d, next slot %d of %d\n",
				c.store.Index(), c.store.NextSlot(), c.store.Slots())
			if c.flash != nil {
				pageSize := c.flash.PageSize()
				for addr := 0; addr < c.flash.Size(); addr += pageSize {
					c.printf("page %2d: %d erases\n", addr/pageSize, c.flash.EraseCount(addr))
				}
			}
		}

	case "battery":
		if len(words) != 2 {
			c.printf("usage: battery <volts>\n")
			break
		}
		volts, err := strconv.ParseFloat(words[1], 64)
		if err != nil {
			c.printf("bad voltage %q\n", words[1])
			break
		}
		level := BatteryChargeLevel(volts)
		leds, rgb := RenderBatteryGauge(level)
		c.printf("%.2fV -> level %d\nmatrix %v\naccent %v\n", volts, level, leds, rgb)

	case "quit", "exit":
		return false

	default:
		c.printf("unknown command %q, try 'help'\n", words[0])
	}
	return true
}

func (c *DebugConsole) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
