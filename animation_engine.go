// animation_engine.go - Timed opcode interpreter driving the LED brightness vectors

package main

import (
	"sync"
)

// channelCursor is the playback position of one channel: its local clock,
// the last instruction whose effects were applied, and the remaining count
// when an instruction is mid-repeat.
type channelCursor struct {
	elapsed    uint16
	lastStep   int // -1 until the first instruction executes
	repeatLeft uint8
}

func (c *channelCursor) reset() {
	c.elapsed = 0
	c.lastStep = -1
	c.repeatLeft = 0
}

// AnimationEngine interprets one catalog entry, advancing the matrix and
// accent cursors against the shared millisecond clock and writing the
// brightness vectors. All entry points run in the foreground context; the
// mutex only guards the snapshot accessors used by output backends.
type AnimationEngine struct {
	mutex   sync.Mutex
	clock   *MsClock
	catalog *Catalog

	current  int
	lastCall uint16

	matrix channelCursor
	accent channelCursor

	leds [MatrixLEDs]uint8
	rgb  [AccentColors]uint8
}

// NewAnimationEngine creates an engine over the given catalog and clock.
func NewAnimationEngine(catalog *Catalog, clock *MsClock) *AnimationEngine {
	e := &AnimationEngine{
		clock:   clock,
		catalog: catalog,
	}
	e.matrix.reset()
	e.accent.reset()
	return e
}

// Init zeroes both cursors and captures the current clock as baseline.
func (e *AnimationEngine) Init() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.matrix.reset()
	e.accent.reset()
	e.lastCall = e.clock.Now()
}

// SetAnimation selects the catalog entry at index and rewinds playback to
// its start. Out-of-range indices are silently ignored.
func (e *AnimationEngine) SetAnimation(index int) {
	if index < 0 || index >= e.catalog.Len() {
		return
	}
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.current = index
	e.matrix.reset()
	e.accent.reset()
}

// CurrentAnimation returns the active catalog index.
func (e *AnimationEngine) CurrentAnimation() int {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.current
}

// ResyncPhase rewinds the active animation to its start without changing
// the selection. The radio collaborator calls this to align the visible
// phase of two paired devices.
func (e *AnimationEngine) ResyncPhase() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.matrix.reset()
	e.accent.reset()
}

// LEDSnapshot returns a copy of the matrix brightness vector.
func (e *AnimationEngine) LEDSnapshot() [MatrixLEDs]uint8 {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.leds
}

// AccentSnapshot returns a copy of the accent brightness triple.
func (e *AnimationEngine) AccentSnapshot() [AccentColors]uint8 {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.rgb
}

// Cycle advances both channels by the time elapsed since the previous call
// and applies any newly resolved instructions to the brightness vectors.
// Call it from the main loop at least once per millisecond; calling it with
// no elapsed time is a no-op, so steps are edge-triggered and never apply
// their effects twice.
func (e *AnimationEngine) Cycle() {
	now := e.clock.Now()

	e.mutex.Lock()
	defer e.mutex.Unlock()

	if now == e.lastCall {
		return
	}
	delta := now - e.lastCall // wrapping 16-bit subtraction
	e.lastCall = now

	e.matrix.elapsed += delta
	e.accent.elapsed += delta

	// A stale persisted index must never cause an out-of-bounds read.
	if e.current >= e.catalog.Len() {
		e.current = 0
	}
	anim := e.catalog.Animation(e.current)

	step, wrapped := resolveStep(anim.Matrix, e.matrix.elapsed)
	if wrapped {
		e.matrix.elapsed = 0
		// The accent loop realigns to the matrix period.
		e.accent.elapsed = 0
		step = 0
	}
	if step != e.matrix.lastStep {
		e.execMatrix(anim.Matrix[step], step)
	}

	step, wrapped = resolveStep(anim.Accent, e.accent.elapsed)
	if wrapped {
		e.accent.elapsed = 0
		step = 0
	}
	if step != e.accent.lastStep {
		e.execAccent(anim.Accent[step], step)
	}
}

// resolveStep walks the sequence accumulating durations until the running
// sum exceeds elapsed. wrapped reports that the whole sequence finished and
// playback must restart from instruction 0 with a zeroed channel clock.
func resolveStep(seq []Instruction, elapsed uint16) (step int, wrapped bool) {
	var sum uint16
	for i, ins := range seq {
		sum += ins.Duration
		if sum > elapsed {
			return i, false
		}
	}
	return 0, true
}

// saturateBrightness clamps *v to [0,15] interpreting it as signed, and
// returns the amount clipped off. The cascade opcodes carry that amount
// into the neighbouring element.
func saturateBrightness(v *uint8) int8 {
	sv := int8(*v)
	if sv < 0 {
		*v = 0
		return sv
	}
	if sv > MaxBrightness {
		*v = MaxBrightness
		return sv - MaxBrightness
	}
	return 0
}

// execMatrix applies one matrix instruction. The order of the opcode
// blocks is fixed; reordering them changes the visual result.
func (e *AnimationEngine) execMatrix(ins Instruction, step int) {
	if ins.Opcode == OpLoad {
		for i, d := range ins.Deltas {
			e.leds[i] = uint8(d)
		}
		e.matrix.lastStep = step
		return
	}

	if ins.Opcode&OpAdd != 0 {
		for i := range e.leds {
			v := e.leds[i] + uint8(ins.Deltas[i])
			if v > MaxBrightness { // overflow or underflow resets to black
				v = 0
			}
			e.leds[i] = v
		}
	}
	if ins.Opcode&OpRotateRight != 0 {
		last := e.leds[MatrixLEDs-1]
		copy(e.leds[1:], e.leds[:MatrixLEDs-1])
		e.leds[0] = last
	}
	if ins.Opcode&OpRotateLeft != 0 {
		first := e.leds[0]
		copy(e.leds[:MatrixLEDs-1], e.leds[1:])
		e.leds[MatrixLEDs-1] = first
	}
	if ins.Opcode&OpSourceUp != 0 {
		e.sourceUp(ins.Deltas)
	}
	if ins.Opcode&OpSourceDown != 0 {
		e.sourceDown(ins.Deltas)
	}
	if ins.Opcode&OpDivide != 0 {
		for i := range e.leds {
			if d := uint8(ins.Deltas[i]); d != 0 {
				e.leds[i] /= d
			}
		}
	}
	e.finishStep(ins, step, &e.matrix)
}

// execAccent applies one accent instruction. Rotates and cascades are
// documented no-ops on this channel.
func (e *AnimationEngine) execAccent(ins Instruction, step int) {
	if ins.Opcode == OpLoad {
		for i, d := range ins.Deltas {
			e.rgb[i] = uint8(d)
		}
		e.accent.lastStep = step
		return
	}

	if ins.Opcode&OpAdd != 0 {
		for i := range e.rgb {
			v := e.rgb[i] + uint8(ins.Deltas[i])
			if v > MaxBrightness {
				v = 0
			}
			e.rgb[i] = v
		}
	}
	// OpRotateRight, OpRotateLeft, OpSourceUp, OpSourceDown: not implemented
	// for the accent channel.
	if ins.Opcode&OpDivide != 0 {
		for i := range e.rgb {
			if d := uint8(ins.Deltas[i]); d != 0 {
				e.rgb[i] /= d
			}
		}
	}
	e.finishStep(ins, step, &e.accent)
}

// finishStep handles the repeat bookkeeping shared by both channels. A
// repeating instruction rewinds the channel clock by its own duration so
// that the same step resolves again on the next cycle; only once the
// repeat count is exhausted is the step marked executed.
func (e *AnimationEngine) finishStep(ins Instruction, step int, cur *channelCursor) {
	if ins.Opcode&OpRepeat == 0 {
		cur.lastStep = step
		return
	}
	if cur.repeatLeft == 0 {
		cur.repeatLeft = ins.Operand
		cur.elapsed -= ins.Duration
		return
	}
	cur.repeatLeft--
	if cur.repeatLeft != 0 {
		cur.elapsed -= ins.Duration
	} else {
		cur.lastStep = step
	}
}

// sourceUp injects the deltas and propagates saturation carries toward the
// pivot on each half of the matrix: a source pours into a trough and the
// trough overflows into its neighbour.
func (e *AnimationEngine) sourceUp(deltas []int8) {
	// First half, carries travel upward.
	for i := 0; i < MatrixPivot-1; i++ {
		e.leds[i] += uint8(deltas[i])
		for j := i; j < MatrixPivot-1; j++ {
			e.leds[j+1] += uint8(saturateBrightness(&e.leds[j]))
		}
	}
	e.leds[MatrixPivot-1] += uint8(deltas[MatrixPivot-1])
	saturateBrightness(&e.leds[MatrixPivot-1])
	// Second half, carries travel downward.
	for i := MatrixLEDs - 1; i > MatrixPivot; i-- {
		e.leds[i] += uint8(deltas[i])
		for j := MatrixLEDs - 1; j > MatrixPivot; j-- {
			e.leds[j-1] += uint8(saturateBrightness(&e.leds[j]))
		}
	}
	e.leds[MatrixPivot] += uint8(deltas[MatrixPivot])
	saturateBrightness(&e.leds[MatrixPivot])
}

// sourceDown is the mirror of sourceUp: carries propagate away from the
// pivot toward the outer ends of each half.
func (e *AnimationEngine) sourceDown(deltas []int8) {
	// First half, carries travel downward.
	for i := MatrixPivot - 1; i > 0; i-- {
		e.leds[i] += uint8(deltas[i])
		for j := i; j > 0; j-- {
			e.leds[j-1] += uint8(saturateBrightness(&e.leds[j]))
		}
	}
	e.leds[0] += uint8(deltas[0])
	saturateBrightness(&e.leds[0])
	// Second half, carries travel upward.
	for i := MatrixPivot; i < MatrixLEDs-1; i++ {
		e.leds[i] += uint8(deltas[i])
		for j := MatrixPivot; j < MatrixLEDs-1; j++ {
			e.leds[j+1] += uint8(saturateBrightness(&e.leds[j]))
		}
	}
	e.leds[MatrixLEDs-1] += uint8(deltas[MatrixLEDs-1])
	saturateBrightness(&e.leds[MatrixLEDs-1])
}
