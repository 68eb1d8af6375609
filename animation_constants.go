// animation_constants.go - Channel geometry and opcode bits for the animation interpreter

package main

// Channel geometry. The matrix is one loop of discrete LEDs split into two
// linear halves at MatrixPivot; the accent channel is a single RGB package.
const (
	MatrixLEDs   = 12 // number of discrete LEDs in the matrix channel
	MatrixPivot  = 6  // first LED of the second half of the matrix
	AccentColors = 3  // red, green, blue elements of the accent LED

	MaxBrightness = 15 // brightness values are 4-bit
)

// Opcode bits of the animation virtual machine. Except for OpLoad, these are
// independent flags that may be combined in one instruction; when several are
// set they execute in the fixed order Add, RotateRight, RotateLeft,
// SourceUp, SourceDown, Divide, Repeat.
const (
	OpLoad        uint8 = 0x00 // copy the delta vector into the channel verbatim
	OpAdd         uint8 = 0x01 // add deltas; leaving [0,15] resets the element to 0
	OpRotateRight uint8 = 0x02 // rotate the matrix one position clockwise
	OpRotateLeft  uint8 = 0x04 // rotate the matrix one position anticlockwise
	OpDivide      uint8 = 0x10 // divide each element by its (non-zero) delta
	OpSourceUp    uint8 = 0x20 // inject deltas, carry saturation overflow toward the pivot
	OpSourceDown  uint8 = 0x40 // inject deltas, carry saturation overflow away from the pivot
	OpRepeat      uint8 = 0x80 // re-run this instruction operand more times
)

// ClockPrescaler is the number of timer interrupts per millisecond tick.
const ClockPrescaler = 10
