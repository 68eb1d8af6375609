// animation_types.go - Instruction, animation and catalog types with construction-time validation

package main

import (
	"fmt"
)

// Instruction is one step of a channel program: hold for Duration
// milliseconds, then apply Opcode to the channel using Deltas and Operand.
type Instruction struct {
	Duration uint16
	Deltas   []int8
	Opcode   uint8
	Operand  uint8
}

// Animation pairs one instruction sequence for the matrix channel with an
// independent sequence for the accent channel. The two sequences loop
// independently and may have different lengths and periods.
type Animation struct {
	Name   string
	Matrix []Instruction
	Accent []Instruction
}

// Catalog is an immutable, index-addressable set of animations. By
// convention the last entry is the reserved all-off animation shown before
// power-down; the user-facing selection cycles over the slots before it.
type Catalog struct {
	animations []Animation
}

// NewCatalog validates the animation set and wraps it in a Catalog.
// Validation catches table mistakes at construction time: empty channel
// sequences, zero durations, wrong delta widths and zero repeat counts all
// resolve to an indefinite or out-of-bounds interpreter state at runtime.
func NewCatalog(animations []Animation) (*Catalog, error) {
	if len(animations) == 0 {
		return nil, fmt.Errorf("catalog: no animations")
	}
	for i, anim := range animations {
		if err := validateSequence(anim.Matrix, MatrixLEDs); err != nil {
			return nil, fmt.Errorf("catalog: animation %d (%s) matrix: %v", i, anim.Name, err)
		}
		if err := validateSequence(anim.Accent, AccentColors); err != nil {
			return nil, fmt.Errorf("catalog: animation %d (%s) accent: %v", i, anim.Name, err)
		}
	}
	return &Catalog{animations: animations}, nil
}

func validateSequence(seq []Instruction, width int) error {
	if len(seq) == 0 {
		return fmt.Errorf("empty instruction sequence")
	}
	for i, ins := range seq {
		if ins.Duration == 0 {
			return fmt.Errorf("instruction %d: zero duration", i)
		}
		if len(ins.Deltas) != width {
			return fmt.Errorf("instruction %d: %d deltas, want %d", i, len(ins.Deltas), width)
		}
		if ins.Opcode&OpRepeat != 0 && ins.Operand == 0 {
			return fmt.Errorf("instruction %d: repeat with zero operand", i)
		}
	}
	return nil
}

// Len returns the number of animations in the catalog.
func (c *Catalog) Len() int {
	return len(c.animations)
}

// Animation returns the catalog entry at index. The index must be in range;
// callers bounds-check against Len() first.
func (c *Catalog) Animation(index int) Animation {
	return c.animations[index]
}

// Name returns the display name of the animation at index, or "" when the
// index is out of range.
func (c *Catalog) Name(index int) string {
	if index < 0 || index >= len(c.animations) {
		return ""
	}
	return c.animations[index].Name
}
