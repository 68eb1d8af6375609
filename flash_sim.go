// flash_sim.go - In-memory NOR-style flash with page erase semantics

package main

import (
	"fmt"
	"os"
	"sync"
)

const (
	// FlashSize is the size of the settings arena in bytes.
	FlashSize = 4096
	// FlashPageSize is the erase granularity in bytes.
	FlashPageSize = 512
	// FlashErased is the value of every byte after a page erase.
	FlashErased = 0xFF
)

// FlashMemory is the medium the settings store writes to. Program can only
// clear bits; Erase is the only way to set them back. Implementations
// return an error on medium faults, out-of-range addresses included.
type FlashMemory interface {
	Read(addr int, buf []byte) error
	Program(addr int, data []byte) error
	ErasePage(addr int) error
	Size() int
	PageSize() int
}

// SimFlash is an in-memory FlashMemory. Program performs a bitwise AND so
// that 0 bits stick, matching real NOR cells; ErasePage restores a whole
// page to FlashErased and counts the erase for wear accounting.
type SimFlash struct {
	mutex       sync.Mutex
	cells       []byte
	pageSize    int
	eraseCounts []uint32
}

// NewSimFlash returns a fully erased simulator of the given geometry.
// size must be a multiple of pageSize.
func NewSimFlash(size, pageSize int) *SimFlash {
	if size <= 0 || pageSize <= 0 || size%pageSize != 0 {
		panic(fmt.Sprintf("flash: bad geometry %d/%d", size, pageSize))
	}
	f := &SimFlash{
		cells:       make([]byte, size),
		pageSize:    pageSize,
		eraseCounts: make([]uint32, size/pageSize),
	}
	for i := range f.cells {
		f.cells[i] = FlashErased
	}
	return f
}

func (f *SimFlash) Size() int     { return len(f.cells) }
func (f *SimFlash) PageSize() int { return f.pageSize }

func (f *SimFlash) checkRange(addr, length int) error {
	if addr < 0 || length < 0 || addr+length > len(f.cells) {
		return fmt.Errorf("flash: access [%#x,%#x) outside medium of %d bytes", addr, addr+length, len(f.cells))
	}
	return nil
}

// Read copies len(buf) bytes starting at addr into buf.
func (f *SimFlash) Read(addr int, buf []byte) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := f.checkRange(addr, len(buf)); err != nil {
		return err
	}
	copy(buf, f.cells[addr:])
	return nil
}

// Program writes data starting at addr. Bits can only go from 1 to 0.
func (f *SimFlash) Program(addr int, data []byte) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := f.checkRange(addr, len(data)); err != nil {
		return err
	}
	for i, b := range data {
		f.cells[addr+i] &= b
	}
	return nil
}

// ErasePage erases the page containing addr. The offset within the page is
// ignored.
func (f *SimFlash) ErasePage(addr int) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := f.checkRange(addr, 1); err != nil {
		return err
	}
	page := addr / f.pageSize
	start := page * f.pageSize
	for i := start; i < start+f.pageSize; i++ {
		f.cells[i] = FlashErased
	}
	f.eraseCounts[page]++
	return nil
}

// EraseCount returns how many times the page containing addr was erased.
func (f *SimFlash) EraseCount(addr int) uint32 {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if addr < 0 || addr >= len(f.cells) {
		return 0
	}
	return f.eraseCounts[addr/f.pageSize]
}

// LoadImage replaces the flash contents with the file at path. A missing
// file leaves the medium fully erased and is not an error, so first runs
// start from a blank medium.
func (f *SimFlash) LoadImage(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("flash: loading image: %w", err)
	}
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if len(data) != len(f.cells) {
		return fmt.Errorf("flash: image %s is %d bytes, want %d", path, len(data), len(f.cells))
	}
	copy(f.cells, data)
	return nil
}

// SaveImage writes the flash contents to the file at path.
func (f *SimFlash) SaveImage(path string) error {
	f.mutex.Lock()
	snapshot := make([]byte, len(f.cells))
	copy(snapshot, f.cells)
	f.mutex.Unlock()
	if err := os.WriteFile(path, snapshot, 0o644); err != nil {
		return fmt.Errorf("flash: saving image: %w", err)
	}
	return nil
}
