// persist_store_test.go - Tests for the log-structured settings store

package main

import (
	"encoding/binary"
	"fmt"
	"testing"
)

// TestSettingsStore_Defaults verifies a blank medium yields index 0 and a
// write position at the arena base.
func TestSettingsStore_Defaults(t *testing.T) {
	store, err := NewSettingsStore(NewSimFlash(FlashSize, FlashPageSize))
	if err != nil {
		t.Fatalf("Expected a store over a blank medium, got %v", err)
	}
	if store.Index() != 0 {
		t.Errorf("Expected default index 0, got %d", store.Index())
	}
	if store.NextSlot() != 0 {
		t.Errorf("Expected the write position at slot 0, got %d", store.NextSlot())
	}
}

// TestSettingsStore_SaveAndRecover verifies a saved index survives a
// simulated power cycle, with the write position past the record.
func TestSettingsStore_SaveAndRecover(t *testing.T) {
	flash := NewSimFlash(FlashSize, FlashPageSize)
	store, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("NewSettingsStore failed: %v", err)
	}
	if err := store.Save(7); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	recovered, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("Recovery scan failed: %v", err)
	}
	if recovered.Index() != 7 {
		t.Errorf("Expected index 7 after power cycle, got %d", recovered.Index())
	}
	if recovered.NextSlot() != 1 {
		t.Errorf("Expected the write position at slot 1, got %d", recovered.NextSlot())
	}
}

// TestSettingsStore_LastValidWins verifies that with several valid records
// on the medium the one latest in scan order is loaded.
func TestSettingsStore_LastValidWins(t *testing.T) {
	flash := NewSimFlash(FlashSize, FlashPageSize)
	store, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("NewSettingsStore failed: %v", err)
	}
	for _, index := range []uint8{3, 11, 5} {
		if err := store.Save(index); err != nil {
			t.Fatalf("Save(%d) failed: %v", index, err)
		}
	}

	recovered, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("Recovery scan failed: %v", err)
	}
	if recovered.Index() != 5 {
		t.Errorf("Expected the latest record to win, got index %d", recovered.Index())
	}
	if recovered.NextSlot() != 3 {
		t.Errorf("Expected the write position at slot 3, got %d", recovered.NextSlot())
	}
}

// TestSettingsStore_CorruptRecordIgnored flips bits in the newest record
// and checks recovery falls back to the previous one.
func TestSettingsStore_CorruptRecordIgnored(t *testing.T) {
	flash := NewSimFlash(FlashSize, FlashPageSize)
	store, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("NewSettingsStore failed: %v", err)
	}
	if err := store.Save(3); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(9); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Clear bits of the CRC in slot 1, leaving it neither valid nor erased.
	if err := flash.Program(1*persistRecordSize+1, []byte{0x00}); err != nil {
		t.Fatalf("Program failed: %v", err)
	}

	recovered, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("Recovery scan failed: %v", err)
	}
	if recovered.Index() != 3 {
		t.Errorf("Expected fallback to index 3, got %d", recovered.Index())
	}
	// The write position skips past the unusable slot to the first erased
	// one, so the torn record is never programmed over.
	if recovered.NextSlot() != 2 {
		t.Errorf("Expected the write position at slot 2, got %d", recovered.NextSlot())
	}
}

// TestSettingsStore_WearForward verifies consecutive saves append to fresh
// slots without erasing anything while the arena has room.
func TestSettingsStore_WearForward(t *testing.T) {
	flash := NewSimFlash(FlashSize, FlashPageSize)
	store, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("NewSettingsStore failed: %v", err)
	}
	for i := uint8(0); i < 10; i++ {
		if err := store.Save(i); err != nil {
			t.Fatalf("Save(%d) failed: %v", i, err)
		}
	}
	if store.NextSlot() != 10 {
		t.Errorf("Expected the write position at slot 10, got %d", store.NextSlot())
	}
	if count := flash.EraseCount(0); count != 0 {
		t.Errorf("Expected no erases while appending, got %d", count)
	}

	// Every record should still verify on the medium.
	var buf [persistRecordSize]byte
	for slot := 0; slot < 10; slot++ {
		if err := flash.Read(slot*persistRecordSize, buf[:]); err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if buf[0] != uint8(slot) {
			t.Errorf("Slot %d should hold index %d, got %d", slot, slot, buf[0])
		}
		if binary.LittleEndian.Uint16(buf[1:]) != Crc16(buf[:1]) {
			t.Errorf("Slot %d record should verify", slot)
		}
	}
}

// TestSettingsStore_ArenaWrapRestart fills a tiny arena completely and
// checks the next save erases everything and restarts the log at slot 0.
func TestSettingsStore_ArenaWrapRestart(t *testing.T) {
	flash := NewSimFlash(12, 6) // 4 slots, 2 pages
	store, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("NewSettingsStore failed: %v", err)
	}
	for i := uint8(1); i <= 4; i++ {
		if err := store.Save(i); err != nil {
			t.Fatalf("Save(%d) failed: %v", i, err)
		}
	}
	if store.NextSlot() != 0 {
		t.Fatalf("Expected the write position to wrap to slot 0, got %d", store.NextSlot())
	}

	// The fifth save finds its target occupied and restarts the arena.
	if err := store.Save(5); err != nil {
		t.Fatalf("Save(5) failed: %v", err)
	}
	if store.Index() != 5 {
		t.Errorf("Expected index 5 after restart, got %d", store.Index())
	}
	if store.NextSlot() != 1 {
		t.Errorf("Expected the write position at slot 1 after restart, got %d", store.NextSlot())
	}
	if count := flash.EraseCount(0); count != 1 {
		t.Errorf("Expected page 0 erased once by the restart, got %d", count)
	}

	recovered, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("Recovery scan failed: %v", err)
	}
	if recovered.Index() != 5 {
		t.Errorf("Expected index 5 after power cycle, got %d", recovered.Index())
	}
	if recovered.NextSlot() != 1 {
		t.Errorf("Expected the write position at slot 1 after power cycle, got %d", recovered.NextSlot())
	}
}

// TestSettingsStore_EraseAheadSkipsStraddlingRecord uses a geometry where
// a record straddles a page boundary and checks the erase-ahead is skipped
// whenever its page holds any byte of the fresh record. The debris then
// triggers an arena restart on the following save.
func TestSettingsStore_EraseAheadSkipsStraddlingRecord(t *testing.T) {
	flash := NewSimFlash(12, 4) // slot 1 spans pages 0 and 1
	store, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("NewSettingsStore failed: %v", err)
	}
	if err := store.Save(1); err != nil {
		t.Fatalf("Save(1) failed: %v", err)
	}

	// Leave debris in slot 2 so the save of slot 1 wants to erase ahead.
	if err := flash.Program(2*persistRecordSize, []byte{0x00}); err != nil {
		t.Fatalf("Program failed: %v", err)
	}

	if err := store.Save(2); err != nil {
		t.Fatalf("Save(2) failed: %v", err)
	}

	// The record in slot 1 must be intact, so no erase may have happened:
	// its tail shares a page with the debris.
	var buf [persistRecordSize]byte
	if err := flash.Read(1*persistRecordSize, buf[:]); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if buf[0] != 2 || binary.LittleEndian.Uint16(buf[1:]) != Crc16(buf[:1]) {
		t.Errorf("Expected an intact record for index 2 in slot 1, got % x", buf)
	}
	for _, addr := range []int{0, 4, 8} {
		if count := flash.EraseCount(addr); count != 0 {
			t.Errorf("Expected no erase near the fresh record, got %d at %#x", count, addr)
		}
	}

	// The next save finds the debris in its target slot and restarts the
	// arena instead.
	if err := store.Save(3); err != nil {
		t.Fatalf("Save(3) failed: %v", err)
	}
	if store.Index() != 3 {
		t.Errorf("Expected index 3 after restart, got %d", store.Index())
	}
	if store.NextSlot() != 1 {
		t.Errorf("Expected the write position at slot 1 after restart, got %d", store.NextSlot())
	}
	if count := flash.EraseCount(8); count != 1 {
		t.Errorf("Expected the restart to erase the debris page once, got %d", count)
	}
}

// TestSettingsStore_BoundaryRecordSurvivesDebris drives the production flash
// geometry through the slot whose record spans two pages. With debris in the
// following slot the save must leave both pages alone, keep the new record
// readable, and recover it after a power cycle.
func TestSettingsStore_BoundaryRecordSurvivesDebris(t *testing.T) {
	flash := NewSimFlash(FlashSize, FlashPageSize)

	// Slot 170 occupies bytes 510-512, the last two bytes of page 0 and the
	// first byte of page 1. Seed a valid record just before it and debris
	// just after it.
	var seed [persistRecordSize]byte
	seed[0] = 9
	binary.LittleEndian.PutUint16(seed[1:], Crc16(seed[:1]))
	if err := flash.Program(169*persistRecordSize, seed[:]); err != nil {
		t.Fatalf("Program failed: %v", err)
	}
	if err := flash.Program(171*persistRecordSize, []byte{0x00}); err != nil {
		t.Fatalf("Program failed: %v", err)
	}

	store, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("NewSettingsStore failed: %v", err)
	}
	if store.NextSlot() != 170 {
		t.Fatalf("Expected the write position at slot 170, got %d", store.NextSlot())
	}
	if err := store.Save(5); err != nil {
		t.Fatalf("Save(5) failed: %v", err)
	}

	var buf [persistRecordSize]byte
	if err := flash.Read(170*persistRecordSize, buf[:]); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if buf[0] != 5 || binary.LittleEndian.Uint16(buf[1:]) != Crc16(buf[:1]) {
		t.Errorf("Expected an intact record for index 5 in slot 170, got % x", buf)
	}
	for _, addr := range []int{0, FlashPageSize} {
		if count := flash.EraseCount(addr); count != 0 {
			t.Errorf("Expected no erase around the boundary record, got %d at %#x", count, addr)
		}
	}

	recovered, err := NewSettingsStore(flash)
	if err != nil {
		t.Fatalf("Recovery scan failed: %v", err)
	}
	if recovered.Index() != 5 {
		t.Errorf("Expected index 5 after power cycle, got %d", recovered.Index())
	}
}

// faultyFlash wraps a FlashMemory and fails every Program call.
type faultyFlash struct {
	FlashMemory
}

func (f *faultyFlash) Program(addr int, data []byte) error {
	return fmt.Errorf("flash: program fault at %#x", addr)
}

// TestSettingsStore_ProgramFaultSurfaces verifies a medium fault comes back
// from Save as an error instead of being swallowed.
func TestSettingsStore_ProgramFaultSurfaces(t *testing.T) {
	store, err := NewSettingsStore(&faultyFlash{NewSimFlash(FlashSize, FlashPageSize)})
	if err != nil {
		t.Fatalf("NewSettingsStore failed: %v", err)
	}
	if err := store.Save(1); err == nil {
		t.Errorf("Expected Save to surface the program fault")
	}
}

// TestCrc16_Precondition pins the checksum algorithm to a known vector so
// records stay readable across firmware versions.
func TestCrc16_Precondition(t *testing.T) {
	if crc := Crc16(nil); crc != crc16Precondition {
		t.Errorf("Expected the empty CRC to equal the precondition %#04x, got %#04x", crc16Precondition, crc)
	}
	a := Crc16([]byte{0x05})
	b := Crc16([]byte{0x05})
	if a != b {
		t.Errorf("Expected a stable CRC, got %#04x then %#04x", a, b)
	}
	if a == Crc16([]byte{0x06}) {
		t.Errorf("Expected different inputs to give different CRCs")
	}
}
