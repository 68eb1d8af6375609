// persist_store.go - Log-structured wear-leveling store for the animation selection

package main

import (
	"encoding/binary"
	"fmt"
)

// persistRecordSize is the on-medium footprint of one settings record:
// one index byte followed by a little-endian CRC-16F/3 of that byte.
const persistRecordSize = 3

// SettingsStore persists the selected animation index as an append-only
// record log over a FlashMemory. Each save goes to the next slot, so a
// full arena of writes touches every page once before any page is erased
// twice. Recovery scans the whole arena and keeps the last record whose
// CRC checks out.
type SettingsStore struct {
	flash FlashMemory
	slots int

	index    uint8
	nextSlot int
}

// NewSettingsStore scans the medium for the latest valid record and loads
// it. With no valid record anywhere the store starts at index 0 and writes
// from slot 0.
func NewSettingsStore(flash FlashMemory) (*SettingsStore, error) {
	s := &SettingsStore{
		flash: flash,
		slots: flash.Size() / persistRecordSize,
	}
	if s.slots == 0 {
		return nil, fmt.Errorf("persist: medium of %d bytes holds no record", flash.Size())
	}
	if err := s.scan(); err != nil {
		return nil, err
	}
	return s, nil
}

// scan walks every slot in order. Later valid records supersede earlier
// ones; the first fully erased slot after the latest valid record becomes
// the write position.
func (s *SettingsStore) scan() error {
	var (
		buf        [persistRecordSize]byte
		foundValid bool
		foundEmpty bool
	)
	s.index = 0
	s.nextSlot = 0
	for slot := 0; slot < s.slots; slot++ {
		if err := s.flash.Read(slot*persistRecordSize, buf[:]); err != nil {
			return fmt.Errorf("persist: scanning slot %d: %w", slot, err)
		}
		stored := binary.LittleEndian.Uint16(buf[1:])
		if stored == Crc16(buf[:1]) {
			s.index = buf[0]
			s.nextSlot = (slot + 1) % s.slots
			foundValid = true
			foundEmpty = false
			continue
		}
		if foundValid && !foundEmpty && isErasedRecord(buf) {
			s.nextSlot = slot
			foundEmpty = true
		}
	}
	return nil
}

func isErasedRecord(buf [persistRecordSize]byte) bool {
	for _, b := range buf {
		if b != FlashErased {
			return false
		}
	}
	return true
}

// Index returns the loaded or last saved animation index.
func (s *SettingsStore) Index() uint8 {
	return s.index
}

// Save appends a record for index at the write position and advances it.
// If the slot after the write is not erased, its page is erased ahead of
// time so the following save finds clean cells. When that page also holds
// any byte of the record just written the erase is skipped entirely; the
// debris is left for the arena restart to clear.
//
// A non-erased write target means the log wrapped around the arena (or a
// torn write was left behind). Recovery relies on records existing only
// between the arena base and the cursor, so in that case the whole arena
// is erased and the log restarts from slot 0.
func (s *SettingsStore) Save(index uint8) error {
	var record [persistRecordSize]byte
	record[0] = index
	binary.LittleEndian.PutUint16(record[1:], Crc16(record[:1]))

	empty, err := s.isSlotErased(s.nextSlot)
	if err != nil {
		return err
	}
	if !empty {
		if err := s.eraseArena(); err != nil {
			return err
		}
		s.nextSlot = 0
	}
	addr := s.nextSlot * persistRecordSize
	if err := s.flash.Program(addr, record[:]); err != nil {
		return fmt.Errorf("persist: programming slot %d: %w", s.nextSlot, err)
	}
	s.index = index
	s.nextSlot = (s.nextSlot + 1) % s.slots
	if s.nextSlot == 0 {
		// The wrap is handled by the arena restart on the next save;
		// erasing ahead here would destroy live records at the base.
		return nil
	}

	nextAddr := s.nextSlot * persistRecordSize
	empty, err = s.isSlotErased(s.nextSlot)
	if err != nil {
		return err
	}
	if !empty {
		pageSize := s.flash.PageSize()
		tailPage := (addr + persistRecordSize - 1) / pageSize
		if nextAddr/pageSize == tailPage {
			// The page holding the debris also holds the tail of the
			// record just written. Erasing it would corrupt that record,
			// so the debris stays until the arena restart clears it.
			return nil
		}
		if err := s.flash.ErasePage(nextAddr); err != nil {
			return fmt.Errorf("persist: erasing ahead at %#x: %w", nextAddr, err)
		}
	}
	return nil
}

func (s *SettingsStore) eraseArena() error {
	pageSize := s.flash.PageSize()
	for addr := 0; addr < s.flash.Size(); addr += pageSize {
		if err := s.flash.ErasePage(addr); err != nil {
			return fmt.Errorf("persist: erasing arena page at %#x: %w", addr, err)
		}
	}
	return nil
}

func (s *SettingsStore) isSlotErased(slot int) (bool, error) {
	var buf [persistRecordSize]byte
	if err := s.flash.Read(slot*persistRecordSize, buf[:]); err != nil {
		return false, fmt.Errorf("persist: reading slot %d: %w", slot, err)
	}
	return isErasedRecord(buf), nil
}

// Slots returns the number of record slots on the medium.
func (s *SettingsStore) Slots() int {
	return s.slots
}

// NextSlot returns the slot the next Save will write to.
func (s *SettingsStore) NextSlot() int {
	return s.nextSlot
}
