// animation_benchmark_test.go - Benchmarks for the interpreter and the settings store

package main

import (
	"testing"
)

// BenchmarkAnimationEngine_Cycle measures one main-loop pass: a clock tick
// plus a full interpreter cycle over a built-in animation.
func BenchmarkAnimationEngine_Cycle(b *testing.B) {
	catalog := BuiltinCatalog()
	clock := NewMsClock()
	engine := NewAnimationEngine(catalog, clock)
	engine.Init()
	engine.SetAnimation(1) // SoftFlashing exercises add, repeat and load

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clock.AddMs(1)
		engine.Cycle()
	}
}

// BenchmarkAnimationEngine_CycleAllAnimations rotates through the whole
// catalog to keep the measurement honest about opcode mix.
func BenchmarkAnimationEngine_CycleAllAnimations(b *testing.B) {
	catalog := BuiltinCatalog()
	clock := NewMsClock()
	engine := NewAnimationEngine(catalog, clock)
	engine.Init()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%1000 == 0 {
			engine.SetAnimation((i / 1000) % (catalog.Len() - 1))
		}
		clock.AddMs(1)
		engine.Cycle()
	}
}

// BenchmarkSettingsStore_Save measures the append path including the
// occasional arena restart once the log wraps.
func BenchmarkSettingsStore_Save(b *testing.B) {
	store, err := NewSettingsStore(NewSimFlash(FlashSize, FlashPageSize))
	if err != nil {
		b.Fatalf("NewSettingsStore failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.Save(uint8(i % 18)); err != nil {
			b.Fatalf("Save failed: %v", err)
		}
	}
}

// BenchmarkCrc16 measures the record checksum.
func BenchmarkCrc16(b *testing.B) {
	buf := []byte{0x0B}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Crc16(buf)
	}
}
