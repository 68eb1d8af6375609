// radio_sync_test.go - Tests for pairing and animation sync over the loopback radio

package main

import (
	"testing"
)

func testSyncPair(t *testing.T) (a, b *SyncController, aClock, bClock *MsClock) {
	t.Helper()
	linkA, linkB := NewLoopbackPair()
	catalog := BuiltinCatalog()

	aClock = NewMsClock()
	aEngine := NewAnimationEngine(catalog, aClock)
	aEngine.Init()
	a = NewSyncController(linkA, aEngine, aClock, catalog)

	bClock = NewMsClock()
	bEngine := NewAnimationEngine(catalog, bClock)
	bEngine.Init()
	b = NewSyncController(linkB, bEngine, bClock, catalog)
	return a, b, aClock, bClock
}

// TestLoopbackLink_Filter verifies unicast frames are dropped until the
// receiver locks a partner filter, while broadcasts always pass.
func TestLoopbackLink_Filter(t *testing.T) {
	linkA, linkB := NewLoopbackPair()

	linkA.Send(RadioPacket{Type: PacketUnicast})
	if _, ok := linkB.Receive(); ok {
		t.Errorf("Expected unicast to be dropped without a filter")
	}

	linkA.Send(RadioPacket{Type: PacketBroadcast})
	if _, ok := linkB.Receive(); !ok {
		t.Errorf("Expected broadcast to pass without a filter")
	}

	linkB.SetFilter(linkA.UID())
	linkA.Send(RadioPacket{Type: PacketUnicast})
	packet, ok := linkB.Receive()
	if !ok {
		t.Fatalf("Expected unicast to pass a matching filter")
	}
	if packet.Sender != linkA.UID() {
		t.Errorf("Expected the sender UID to be stamped on the frame")
	}
}

// TestSyncController_Pairing runs the broadcast handshake and checks both
// sides lock each other in and stop broadcasting.
func TestSyncController_Pairing(t *testing.T) {
	a, b, _, _ := testSyncPair(t)

	a.StartPairing()
	if !a.Pairing() {
		t.Fatalf("Expected pairing mode after StartPairing")
	}

	a.Cycle() // sends the request
	b.Cycle() // accepts and answers
	a.Cycle() // receives the answer

	if !a.Paired() || !b.Paired() {
		t.Fatalf("Expected both sides paired, got a=%v b=%v", a.Paired(), b.Paired())
	}
	if a.Pairing() {
		t.Errorf("Expected pairing mode to end once answered")
	}

	// The handshake settles: a few more cycles produce no endless replies.
	for i := 0; i < 10; i++ {
		a.Cycle()
		b.Cycle()
	}
	if _, ok := a.link.Receive(); ok {
		t.Errorf("Expected no residual pairing traffic toward a")
	}
	if _, ok := b.link.Receive(); ok {
		t.Errorf("Expected no residual pairing traffic toward b")
	}
}

// TestSyncController_CancelPairing verifies a called-off pairing stops the
// broadcast and leaves both sides unpaired.
func TestSyncController_CancelPairing(t *testing.T) {
	a, b, _, _ := testSyncPair(t)

	a.StartPairing()
	a.Cycle() // one request goes out
	a.CancelPairing()
	if a.Pairing() {
		t.Fatalf("Expected pairing mode to end after CancelPairing")
	}

	if _, ok := b.link.Receive(); !ok {
		t.Fatalf("Expected the request sent before the cancel to be queued")
	}
	for i := 0; i < 10; i++ {
		a.Cycle()
	}
	if _, ok := b.link.Receive(); ok {
		t.Errorf("Expected no further pairing traffic after the cancel")
	}
	if a.Paired() || b.Paired() {
		t.Errorf("Expected neither side paired, got a=%v b=%v", a.Paired(), b.Paired())
	}
}

// TestSyncController_ChangeHandshake verifies an animation change
// propagates to the partner, is persisted through the callback and is
// acknowledged back.
func TestSyncController_ChangeHandshake(t *testing.T) {
	a, b, _, _ := testSyncPair(t)
	a.StartPairing()
	a.Cycle()
	b.Cycle()
	a.Cycle()

	var persisted []uint8
	b.OnIndexChange = func(index uint8) {
		persisted = append(persisted, index)
	}

	a.engine.SetAnimation(4)
	a.NotifyChange(4)
	a.Cycle() // sends the change request
	b.Cycle() // applies it and acknowledges
	a.Cycle() // receives the acknowledgement

	if got := b.engine.CurrentAnimation(); got != 4 {
		t.Errorf("Expected the partner to switch to animation 4, got %d", got)
	}
	if len(persisted) != 1 || persisted[0] != 4 {
		t.Errorf("Expected the change callback once with index 4, got %v", persisted)
	}
	if a.changePending {
		t.Errorf("Expected the pending change cleared by the acknowledgement")
	}
	if !a.syncEnabled || !b.syncEnabled {
		t.Errorf("Expected phase sync re-enabled after the handshake")
	}
}

// TestSyncController_ChangeRetriesUntilAcked verifies the request is
// re-sent every cycle while the partner stays silent.
func TestSyncController_ChangeRetriesUntilAcked(t *testing.T) {
	a, b, _, _ := testSyncPair(t)
	a.StartPairing()
	a.Cycle()
	b.Cycle()
	a.Cycle()

	a.NotifyChange(2)
	a.Cycle()
	if !a.changePending {
		t.Fatalf("Expected the change to stay pending without an acknowledgement")
	}
	a.Cycle()
	b.Cycle() // finally processes one of the queued requests
	a.Cycle()
	if a.changePending {
		t.Errorf("Expected the pending change cleared after the partner answered")
	}
}

// TestSyncController_SyncTickRealigns verifies the periodic phase tick
// rewinds the partner's animation to its start.
func TestSyncController_SyncTickRealigns(t *testing.T) {
	a, b, aClock, bClock := testSyncPair(t)
	a.StartPairing()
	a.Cycle()
	b.Cycle()
	a.Cycle()

	// Let the partner drift into its animation.
	for i := 0; i < 700; i++ {
		bClock.AddMs(1)
		b.engine.Cycle()
	}
	drifted := b.engine.LEDSnapshot()

	aClock.AddMs(syncIntervalMs)
	a.Cycle() // emits the phase tick
	b.Cycle() // receives it and rewinds

	bClock.AddMs(1)
	b.engine.Cycle()
	realigned := b.engine.LEDSnapshot()

	// After the rewind the animation is back at its opening frame.
	freshClock := NewMsClock()
	fresh := NewAnimationEngine(BuiltinCatalog(), freshClock)
	fresh.Init()
	freshClock.AddMs(1)
	fresh.Cycle()
	if expected := fresh.LEDSnapshot(); realigned != expected {
		t.Errorf("Expected the opening frame %v after the tick, got %v (drifted from %v)",
			expected, realigned, drifted)
	}
}
