// radio_sync.go - Pairing and animation synchronization between two ornaments

package main

import (
	"bytes"
	"sync"
)

// UIDLength is the size of a device identity in bytes.
const UIDLength = 7

// PacketType selects the addressing mode of a radio packet.
type PacketType uint8

const (
	PacketBroadcast PacketType = 0x01 // delivered to everyone in range
	PacketUnicast   PacketType = 0x02 // delivered only through a matching partner filter
	PacketSync      PacketType = 0x03 // phase alignment tick between paired devices
)

// Handshake codes carried in the first payload byte.
const (
	HandshakePairingRequest  = 0x00 // broadcast, seeking partners
	HandshakePairingAccepted = 0x01 // broadcast, pairing request accepted
	HandshakeChangeRequest   = 0xF0 // unicast, animation change request
	HandshakeChangeAck       = 0xF1 // unicast, animation change accepted
)

// RadioPacket is one over-the-air frame. Payload[0] is the handshake code
// and Payload[1] the animation index where applicable.
type RadioPacket struct {
	Type    PacketType
	Sender  [UIDLength]byte
	Payload [2]byte
}

// RadioLink is the transport the sync controller talks through. Receive is
// nonblocking; SetFilter restricts unicast and sync delivery to one
// partner identity.
type RadioLink interface {
	Send(p RadioPacket) error
	Receive() (RadioPacket, bool)
	SetFilter(partner [UIDLength]byte)
	FlushTX()
	UID() [UIDLength]byte
}

// LoopbackLink is an in-process RadioLink. NewLoopbackPair wires two of
// them back to back; packets sent on one side arrive on the other,
// subject to the receiver's unicast filter.
type LoopbackLink struct {
	mutex     sync.Mutex
	uid       [UIDLength]byte
	filter    [UIDLength]byte
	hasFilter bool
	peer      *LoopbackLink
	inbox     chan RadioPacket
}

// NewLoopbackPair creates two connected loopback links with distinct UIDs.
func NewLoopbackPair() (*LoopbackLink, *LoopbackLink) {
	a := &LoopbackLink{inbox: make(chan RadioPacket, 16)}
	b := &LoopbackLink{inbox: make(chan RadioPacket, 16)}
	copy(a.uid[:], "ORNMNT1")
	copy(b.uid[:], "ORNMNT2")
	a.peer, b.peer = b, a
	return a, b
}

func (l *LoopbackLink) UID() [UIDLength]byte { return l.uid }

func (l *LoopbackLink) SetFilter(partner [UIDLength]byte) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.filter = partner
	l.hasFilter = true
}

func (l *LoopbackLink) Send(p RadioPacket) error {
	p.Sender = l.uid
	l.peer.deliver(p)
	return nil
}

func (l *LoopbackLink) deliver(p RadioPacket) {
	l.mutex.Lock()
	if p.Type != PacketBroadcast {
		if !l.hasFilter || !bytes.Equal(p.Sender[:], l.filter[:]) {
			l.mutex.Unlock()
			return
		}
	}
	l.mutex.Unlock()
	select {
	case l.inbox <- p:
	default: // radio drops frames when nobody drains them
	}
}

func (l *LoopbackLink) Receive() (RadioPacket, bool) {
	select {
	case p := <-l.inbox:
		return p, true
	default:
		return RadioPacket{}, false
	}
}

// FlushTX drops any frames sent but not yet received by the peer.
func (l *LoopbackLink) FlushTX() {
	for {
		select {
		case <-l.peer.inbox:
		default:
			return
		}
	}
}

// syncIntervalMs is how often a paired device emits a phase tick.
const syncIntervalMs = 5000

// SyncController runs the pairing and animation-change handshake over a
// RadioLink and keeps two paired ornaments phase-aligned. Call Cycle from
// the main loop; it never blocks.
type SyncController struct {
	link    RadioLink
	engine  *AnimationEngine
	clock   *MsClock
	catalog *Catalog

	pairing       bool
	gotPartner    bool
	partner       [UIDLength]byte
	changePending bool
	pendingIndex  uint8
	syncEnabled   bool
	lastSyncSent  uint16

	// OnIndexChange is called when the partner switches us to another
	// animation, so the caller can persist the new selection.
	OnIndexChange func(index uint8)
}

func NewSyncController(link RadioLink, engine *AnimationEngine, clock *MsClock, catalog *Catalog) *SyncController {
	return &SyncController{
		link:    link,
		engine:  engine,
		clock:   clock,
		catalog: catalog,
	}
}

// StartPairing begins broadcasting pairing requests until a partner
// answers.
func (s *SyncController) StartPairing() {
	s.pairing = true
	s.gotPartner = false
}

// CancelPairing stops an unanswered pairing broadcast.
func (s *SyncController) CancelPairing() {
	s.pairing = false
}

// Pairing reports whether a pairing broadcast is in progress.
func (s *SyncController) Pairing() bool { return s.pairing }

// Paired reports whether a partner identity has been locked in.
func (s *SyncController) Paired() bool { return s.gotPartner }

// NotifyChange starts re-sending an animation change request until the
// partner acknowledges it. Phase sync pauses for the duration so the two
// devices do not fight over the clock mid-switch.
func (s *SyncController) NotifyChange(index uint8) {
	s.link.FlushTX()
	s.changePending = true
	s.pendingIndex = index
	s.syncEnabled = false
}

// Cycle sends at most one pending frame and handles at most one received
// frame. It is cheap enough to run on every main-loop pass.
func (s *SyncController) Cycle() {
	if s.pairing {
		s.link.Send(RadioPacket{
			Type:    PacketBroadcast,
			Payload: [2]byte{HandshakePairingRequest, 0},
		})
	} else if s.changePending {
		s.link.Send(RadioPacket{
			Type:    PacketUnicast,
			Payload: [2]byte{HandshakeChangeRequest, s.pendingIndex},
		})
	} else if s.gotPartner && s.syncEnabled {
		now := s.clock.Now()
		if now-s.lastSyncSent >= syncIntervalMs {
			s.lastSyncSent = now
			s.link.Send(RadioPacket{Type: PacketSync})
		}
	}

	packet, ok := s.link.Receive()
	if !ok {
		return
	}
	switch packet.Type {
	case PacketBroadcast:
		s.handleBroadcast(packet)
	case PacketUnicast:
		s.handleUnicast(packet)
	case PacketSync:
		if s.gotPartner {
			s.engine.ResyncPhase()
			// Suppress our own tick for a while so the alignment settles
			// in one direction.
			s.lastSyncSent = s.clock.Now()
		}
	}
}

func (s *SyncController) handleBroadcast(packet RadioPacket) {
	switch {
	case !s.gotPartner:
		s.gotPartner = true
		s.pairing = false
		s.partner = packet.Sender
		s.link.SetFilter(packet.Sender)
		s.syncEnabled = true
		s.link.FlushTX()
	case bytes.Equal(packet.Sender[:], s.partner[:]):
		// Our known partner came back; stop broadcasting ourselves.
		s.pairing = false
	default:
		return
	}
	// Only a request gets an answer. Acknowledging an accept would have the
	// two devices acknowledging each other's acknowledgements forever.
	if packet.Payload[0] == HandshakePairingRequest {
		s.link.Send(RadioPacket{
			Type:    PacketBroadcast,
			Payload: [2]byte{HandshakePairingAccepted, 0},
		})
	}
}

func (s *SyncController) handleUnicast(packet RadioPacket) {
	switch packet.Payload[0] {
	case HandshakeChangeRequest:
		index := packet.Payload[1]
		if int(index) != s.engine.CurrentAnimation() && int(index) < s.catalog.Len() {
			s.engine.SetAnimation(int(index))
			if s.OnIndexChange != nil {
				s.OnIndexChange(index)
			}
		}
		s.syncEnabled = true
		s.link.FlushTX()
		s.link.Send(RadioPacket{
			Type:    PacketUnicast,
			Payload: [2]byte{HandshakeChangeAck, uint8(s.engine.CurrentAnimation())},
		})
	case HandshakeChangeAck:
		if s.changePending && packet.Payload[1] == s.pendingIndex {
			s.link.FlushTX()
			s.changePending = false
			s.syncEnabled = true
		}
	}
}
