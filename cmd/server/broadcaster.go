package main

import (
	"encoding/json"
	"sync/atomic"

	"github.com/kocheck/Hyle-sub001/internal/protocol"
	"github.com/kocheck/Hyle-sub001/internal/ws"
)

// AtomicSequence implements SequenceGenerator with a shared counter so every
// patch carries a strictly increasing sequence number.
type AtomicSequence struct {
	n uint64
}

func (s *AtomicSequence) Next() uint64 {
	return atomic.AddUint64(&s.n, 1)
}

// HubBroadcaster wraps the websocket hub and stamps outgoing patches with
// sequence numbers.
type HubBroadcaster struct {
	hub    *ws.Hub
	seq    SequenceGenerator
	logger Logger
}

func NewHubBroadcaster(hub *ws.Hub, seq SequenceGenerator, logger Logger) *HubBroadcaster {
	return &HubBroadcaster{hub: hub, seq: seq, logger: logger}
}

func (b *HubBroadcaster) BroadcastEvent(eventType string, payload any) {
	if message, ok := b.marshal(eventType, payload); ok {
		b.hub.Broadcast(message)
	}
}

func (b *HubBroadcaster) BroadcastEventTo(role ws.Role, eventType string, payload any) {
	if message, ok := b.marshal(eventType, payload); ok {
		b.hub.BroadcastTo(role, message)
	}
}

func (b *HubBroadcaster) marshal(eventType string, payload any) ([]byte, bool) {
	message, err := json.Marshal(protocol.PatchEnvelope{
		Sequence: b.seq.Next(),
		Type:     eventType,
		Payload:  payload,
	})
	if err != nil {
		b.logger.Printf("failed to marshal %s: %v", eventType, err)
		return nil, false
	}
	return message, true
}
