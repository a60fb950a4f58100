// Package telemetry publishes per-frame body state for external viewers.
package telemetry

import (
	"context"
	"encoding/json"

	"solarsystem/orbit"
)

// DefaultChannel is the redis channel snapshots are published on.
const DefaultChannel = "orbit.step"

// BodyState is one body's state in a snapshot.
type BodyState struct {
	Name  string  `json:"name"`
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Z     float32 `json:"z"`
	Angle float32 `json:"angle"`
}

// Snapshot is the state of the whole system after a frame.
type Snapshot struct {
	Frame   uint64      `json:"frame"`
	Elapsed float64     `json:"elapsed"` // simulated seconds since start
	Bodies  []BodyState `json:"bodies"`
}

// Publisher sends snapshots somewhere.
type Publisher interface {
	Publish(ctx context.Context, snap Snapshot) error
	Close() error
}

// Capture records the current state of every body in registration order.
func Capture(frame uint64, elapsed float64, s *orbit.System) Snapshot {
	snap := Snapshot{Frame: frame, Elapsed: elapsed, Bodies: make([]BodyState, 0, s.Len())}
	s.Each(func(_ orbit.BodyID, b *orbit.Body) {
		p := b.Position()
		snap.Bodies = append(snap.Bodies, BodyState{Name: b.Name(), X: p.X, Y: p.Y, Z: p.Z, Angle: b.Angle()})
	})
	return snap
}

// Encode returns the wire form of a snapshot.
func Encode(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}
