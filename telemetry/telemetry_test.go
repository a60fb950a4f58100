package telemetry

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarsystem/orbit"
)

func TestCapture(t *testing.T) {
	s := orbit.DefaultSystem()
	s.Advance(0.5)

	snap := Capture(7, 0.5, s)
	assert.Equal(t, uint64(7), snap.Frame)
	require.Len(t, snap.Bodies, s.Len())
	assert.Equal(t, "sun", snap.Bodies[0].Name)

	earth, _ := s.Lookup("earth")
	p := s.Body(earth).Position()
	assert.Equal(t, BodyState{Name: "earth", X: p.X, Y: p.Y, Z: p.Z, Angle: 0.5}, snap.Bodies[earth-1])
}

func TestEncode(t *testing.T) {
	b, err := Encode(Snapshot{Frame: 2, Elapsed: 1.5, Bodies: []BodyState{{Name: "moon", X: 1, Y: -2, Angle: 3}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"frame":2,"elapsed":1.5,"bodies":[{"name":"moon","x":1,"y":-2,"z":0,"angle":3}]}`, string(b))

	var back Snapshot
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, "moon", back.Bodies[0].Name)
}

func TestNewRedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := NewRedis(ctx, "127.0.0.1:1", "")
	assert.Error(t, err)
}
