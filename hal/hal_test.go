package hal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameClock(t *testing.T) {
	now := time.Unix(100, 0)
	c := newFrameClock(func() time.Time { return now })

	assert.Equal(t, 0.0, c.step(), "first step")
	now = now.Add(250 * time.Millisecond)
	assert.InDelta(t, 0.25, c.step(), 1e-9)
	assert.Equal(t, 0.0, c.step(), "no time passed")
	now = now.Add(-time.Second)
	assert.Equal(t, 0.0, c.step(), "clock went backwards")
}

func TestFramebufferResizeAndClear(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	assert.Equal(t, 8, fb.StrideBytes())
	assert.Len(t, fb.Buffer(), 24)

	assert.False(t, fb.resize(4, 3))
	assert.True(t, fb.resize(6, 2))
	assert.Equal(t, 6, fb.Width())
	assert.Equal(t, 2, fb.Height())
	assert.Len(t, fb.Buffer(), 24)

	fb.ClearRGB(0xFF, 0, 0)
	assert.Equal(t, byte(0x00), fb.Buffer()[0])
	assert.Equal(t, byte(0xF8), fb.Buffer()[1])

	pix := make([]byte, 6*2*4)
	fb.snapshotRGBA(pix)
	assert.Equal(t, []byte{0xFF, 0, 0, 0xFF}, pix[0:4])
	assert.Equal(t, []byte{0xFF, 0, 0, 0xFF}, pix[len(pix)-4:])
}

func TestRGB565RoundTripExtremes(t *testing.T) {
	r, g, b := rgb888From565(rgb565(0xFF, 0xFF, 0xFF))
	assert.Equal(t, [3]uint8{0xFF, 0xFF, 0xFF}, [3]uint8{r, g, b})
	r, g, b = rgb888From565(rgb565(0, 0, 0))
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}

func TestRunHeadlessTickBudget(t *testing.T) {
	var updates, renders int
	var resized [2]int
	var dts []float64

	err := RunHeadless(context.Background(), func(h HAL) (Handlers, error) {
		require.NotNil(t, h.Logger())
		require.NotNil(t, h.Input().Keyboard())
		return Handlers{
			Update: func(dt float64) error { updates++; dts = append(dts, dt); return nil },
			Render: func(fb Framebuffer) { renders++ },
			Resize: func(w, h int) { resized = [2]int{w, h} },
		}, nil
	}, HeadlessConfig{Hz: 500, Ticks: 5, FixedStep: true, Host: HostConfig{Width: 32, Height: 16}})

	require.NoError(t, err)
	assert.Equal(t, 5, updates)
	assert.Equal(t, 5, renders)
	assert.Equal(t, [2]int{32, 16}, resized)
	for _, dt := range dts {
		assert.InDelta(t, 0.002, dt, 1e-9)
	}
}

func TestRunHeadlessQuit(t *testing.T) {
	n := 0
	err := RunHeadless(context.Background(), func(HAL) (Handlers, error) {
		return Handlers{Update: func(float64) error {
			n++
			if n == 3 {
				return ErrQuit
			}
			return nil
		}}, nil
	}, HeadlessConfig{Hz: 1000})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRunHeadlessErrors(t *testing.T) {
	boom := errors.New("boom")

	err := RunHeadless(context.Background(), func(HAL) (Handlers, error) {
		return Handlers{}, boom
	}, HeadlessConfig{})
	assert.ErrorIs(t, err, boom)

	err = RunHeadless(context.Background(), func(HAL) (Handlers, error) {
		return Handlers{Update: func(float64) error { return boom }}, nil
	}, HeadlessConfig{Hz: 1000})
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = RunHeadless(ctx, func(HAL) (Handlers, error) { return Handlers{}, nil }, HeadlessConfig{Hz: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
