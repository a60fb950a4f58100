package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarsystem/quarkgl"
)

func TestWriteOBJ(t *testing.T) {
	m := quarkgl.NewSphere(1, 4, 2)

	var buf bytes.Buffer
	require.NoError(t, writeOBJ(&buf, m))

	var vs, fs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			vs = append(vs, line)
		case strings.HasPrefix(line, "f "):
			fs = append(fs, line)
		}
	}
	assert.Len(t, vs, m.VertexCount())
	assert.Len(t, fs, m.IndexCount()/3)

	// North pole first; faces are 1-based.
	var x, y, z float32
	_, err := fmt.Sscanf(vs[0], "v %g %g %g", &x, &y, &z)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
	assert.InDelta(t, 1, z, 1e-6)
	assert.Equal(t, "f 2 6 7", fs[0])
}

func TestWriteOBJEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOBJ(&buf, &quarkgl.Mesh{}))
	assert.Equal(t, "# sphere: 0 vertices, 0 triangles\n", buf.String())
}
