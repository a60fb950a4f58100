// Command meshdump writes the generated sphere mesh as Wavefront OBJ, or just
// its vertex and index counts.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"solarsystem/quarkgl"
)

func main() {
	var (
		radius  = flag.Float64("radius", 1, "Sphere radius.")
		sectors = flag.Int("sectors", 36, "Longitude subdivisions.")
		stacks  = flag.Int("stacks", 18, "Latitude subdivisions.")
		format  = flag.String("format", "obj", "obj|counts.")
		outPath = flag.String("out", "", "Output file (default stdout).")
	)
	flag.Parse()

	if *sectors <= 0 || *stacks <= 0 {
		fatalf("usage: meshdump [-radius 1] [-sectors 36] [-stacks 18] [-format obj|counts] [-out file]")
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fatalf("create: %v", err)
		}
		defer f.Close()
		out = f
	}

	m := quarkgl.NewSphere(float32(*radius), *sectors, *stacks)
	var err error
	switch strings.ToLower(*format) {
	case "obj":
		err = writeOBJ(out, m)
	case "counts":
		_, err = fmt.Fprintf(out, "vertices %d\nindices %d\ntriangles %d\n", m.VertexCount(), m.IndexCount(), m.IndexCount()/3)
	default:
		fatalf("unknown format: %s", *format)
	}
	if err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// writeOBJ writes one "v" line per vertex and one "f" line per triangle.
// OBJ face indices are 1-based.
func writeOBJ(w io.Writer, m *quarkgl.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# sphere: %d vertices, %d triangles\n", m.VertexCount(), m.IndexCount()/3)
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		fmt.Fprintf(bw, "f %d %d %d\n", m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1)
	}
	return bw.Flush()
}
