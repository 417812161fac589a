package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/geodesiclab/vec3"
)

// OBJStats describes what ReadOBJ skipped.
type OBJStats struct {
	// DroppedFaces counts "f" records with an invalid or out-of-range index.
	DroppedFaces int

	// Triangulated counts polygons with more than three corners that were fanned.
	Triangulated int
}

// LoadOBJ reads a Wavefront OBJ file from disk.
func LoadOBJ(path string) (*Mesh, OBJStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OBJStats{}, err
	}
	defer f.Close()

	return ReadOBJ(f)
}

// ReadOBJ parses the geometry of a Wavefront OBJ stream.
//
// Only "v" and "f" records are used. A face token "i/t/n" contributes the
// index before the first slash; indices are 1-based and negative values count
// back from the most recent vertex. A face with an unparsable, zero or
// out-of-range index is dropped whole. Polygons are fan-triangulated around
// their first corner. Missing vertex coordinates read as zero.
func ReadOBJ(r io.Reader) (*Mesh, OBJStats, error) {
	var (
		m     = &Mesh{}
		stats OBJStats
		idx   []int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			var c [3]float64
			for i := 0; i < 3 && i+1 < len(fields); i++ {
				c[i], _ = strconv.ParseFloat(fields[i+1], 64)
			}
			m.Vertices = append(m.Vertices, vec3.Vec{X: c[0], Y: c[1], Z: c[2]})
		case "f":
			if len(fields) < 4 {
				continue
			}
			idx = idx[:0]
			for _, tok := range fields[1:] {
				i, ok := resolveIndex(tok, len(m.Vertices))
				if !ok {
					idx = idx[:0]
					break
				}
				idx = append(idx, i)
			}
			if len(idx) < 3 {
				stats.DroppedFaces++
				continue
			}
			if len(idx) > 3 {
				stats.Triangulated++
			}
			for i := 1; i+1 < len(idx); i++ {
				m.Faces = append(m.Faces, Face{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: %v", ErrBadOBJ, err)
	}

	return m, stats, nil
}

// resolveIndex converts one face token into a 0-based vertex index.
func resolveIndex(tok string, n int) (int, bool) {
	if slash := strings.IndexByte(tok, '/'); slash >= 0 {
		tok = tok[:slash]
	}
	i, err := strconv.Atoi(tok)
	if err != nil || i == 0 {
		return 0, false
	}
	if i > 0 {
		i--
	} else {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}

	return i, true
}

// WriteOBJ writes m as OBJ: each header line as a "# " comment, vertices with
// six decimals, then 1-based triangle records.
func WriteOBJ(w io.Writer, m *Mesh, header ...string) error {
	bw := bufio.NewWriter(w)
	for _, h := range header {
		fmt.Fprintf(bw, "# %s\n", h)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}

	return bw.Flush()
}

// SaveOBJ writes m to path, creating or truncating the file.
func SaveOBJ(path string, m *Mesh, header ...string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteOBJ(f, m, header...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
