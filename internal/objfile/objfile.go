// Package objfile loads Wavefront OBJ triangle meshes referenced by mesh
// assets. Only geometry is read (v and f lines); materials, UVs, and normals
// in the file are ignored. The mesh asset's non-uniform scale is applied to
// every vertex at load time, matching how the engine consumes the asset.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Mesh is a scaled triangle mesh: vertex positions plus triangles as vertex
// index triples (0-based after loading).
type Mesh struct {
	Vertices [][3]float64
	Tris     [][3]int
}

// Load reads an OBJ file and applies the given per-axis scale.
func Load(path string, scale [3]float64) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Decode(f, scale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode reads OBJ geometry from r and applies the given per-axis scale.
// Faces with more than three vertices are fan-triangulated. Indices may be
// 1-based or negative (relative to the vertices seen so far).
func Decode(r io.Reader, scale [3]float64) (*Mesh, error) {
	m := &Mesh{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var v [3]float64
			for i := 0; i < 3; i++ {
				c, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad coordinate %q", lineNo, fields[i+1])
				}
				v[i] = c * scale[i]
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, fv := range fields[1:] {
				i, err := faceIndex(fv, len(m.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx = append(idx, i)
			}
			for i := 1; i+1 < len(idx); i++ {
				m.Tris = append(m.Tris, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(m.Vertices) == 0 || len(m.Tris) == 0 {
		return nil, fmt.Errorf("no geometry")
	}
	return m, nil
}

// faceIndex resolves one face vertex spec ("i", "i/t", "i//n", "i/t/n") to a
// 0-based vertex index. count is the number of vertices read so far, used for
// negative (relative) indices.
func faceIndex(spec string, count int) (int, error) {
	if j := strings.IndexByte(spec, '/'); j >= 0 {
		spec = spec[:j]
	}
	i, err := strconv.Atoi(spec)
	if err != nil || i == 0 {
		return 0, fmt.Errorf("bad face index %q", spec)
	}
	if i < 0 {
		i += count
	} else {
		i--
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("face index %q out of range", spec)
	}
	return i, nil
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max [3]float64) {
	if len(m.Vertices) == 0 {
		return min, max
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max
}
