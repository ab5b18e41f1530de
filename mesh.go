package trimesh

import (
	"math"

	dvec3 "github.com/flywave/go3d/float64/vec3"

	"github.com/flywave/go3d/mat4"
	"github.com/flywave/go3d/vec3"
	"github.com/flywave/go3d/vec4"
)

// RawMesh is the immutable conversion input: an interleaved vertex buffer,
// an index sequence and the topology the indices are encoded with. The
// converter never mutates it.
type RawMesh struct {
	VertexData  []byte
	VertexCount int
	Indices     []uint32
	Topology    Topology
}

// TriMesh is the converted collision mesh: deduplicated vertices and
// filtered triangles indexing into them. Built once per conversion and
// immutable afterwards.
type TriMesh struct {
	Vertices   []vec3.T
	Normals    []vec3.T
	Faces      []Triangle
	IndexWidth int
}

func (m *TriMesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *TriMesh) FaceCount() int {
	return len(m.Faces)
}

// Indices16 flattens the triangle list into 16-bit indices. Valid only
// when IndexWidth is INDEX_WIDTH_16.
func (m *TriMesh) Indices16() []uint16 {
	out := make([]uint16, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		out = append(out, uint16(f[0]), uint16(f[1]), uint16(f[2]))
	}
	return out
}

// Indices32 flattens the triangle list into 32-bit indices.
func (m *TriMesh) Indices32() []uint32 {
	out := make([]uint32, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		out = append(out, f[0], f[1], f[2])
	}
	return out
}

func (m *TriMesh) GetBoundbox() *[6]float64 {
	minX := math.MaxFloat64
	minY := math.MaxFloat64
	minZ := math.MaxFloat64
	maxX := -math.MaxFloat64
	maxY := -math.MaxFloat64
	maxZ := -math.MaxFloat64
	for i := range m.Vertices {
		minX = math.Min(minX, float64(m.Vertices[i][0]))
		minY = math.Min(minY, float64(m.Vertices[i][1]))
		minZ = math.Min(minZ, float64(m.Vertices[i][2]))

		maxX = math.Max(maxX, float64(m.Vertices[i][0]))
		maxY = math.Max(maxY, float64(m.Vertices[i][1]))
		maxZ = math.Max(maxZ, float64(m.Vertices[i][2]))
	}
	return &[6]float64{minX, minY, minZ, maxX, maxY, maxZ}
}

func (m *TriMesh) ComputeBBox() dvec3.Box {
	if len(m.Vertices) == 0 {
		return dvec3.Box{}
	}

	bx := m.GetBoundbox()
	min := dvec3.T{bx[0], bx[1], bx[2]}
	max := dvec3.T{bx[3], bx[4], bx[5]}
	return dvec3.Box{Min: min, Max: max}
}

// RecomputeNormals replaces the carried-through normals with unit face
// normals accumulated per vertex and renormalized; every incident face
// contributes equally. Useful after welding and degenerate filtering when
// the source normals no longer match the geometry.
func (m *TriMesh) RecomputeNormals() {
	normals := make([]vec3.T, len(m.Vertices))
	for _, f := range m.Faces {
		pt1 := m.Vertices[f[0]]
		pt2 := m.Vertices[f[1]]
		pt3 := m.Vertices[f[2]]

		sub1 := vec3.Sub(&pt3, &pt2)
		sub2 := vec3.Sub(&pt1, &pt2)

		cro := vec3.Cross(&sub1, &sub2)
		l := cro.Length()
		if l == 0 {
			continue
		}
		weightedNormal := cro.Scale(1 / l)

		normals[f[0]].Add(weightedNormal)
		normals[f[1]].Add(weightedNormal)
		normals[f[2]].Add(weightedNormal)
	}

	for i := range normals {
		normals[i].Normalize()
	}

	m.Normals = normals
}

// Transform applies mat to every vertex, and its rotation part to every
// normal.
func (m *TriMesh) Transform(mat *mat4.T) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(&m.Vertices[i])
	}
	for i := range m.Normals {
		n := vec4.T{m.Normals[i][0], m.Normals[i][1], m.Normals[i][2], 0}
		r := mat.MulVec4(&n)
		m.Normals[i] = vec3.T{r[0], r[1], r[2]}
		m.Normals[i].Normalize()
	}
}
