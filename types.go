package trimesh

const TRIMESH_SIGNATURE string = "fwcm"
const TRIMESHEXT string = ".ctm"
const V1 uint32 = 1

// Topology describes how an index sequence maps to triangles.
type Topology uint32

const (
	TOPOLOGY_TRIANGLE_LIST  Topology = 0
	TOPOLOGY_TRIANGLE_STRIP Topology = 1
	TOPOLOGY_TRIANGLE_FAN   Topology = 2
)

// Bytes per index in the assembled mesh.
const (
	INDEX_WIDTH_16 = 2
	INDEX_WIDTH_32 = 4
)

// Largest vertex count addressable with 16-bit indices.
const MAX_U16_VERTEX_COUNT = 65536

// Triangle is an ordered triple of indices into a vertex sequence.
type Triangle [3]uint32

// VertexLayout describes where positions (and optionally normals) live
// inside an interleaved vertex buffer. Offsets are in bytes from the start
// of each vertex record.
type VertexLayout struct {
	Stride         uint32
	PositionOffset uint32
	NormalOffset   *uint32
	ComponentCount uint32
}

// Options carries the conversion tolerances. Epsilon is the weld distance,
// AreaEpsilon the smallest triangle area that survives filtering. Strict
// makes an empty result an error.
type Options struct {
	Epsilon     float32
	AreaEpsilon float32
	Strict      bool
}
