package trimesh

import (
	"bytes"

	"github.com/flywave/go3d/vec3"
)

const vec3ByteSize = 12

// extractVertices reads positions (and normals, when the layout declares
// them) out of the raw interleaved buffer. Pure transform over the input
// buffer; the buffer itself is never touched.
func extractVertices(raw *RawMesh, layout *VertexLayout) ([]vec3.T, []vec3.T, error) {
	if layout.ComponentCount != 3 {
		return nil, nil, &LayoutError{Reason: "only 3-component positions are supported"}
	}
	if raw.VertexCount < 0 {
		return nil, nil, &LayoutError{Reason: "negative vertex count"}
	}
	if raw.VertexCount == 0 {
		return nil, nil, nil
	}
	if layout.Stride == 0 {
		return nil, nil, &LayoutError{Reason: "zero stride"}
	}

	last := uint64(raw.VertexCount-1) * uint64(layout.Stride)
	if last+uint64(layout.PositionOffset)+vec3ByteSize > uint64(len(raw.VertexData)) {
		return nil, nil, &LayoutError{Reason: "position reads past end of vertex buffer"}
	}
	if layout.NormalOffset != nil {
		if last+uint64(*layout.NormalOffset)+vec3ByteSize > uint64(len(raw.VertexData)) {
			return nil, nil, &LayoutError{Reason: "normal reads past end of vertex buffer"}
		}
	}

	verts := make([]vec3.T, 0, raw.VertexCount)
	var normals []vec3.T
	if layout.NormalOffset != nil {
		normals = make([]vec3.T, 0, raw.VertexCount)
	}
	for i := 0; i < raw.VertexCount; i++ {
		base := uint32(i) * layout.Stride
		v := vec3.T{}
		readLittleByte(bytes.NewReader(raw.VertexData[base+layout.PositionOffset:]), &v)
		verts = append(verts, v)
		if layout.NormalOffset != nil {
			n := vec3.T{}
			readLittleByte(bytes.NewReader(raw.VertexData[base+*layout.NormalOffset:]), &n)
			normals = append(normals, n)
		}
	}
	return verts, normals, nil
}
