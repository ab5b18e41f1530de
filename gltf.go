package trimesh

import (
	"bytes"

	"github.com/flywave/go3d/vec3"

	"github.com/qmuntal/gltf"
)

// PrimitiveRawMesh reads the POSITION attribute (and NORMAL, when present)
// plus the index accessor of a glTF primitive and packs them into a
// RawMesh with a matching VertexLayout, so host integrations can feed glTF
// geometry straight into Convert.
func PrimitiveRawMesh(doc *gltf.Document, ps *gltf.Primitive) (*RawMesh, *VertexLayout, error) {
	var topo Topology
	switch ps.Mode {
	case gltf.PrimitiveTriangles:
		topo = TOPOLOGY_TRIANGLE_LIST
	case gltf.PrimitiveTriangleStrip:
		topo = TOPOLOGY_TRIANGLE_STRIP
	case gltf.PrimitiveTriangleFan:
		topo = TOPOLOGY_TRIANGLE_FAN
	default:
		return nil, nil, ErrUnsupportedMode
	}

	if ps.Indices == nil {
		return nil, nil, ErrNoIndices
	}
	indices, err := readIndexAccessor(doc, *ps.Indices)
	if err != nil {
		return nil, nil, err
	}

	posIdx, ok := ps.Attributes["POSITION"]
	if !ok {
		return nil, nil, ErrNoVertexPosition
	}
	positions, err := readVec3Accessor(doc, posIdx)
	if err != nil {
		return nil, nil, err
	}

	var normals []vec3.T
	if nlIdx, ok := ps.Attributes["NORMAL"]; ok {
		nl, err := readVec3Accessor(doc, nlIdx)
		if err == nil && len(nl) == len(positions) {
			normals = nl
		}
	}

	layout := &VertexLayout{
		Stride:         vec3ByteSize,
		PositionOffset: 0,
		ComponentCount: 3,
	}
	bf := &bytes.Buffer{}
	if normals != nil {
		layout.Stride = 2 * vec3ByteSize
		off := uint32(vec3ByteSize)
		layout.NormalOffset = &off
		for i := range positions {
			writeLittleByte(bf, &positions[i])
			writeLittleByte(bf, &normals[i])
		}
	} else {
		for i := range positions {
			writeLittleByte(bf, &positions[i])
		}
	}

	raw := &RawMesh{
		VertexData:  bf.Bytes(),
		VertexCount: len(positions),
		Indices:     indices,
		Topology:    topo,
	}
	return raw, layout, nil
}

func accessorBytes(doc *gltf.Document, accIdx uint32) (*gltf.Accessor, []byte, uint32, error) {
	acc := doc.Accessors[int(accIdx)]
	if acc.BufferView == nil {
		return nil, nil, 0, &LayoutError{Reason: "accessor without buffer view"}
	}
	view := doc.BufferViews[int(*acc.BufferView)]
	buff := doc.Buffers[int(view.Buffer)]
	start := uint64(view.ByteOffset) + uint64(acc.ByteOffset)
	end := uint64(view.ByteOffset) + uint64(view.ByteLength)
	if end > uint64(len(buff.Data)) || start > end {
		return nil, nil, 0, &LayoutError{Reason: "accessor reads past end of buffer"}
	}
	return acc, buff.Data[start:end], view.ByteStride, nil
}

func readIndexAccessor(doc *gltf.Document, accIdx uint32) ([]uint32, error) {
	acc, data, _, err := accessorBytes(doc, accIdx)
	if err != nil {
		return nil, err
	}
	bytePerIndices := 1
	if acc.ComponentType == gltf.ComponentShort || acc.ComponentType == gltf.ComponentUshort {
		bytePerIndices = 2
	} else if acc.ComponentType == gltf.ComponentUint || acc.ComponentType == gltf.ComponentFloat {
		bytePerIndices = 4
	}
	if int(acc.Count)*bytePerIndices > len(data) {
		return nil, &LayoutError{Reason: "index accessor reads past end of buffer"}
	}

	bf := bytes.NewBuffer(data[:int(acc.Count)*bytePerIndices])
	out := make([]uint32, acc.Count)
	for i := range out {
		switch bytePerIndices {
		case 1:
			var v uint8
			readLittleByte(bf, &v)
			out[i] = uint32(v)
		case 2:
			var v uint16
			readLittleByte(bf, &v)
			out[i] = uint32(v)
		default:
			var v uint32
			readLittleByte(bf, &v)
			out[i] = v
		}
	}
	return out, nil
}

func readVec3Accessor(doc *gltf.Document, accIdx uint32) ([]vec3.T, error) {
	acc, data, stride, err := accessorBytes(doc, accIdx)
	if err != nil {
		return nil, err
	}
	if stride == 0 {
		stride = vec3ByteSize
	}
	out := make([]vec3.T, 0, acc.Count)
	for i := uint32(0); i < acc.Count; i++ {
		base := uint64(i) * uint64(stride)
		if base+vec3ByteSize > uint64(len(data)) {
			return nil, &LayoutError{Reason: "vec3 accessor reads past end of buffer"}
		}
		v := vec3.T{}
		readLittleByte(bytes.NewReader(data[base:]), &v)
		out = append(out, v)
	}
	return out, nil
}
