package trimesh

import (
	"github.com/flywave/go3d/vec3"
)

// buildTriMesh assembles the final mesh, picking the narrowest index width
// that can address the vertex set. In strict mode an empty result is an
// error; otherwise a zero-vertex, zero-triangle mesh is a valid output.
func buildTriMesh(verts, normals []vec3.T, faces []Triangle, strict bool) (*TriMesh, error) {
	if strict && (len(verts) == 0 || len(faces) == 0) {
		return nil, &EmptyMeshError{}
	}
	width := INDEX_WIDTH_32
	if len(verts) <= MAX_U16_VERTEX_COUNT {
		width = INDEX_WIDTH_16
	}
	return &TriMesh{
		Vertices:   verts,
		Normals:    normals,
		Faces:      faces,
		IndexWidth: width,
	}, nil
}

// Convert runs the full pipeline: extract positions under the layout,
// expand the topology into triangles, weld vertices within opts.Epsilon,
// drop degenerate triangles and assemble the TriMesh. Each stage either
// produces a value or fails the whole conversion; nothing partial is
// returned.
func Convert(raw *RawMesh, layout *VertexLayout, opts *Options) (*TriMesh, error) {
	if raw == nil || layout == nil {
		return nil, &LayoutError{Reason: "nil mesh or layout"}
	}
	if opts == nil || opts.Epsilon <= 0 {
		var eps float32
		if opts != nil {
			eps = opts.Epsilon
		}
		return nil, &ToleranceError{Value: eps}
	}
	if opts.AreaEpsilon < 0 {
		return nil, &ToleranceError{Value: opts.AreaEpsilon}
	}

	verts, normals, err := extractVertices(raw, layout)
	if err != nil {
		return nil, err
	}

	faces, err := expandTopology(raw.Indices, raw.Topology)
	if err != nil {
		return nil, err
	}
	for i := range faces {
		f := &faces[i]
		if int(f[0]) >= len(verts) || int(f[1]) >= len(verts) || int(f[2]) >= len(verts) {
			return nil, &TopologyError{Topology: raw.Topology, Count: len(raw.Indices), Reason: "index out of vertex range"}
		}
	}

	verts, normals, faces, err = dedupVertices(verts, normals, faces, opts.Epsilon)
	if err != nil {
		return nil, err
	}

	faces = filterDegenerate(verts, faces, opts.AreaEpsilon)

	return buildTriMesh(verts, normals, faces, opts.Strict)
}
