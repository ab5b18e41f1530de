package trimesh

import (
	"github.com/flywave/go3d/vec3"
)

// CachedBuilder holds converted geometry so repeated collider construction
// reuses the conversion result instead of re-running the pipeline.
type CachedBuilder struct {
	Vertices []vec3.T
	Normals  []vec3.T
	Faces    []Triangle
}

// NewCachedBuilder converts raw once and caches the resulting geometry.
func NewCachedBuilder(raw *RawMesh, layout *VertexLayout, opts *Options) (*CachedBuilder, error) {
	m, err := Convert(raw, layout, opts)
	if err != nil {
		return nil, err
	}
	return &CachedBuilder{
		Vertices: m.Vertices,
		Normals:  m.Normals,
		Faces:    m.Faces,
	}, nil
}

// Build assembles a fresh TriMesh from the cached geometry. The returned
// mesh owns copies, so callers may transform it freely.
func (b *CachedBuilder) Build() *TriMesh {
	verts := make([]vec3.T, len(b.Vertices))
	copy(verts, b.Vertices)
	var normals []vec3.T
	if b.Normals != nil {
		normals = make([]vec3.T, len(b.Normals))
		copy(normals, b.Normals)
	}
	faces := make([]Triangle, len(b.Faces))
	copy(faces, b.Faces)

	m, _ := buildTriMesh(verts, normals, faces, false)
	return m
}

// BuildWithVertexTransform assembles a TriMesh with transform applied to
// every cached vertex.
func (b *CachedBuilder) BuildWithVertexTransform(transform func(vec3.T) vec3.T) *TriMesh {
	m := b.Build()
	for i := range m.Vertices {
		m.Vertices[i] = transform(m.Vertices[i])
	}
	return m
}
