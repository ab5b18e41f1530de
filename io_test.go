package trimesh

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/flywave/go3d/vec3"
)

// TestTriMeshRoundtrip checks the binary marshal/unmarshal cycle.
func TestTriMeshRoundtrip(t *testing.T) {
	m := &TriMesh{
		Vertices: []vec3.T{
			{0, 0, 0},
			{1, 0, 0},
			{0, 1, 0},
		},
		Normals: []vec3.T{
			{0, 0, 1},
			{0, 0, 1},
			{0, 0, 1},
		},
		Faces:      []Triangle{{0, 1, 2}},
		IndexWidth: INDEX_WIDTH_16,
	}

	bf := &bytes.Buffer{}
	TriMeshMarshal(bf, m)

	got, err := TriMeshUnMarshal(bf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(m, got) {
		t.Errorf("Expected roundtripped mesh %v, got %v", m, got)
	}
}

// TestTriMeshUnMarshalBadIndices checks that a stream whose faces point
// past the vertex array is rejected instead of decoded.
func TestTriMeshUnMarshalBadIndices(t *testing.T) {
	m := &TriMesh{
		Vertices:   []vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:      []Triangle{{0, 1, 9}},
		IndexWidth: INDEX_WIDTH_16,
	}
	bf := &bytes.Buffer{}
	TriMeshMarshal(bf, m)

	if _, err := TriMeshUnMarshal(bf); err == nil {
		t.Errorf("Expected out-of-range index error, got nil")
	}
}

// TestTriMeshUnMarshalBadSignature checks signature validation.
func TestTriMeshUnMarshalBadSignature(t *testing.T) {
	bf := bytes.NewBufferString("nope....")
	if _, err := TriMeshUnMarshal(bf); err == nil {
		t.Errorf("Expected signature error, got nil")
	}
}
