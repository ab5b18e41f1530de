package trimesh

import (
	"testing"

	"github.com/flywave/go3d/vec3"
)

// TestDedupMergesCloseVertices checks that vertices within epsilon collapse
// into the first-seen representative and indices are remapped.
func TestDedupMergesCloseVertices(t *testing.T) {
	verts := []vec3.T{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1e-6, 0},
	}
	faces := []Triangle{{0, 1, 2}}

	outVerts, _, outFaces, err := dedupVertices(verts, nil, faces, 1e-5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(outVerts) != 2 {
		t.Fatalf("Expected 2 vertices, got %d", len(outVerts))
	}
	if outVerts[0] != verts[0] || outVerts[1] != verts[1] {
		t.Errorf("Expected first-seen order %v %v, got %v %v", verts[0], verts[1], outVerts[0], outVerts[1])
	}
	if outFaces[0] != (Triangle{0, 1, 0}) {
		t.Errorf("Expected remapped triangle {0 1 0}, got %v", outFaces[0])
	}
}

// TestDedupKeepsDistantVertices checks that vertices beyond epsilon both
// survive.
func TestDedupKeepsDistantVertices(t *testing.T) {
	verts := []vec3.T{
		{0, 0, 0},
		{0, 2e-5, 0},
	}
	outVerts, _, _, err := dedupVertices(verts, nil, nil, 1e-5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(outVerts) != 2 {
		t.Errorf("Expected 2 vertices, got %d", len(outVerts))
	}
}

// TestDedupKeepsFirstNormal checks that a welded vertex keeps the
// first-seen normal instead of averaging.
func TestDedupKeepsFirstNormal(t *testing.T) {
	verts := []vec3.T{
		{0, 0, 0},
		{0, 0, 1e-7},
	}
	normals := []vec3.T{
		{0, 0, 1},
		{0, 1, 0},
	}
	outVerts, outNormals, _, err := dedupVertices(verts, normals, nil, 1e-5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(outVerts) != 1 || len(outNormals) != 1 {
		t.Fatalf("Expected 1 vertex and 1 normal, got %d and %d", len(outVerts), len(outNormals))
	}
	if outNormals[0] != (vec3.T{0, 0, 1}) {
		t.Errorf("Expected first-seen normal {0 0 1}, got %v", outNormals[0])
	}
}

// TestDedupCrossesCellBoundary checks the neighbor-cell probe: two vertices
// within epsilon but in adjacent grid cells still weld.
func TestDedupCrossesCellBoundary(t *testing.T) {
	// eps = 1.0 puts these on either side of the x=1 cell boundary.
	verts := []vec3.T{
		{0.95, 0, 0},
		{1.05, 0, 0},
	}
	outVerts, _, _, err := dedupVertices(verts, nil, nil, 1.0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(outVerts) != 1 {
		t.Errorf("Expected 1 vertex after boundary weld, got %d", len(outVerts))
	}
}

// TestDedupHugeCoordinates checks that coordinates far beyond the grid's
// int32 cell range still bucket deterministically: distant vertices stay
// distinct and coincident ones still weld.
func TestDedupHugeCoordinates(t *testing.T) {
	verts := []vec3.T{
		{1e20, 0, 0},
		{-1e20, 0, 0},
		{1e20, 0, 0},
	}
	outVerts, _, _, err := dedupVertices(verts, nil, nil, 1e-7)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(outVerts) != 2 {
		t.Fatalf("Expected 2 vertices, got %d", len(outVerts))
	}
	if outVerts[0] != (vec3.T{1e20, 0, 0}) || outVerts[1] != (vec3.T{-1e20, 0, 0}) {
		t.Errorf("Expected first-seen order to survive, got %v", outVerts)
	}
}

// TestDedupTolerance checks the epsilon validation.
func TestDedupTolerance(t *testing.T) {
	for _, eps := range []float32{0, -1e-5} {
		_, _, _, err := dedupVertices([]vec3.T{{0, 0, 0}}, nil, nil, eps)
		if err == nil {
			t.Fatalf("Expected ToleranceError for eps=%g, got nil", eps)
		}
		if _, ok := err.(*ToleranceError); !ok {
			t.Errorf("Expected ToleranceError, got %T", err)
		}
	}
}
