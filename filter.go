package trimesh

import (
	"github.com/flywave/go3d/vec3"
)

func triangleArea(verts []vec3.T, f *Triangle) float32 {
	pt1 := verts[f[0]]
	pt2 := verts[f[1]]
	pt3 := verts[f[2]]

	sub1 := vec3.Sub(&pt2, &pt1)
	sub2 := vec3.Sub(&pt3, &pt1)
	cro := vec3.Cross(&sub1, &sub2)
	return cro.Length() / 2
}

// filterDegenerate drops triangles with repeated indices or area at or
// below areaEps. Surviving triangles keep their relative order and are
// not renumbered. An all-degenerate input yields an empty, valid result.
func filterDegenerate(verts []vec3.T, faces []Triangle, areaEps float32) []Triangle {
	out := make([]Triangle, 0, len(faces))
	for i := range faces {
		f := &faces[i]
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			continue
		}
		if triangleArea(verts, f) <= areaEps {
			continue
		}
		out = append(out, *f)
	}
	return out
}
