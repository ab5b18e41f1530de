package trimesh

import (
	"math"

	"github.com/flywave/go3d/vec3"
)

type gridCell struct {
	x, y, z int32
}

// cellFloor clamps the quotient into int32 range; conversions of
// out-of-range floats are not defined, and far-out coordinates only need
// a stable bucket, not an exact one.
func cellFloor(v, eps float32) int32 {
	q := math.Floor(float64(v) / float64(eps))
	if q >= math.MaxInt32 {
		return math.MaxInt32
	}
	if q <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(q)
}

func cellOf(p *vec3.T, eps float32) gridCell {
	return gridCell{
		x: cellFloor(p[0], eps),
		y: cellFloor(p[1], eps),
		z: cellFloor(p[2], eps),
	}
}

// dedupVertices welds vertices closer than eps into one representative and
// rewrites the triangle indices over the compacted vertex set.
//
// Candidates are bucketed on an eps-sized grid so only the vertex's own
// cell and its 26 neighbors are probed. Representatives keep first-seen
// order, and a welded vertex keeps the first-seen normal; normals are
// never averaged.
func dedupVertices(verts, normals []vec3.T, faces []Triangle, eps float32) ([]vec3.T, []vec3.T, []Triangle, error) {
	if eps <= 0 {
		return nil, nil, nil, &ToleranceError{Value: eps}
	}

	epsSqr := eps * eps
	outVerts := make([]vec3.T, 0, len(verts))
	var outNormals []vec3.T
	if normals != nil {
		outNormals = make([]vec3.T, 0, len(normals))
	}
	remap := make([]uint32, len(verts))
	// Buckets hold indices into outVerts only; the vertices live in the
	// one contiguous output array.
	buckets := make(map[gridCell][]uint32)

	for i := range verts {
		v := &verts[i]
		cell := cellOf(v, eps)
		found := false
	probe:
		for dx := int32(-1); dx <= 1; dx++ {
			for dy := int32(-1); dy <= 1; dy++ {
				for dz := int32(-1); dz <= 1; dz++ {
					nb := gridCell{cell.x + dx, cell.y + dy, cell.z + dz}
					for _, rep := range buckets[nb] {
						d := vec3.Sub(&outVerts[rep], v)
						if d.LengthSqr() <= epsSqr {
							remap[i] = rep
							found = true
							break probe
						}
					}
				}
			}
		}
		if !found {
			rep := uint32(len(outVerts))
			outVerts = append(outVerts, *v)
			if normals != nil {
				outNormals = append(outNormals, normals[i])
			}
			buckets[cell] = append(buckets[cell], rep)
			remap[i] = rep
		}
	}

	outFaces := make([]Triangle, len(faces))
	for i, f := range faces {
		outFaces[i] = Triangle{remap[f[0]], remap[f[1]], remap[f[2]]}
	}
	return outVerts, outNormals, outFaces, nil
}
