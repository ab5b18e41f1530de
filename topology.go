package trimesh

// expandTopology turns a strip, fan or list index encoding into a flat
// triangle sequence over the original vertex numbering.
//
// Strips follow the conventional alternating winding: triangle i is
// (i, i+1, i+2) when i is even and (i, i+2, i+1) when i is odd, so every
// triangle keeps the same front face. This is a fixed convention, not
// configurable.
func expandTopology(indices []uint32, topo Topology) ([]Triangle, error) {
	// An empty mesh expands to zero triangles for every topology; the
	// builder decides whether empty is acceptable.
	if len(indices) == 0 {
		return nil, nil
	}

	switch topo {
	case TOPOLOGY_TRIANGLE_LIST:
		if len(indices)%3 != 0 {
			return nil, &TopologyError{Topology: topo, Count: len(indices), Reason: "index count is not a multiple of 3"}
		}
		faces := make([]Triangle, 0, len(indices)/3)
		for i := 0; i+2 < len(indices); i += 3 {
			faces = append(faces, Triangle{indices[i], indices[i+1], indices[i+2]})
		}
		return faces, nil
	case TOPOLOGY_TRIANGLE_STRIP:
		if len(indices) < 3 {
			return nil, &TopologyError{Topology: topo, Count: len(indices), Reason: "strip needs at least 3 indices"}
		}
		faces := make([]Triangle, 0, len(indices)-2)
		for i := 0; i+2 < len(indices); i++ {
			if i%2 == 0 {
				faces = append(faces, Triangle{indices[i], indices[i+1], indices[i+2]})
			} else {
				faces = append(faces, Triangle{indices[i], indices[i+2], indices[i+1]})
			}
		}
		return faces, nil
	case TOPOLOGY_TRIANGLE_FAN:
		if len(indices) < 3 {
			return nil, &TopologyError{Topology: topo, Count: len(indices), Reason: "fan needs at least 3 indices"}
		}
		faces := make([]Triangle, 0, len(indices)-2)
		for i := 0; i+2 < len(indices); i++ {
			faces = append(faces, Triangle{indices[0], indices[i+1], indices[i+2]})
		}
		return faces, nil
	}
	return nil, &TopologyError{Topology: topo, Count: len(indices), Reason: "unknown topology"}
}
