package trimesh

import (
	"errors"
	"fmt"
)

// LayoutError reports a vertex layout that does not fit the raw buffer.
type LayoutError struct {
	Reason string
}

func (e *LayoutError) Error() string {
	return "trimesh: layout: " + e.Reason
}

// TopologyError reports an index sequence that is malformed for the
// declared topology.
type TopologyError struct {
	Topology Topology
	Count    int
	Reason   string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("trimesh: topology %d with %d indices: %s", e.Topology, e.Count, e.Reason)
}

// ToleranceError reports a non-positive weld epsilon or a negative
// area epsilon.
type ToleranceError struct {
	Value float32
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("trimesh: invalid tolerance %g", e.Value)
}

// EmptyMeshError is returned in strict mode when the converted mesh has
// no vertices or no triangles.
type EmptyMeshError struct{}

func (e *EmptyMeshError) Error() string {
	return "trimesh: conversion produced an empty mesh"
}

var (
	ErrNoVertexPosition = errors.New("no vertex position data found in the specified primitive")
	ErrNoIndices        = errors.New("no vertex indices found in the specified primitive")
	ErrUnsupportedMode  = errors.New("unsupported primitive mode")
)
