// Package core: central Graph and Edge types for trophic networks.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor. Method implementations live in the methods_*.go
// files; the package-level contract is documented in doc.go.
//
// Errors:
//
//	ErrNilGraph               - graph pointer is nil.
//	ErrEmptyVertexID          - vertex ID is the empty string.
//	ErrVertexNotFound         - requested vertex does not exist.
//	ErrEdgeNotFound           - requested edge does not exist.
//	ErrLoopNotAllowed         - self-loop when loops are disabled.
//	ErrParallelEdgeNotAllowed - parallel edge when parallel edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrParallelEdgeNotAllowed indicates a parallel edge was attempted when
	// parallel edges are disabled.
	ErrParallelEdgeNotAllowed = errors.New("core: parallel edge not allowed")
)

// Edge represents one trophic interaction.
//
// Each Edge has a unique ID and endpoints From→To, where From is the prey
// (resource) and To is the predator (consumer). All edges are directed and
// unweighted.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the prey vertex ID (the species being consumed).
	From string

	// To is the predator vertex ID (the species doing the consuming).
	To string
}

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces. Reflect-free typed-nil detection; keep it trivial.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSelfLoops permits self-loops (a species recorded as eating itself).
// Raw field data occasionally contains cannibal links; analysis graphs
// usually keep the default and reject them.
func WithSelfLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithParallelEdges permits multiple edges between the same prey/predator
// pair. Only the raw-input stage needs this; the cleaning stage produces
// graphs without parallel edges.
func WithParallelEdges() GraphOption {
	return func(g *Graph) { g.allowParallel = true }
}

// Graph is the in-memory trophic network.
//
// muVert protects the vertex set; muEdgeAdj protects the edge catalog and
// both adjacency indexes. Lock order is muVert → muEdgeAdj everywhere.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, out, in

	// Configuration flags
	allowLoops    bool // allow self-loops
	allowParallel bool // allow parallel edges

	// Storage
	nextEdgeID uint64              // atomic edge ID generator
	vertices   map[string]struct{} // vertex ID set
	edges      map[string]*Edge    // edge ID → Edge

	// out[(prey)From][(predator)To][Edge.ID] = struct{}{}
	out map[string]map[string]map[string]struct{}
	// in[(predator)To][(prey)From][Edge.ID] = struct{}{}
	in map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the graph rejects self-loops and parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]map[string]struct{}),
		in:       make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AllowsSelfLoops reports whether self-loops are permitted.
func (g *Graph) AllowsSelfLoops() bool { return g.allowLoops }

// AllowsParallelEdges reports whether parallel edges are permitted.
func (g *Graph) AllowsParallelEdges() bool { return g.allowParallel }
