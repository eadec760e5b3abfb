package wgraph

import "errors"

// Sentinel errors for wgraph operations. Every exported function that can
// fail documents which of these it returns; callers should match with
// errors.Is, never by comparing error strings.
var (
	// ErrEdgeExists indicates AddEdge was called for a (source, label) pair
	// that already has a defined target.
	ErrEdgeExists = errors.New("wgraph: edge already defined")

	// ErrNoSuchEdge indicates RemoveEdge was asked about a (source, label)
	// pair with no defined target. Neighbor reports that case by returning
	// Undefined instead.
	ErrNoSuchEdge = errors.New("wgraph: no such edge")

	// ErrInvalidNode indicates a node id outside [0, NumberOfNodes()).
	ErrInvalidNode = errors.New("wgraph: invalid node")

	// ErrInvalidLabel indicates a label outside [0, OutDegree()).
	ErrInvalidLabel = errors.New("wgraph: invalid label")

	// ErrMergeOrder indicates MergeNodes was called with min >= max.
	ErrMergeOrder = errors.New("wgraph: merge requires min < max")

	// ErrIncompatibleMerge is returned when the caller-supplied onIncompat
	// predicate fires during MergeNodes, signalling that the identification
	// of the two nodes violates a caller-enforced discipline (inverse
	// presentations use this to reject merges that break the involution).
	ErrIncompatibleMerge = errors.New("wgraph: incompatible merge")
)
