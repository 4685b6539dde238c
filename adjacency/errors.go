package adjacency

import "errors"

var (
	// ErrBadNodeCount indicates a constructor was given a negative node count.
	ErrBadNodeCount = errors.New("adjacency: node count must be non-negative")
	// ErrNodeOutOfRange indicates an edge endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("adjacency: node id out of range")
)
