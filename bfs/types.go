package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures a walk.
type Option func(*options)

type options struct {
	// keep, when non-nil, is the only vertex set the walk may enter.
	keep map[int]struct{}
}

// WithinSet restricts the walk to vertices in keep. The start vertex is
// visited even if keep lacks it; its neighbors outside keep are not.
func WithinSet(keep map[int]struct{}) Option {
	return func(o *options) {
		o.keep = keep
	}
}

// Result is the outcome of one walk.
type Result struct {
	// Order lists visited vertices in visit sequence.
	Order []int
	// Depth maps every visited vertex to its edge distance from the start.
	Depth map[int]int
}
