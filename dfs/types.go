package dfs

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable hooks for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	OnVisit func(id int)
}

// DefaultOptions returns a DFSOptions struct without hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{OnVisit: nil}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id int)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
