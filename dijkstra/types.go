package dijkstra

// Options configures the behavior of the Dijkstra search.
type Options struct {
	// OnVisit is called with the identity of every node as it is finalized.
	OnVisit func(id int)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithOnVisit registers a hook called when a node is extracted and finalized.
func WithOnVisit(fn func(id int)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns an Options struct with no hooks.
func DefaultOptions() Options {
	return Options{}
}
