package greedy

// Options configures a greedy best-first run.
type Options struct {
	// OnVisit is called with the identity of every expanded node.
	OnVisit func(id int)
}

// Option represents a functional option for configuring Greedy.
type Option func(*Options)

// WithOnVisit registers a hook called when a node is expanded.
func WithOnVisit(fn func(id int)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns an Options struct with no hooks.
func DefaultOptions() Options {
	return Options{}
}
