package bfs

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe a BFS run.
type Options struct {
	// OnVisit is called with the node identity each time a node is dequeued.
	OnVisit func(id int)
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(int) {},
	}
}

// WithOnVisit registers a callback to run on dequeue. A nil fn is ignored.
func WithOnVisit(fn func(id int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
