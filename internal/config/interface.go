package config

import "context"

// Loader reads project files on top of a base model.
type Loader interface {
	// Load applies each file in order to a copy of base and returns the
	// result. Settings a file does not mention keep their base value.
	Load(ctx context.Context, base Model, paths ...string) (Model, error)
}
