package config

import "context"

type pathKey struct{}

// WithPath returns a context carrying the configuration file path for the config node.
func WithPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pathKey{}, path)
}

// PathFromContext returns the configuration path stored by WithPath, or DefaultFilename.
func PathFromContext(ctx context.Context) string {
	if path, ok := ctx.Value(pathKey{}).(string); ok && path != "" {
		return path
	}
	return DefaultFilename
}
