package graph

import "log/slog"

// Option configures a Registry during creation.
//
// Example:
//
//	r := graph.NewRegistry(graph.WithLogger(slog.Default()))
type Option func(*registryOptions)

type registryOptions struct {
	logger        *slog.Logger
	shardCapacity int
}

func defaultOptions() registryOptions {
	return registryOptions{
		logger:        nil, // falls back to the package logger at log time
		shardCapacity: 8,
	}
}

// WithLogger sets a registry specific logger. Without it the registry
// logs through the package logger set by [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *registryOptions) {
		o.logger = l
	}
}

// WithShardCapacity presizes each shard of the converter memo table.
// Values below zero are treated as zero.
func WithShardCapacity(n int) Option {
	return func(o *registryOptions) {
		if n < 0 {
			n = 0
		}
		o.shardCapacity = n
	}
}
