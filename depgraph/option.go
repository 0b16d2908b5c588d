package depgraph

import "log/slog"

// GraphOption configures graph construction behavior.
type GraphOption func(*graphConfig)

// graphConfig holds internal configuration for a Graph.
type graphConfig struct {
	logger *slog.Logger
}

// WithLogger enables debug logging of graph operation boundaries: every
// [Graph.Add] and [Graph.Connect] call logs its start and its end.
//
// Pass nil to disable logging (the default).
func WithLogger(logger *slog.Logger) GraphOption {
	return func(cfg *graphConfig) {
		cfg.logger = logger
	}
}
