package slog

import (
	"log/slog"

	"github.com/fwojciec/blogmark"
)

// Ensure LoggingRegistry implements blogmark.SelectorRegistry.
var _ blogmark.SelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a SelectorRegistry with debug logging for
// selector lookups.
type LoggingRegistry struct {
	next   blogmark.SelectorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next blogmark.SelectorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// SelectorsFor delegates to the wrapped registry and logs the lookup.
func (r *LoggingRegistry) SelectorsFor(domain string) []string {
	selectors := r.next.SelectorsFor(domain)
	r.logger.Info("selector lookup",
		"domain", domain,
		"count", len(selectors),
	)
	return selectors
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(domain string, selectors ...string) {
	r.next.Register(domain, selectors...)
}
