package patricia

import (
	"github.com/hashicorp/go-hclog"
)

// Metrics receives the number of nodes created and dropped by a trie.
type Metrics interface {
	NodesAdd(n uint32)
	NodesSub(n uint32)
}

type noopMetrics struct{}

func (noopMetrics) NodesAdd(uint32) {}
func (noopMetrics) NodesSub(uint32) {}

type settings struct {
	logger  hclog.Logger
	metrics Metrics
}

// Option configures a Trie created with New or NewDefault.
type Option func(s *settings)

// WithLogger sets the logger for structural events (Trace), key collisions (Error)
// and integrity reports (Debug). Defaults to a null logger.
func WithLogger(logger hclog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMetrics reports node allocations to m.
func WithMetrics(m Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

var nullLogger = hclog.NewNullLogger()

func (t *Trie[K, V]) logger() hclog.Logger {
	if t.settings.logger == nil {
		return nullLogger
	}

	return t.settings.logger
}

func (t *Trie[K, V]) metrics() Metrics {
	if t.settings.metrics == nil {
		return noopMetrics{}
	}

	return t.settings.metrics
}
