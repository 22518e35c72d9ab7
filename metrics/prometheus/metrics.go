// Package prometheus exposes the node count of tries as a Prometheus gauge.
package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements patricia.Metrics.
type Metrics struct {
	nodesGauge prometheus.Gauge
}

// New registers the gauge with the registerer, prometheus.DefaultRegisterer if nil.
// A gauge registered earlier under the same name is reused, so several tries may
// share it.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "patricia",
		Name:      "nodes_total",
		Help:      "total number of nodes in all the tries in memory",
	})

	err := registerer.Register(gauge)
	if err != nil {
		var registered prometheus.AlreadyRegisteredError
		if !errors.As(err, &registered) {
			return nil, fmt.Errorf("cannot register nodes gauge: %w", err)
		}

		existing, ok := registered.ExistingCollector.(prometheus.Gauge)
		if !ok {
			return nil, fmt.Errorf("registered nodes collector is a %T, not a gauge", registered.ExistingCollector)
		}
		gauge = existing
	}

	return &Metrics{nodesGauge: gauge}, nil
}

func (m *Metrics) NodesAdd(n uint32) {
	m.nodesGauge.Add(float64(n))
}

func (m *Metrics) NodesSub(n uint32) {
	m.nodesGauge.Sub(float64(n))
}
