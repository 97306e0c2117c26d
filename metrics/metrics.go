// SPDX-License-Identifier: GPL-3.0-only

package metrics

import (
	"fmt"
	"net/http"

	"geo-lookup-server/geodata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OperationCountries = "countries"
	OperationStates    = "states"
	OperationCities    = "cities"

	ResultOK          = "ok"
	ResultNotFound    = "not_found"
	ResultUnavailable = "unavailable"
)

// Recorder bundles the lookup and dataset metrics.
type Recorder struct {
	gatherer prometheus.Gatherer

	Lookups          *prometheus.CounterVec
	DatasetAvailable prometheus.Gauge
	DatasetRecords   *prometheus.GaugeVec
}

// NewRecorder registers the metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geo_lookups_total",
		Help: "Total number of dataset lookups, labeled by operation and result.",
	}, []string{"operation", "result"})
	available := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "geo_dataset_available",
		Help: "1 when the dataset loaded at startup, 0 otherwise.",
	})
	records := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "geo_dataset_records",
		Help: "Number of loaded records, labeled by kind.",
	}, []string{"kind"})

	for name, c := range map[string]prometheus.Collector{
		"geo_lookups_total":     lookups,
		"geo_dataset_available": available,
		"geo_dataset_records":   records,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
	}

	return &Recorder{
		gatherer:         gatherer,
		Lookups:          lookups,
		DatasetAvailable: available,
		DatasetRecords:   records,
	}, nil
}

// ObserveLookup counts one lookup. A nil Recorder ignores the call.
func (r *Recorder) ObserveLookup(operation, result string) {
	if r == nil {
		return
	}
	r.Lookups.WithLabelValues(operation, result).Inc()
}

// SetDataset publishes the availability and record counts of idx.
func (r *Recorder) SetDataset(idx *geodata.Index) {
	if r == nil || idx == nil {
		return
	}
	if idx.Available() {
		r.DatasetAvailable.Set(1)
	} else {
		r.DatasetAvailable.Set(0)
	}
	stats := idx.Stats()
	r.DatasetRecords.WithLabelValues("countries").Set(float64(stats.Countries))
	r.DatasetRecords.WithLabelValues("states").Set(float64(stats.States))
	r.DatasetRecords.WithLabelValues("cities").Set(float64(stats.Cities))
}

func (r *Recorder) Handler() http.Handler {
	gatherer := r.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
