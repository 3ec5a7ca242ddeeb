// Copyright 2019 The Vearch Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package document

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vearch/gammareq/internal/pkg/errors"
)

var (
	// search body build metrics
	searchBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gammareq_router_search_build_duration_seconds",
			Help:    "Search body to engine request build duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"status"},
	)

	searchBuildTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gammareq_router_search_builds_total",
			Help: "Total number of search body builds",
		},
		[]string{"status"},
	)

	searchVectorCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gammareq_router_search_vectors_count",
			Help:    "Number of vector queries in search bodies",
			Buckets: []float64{0, 1, 2, 4, 8, 16},
		},
	)
)

// MetricsRecorder provides methods to record search build metrics
type MetricsRecorder struct{}

// NewMetricsRecorder creates a new metrics recorder
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{}
}

// RecordBuild records one search body build, labelled by the error code name.
func (m *MetricsRecorder) RecordBuild(err error, vectors int, duration time.Duration) {
	status := errors.GetCode(err).String()
	searchBuildDuration.WithLabelValues(status).Observe(duration.Seconds())
	searchBuildTotal.WithLabelValues(status).Inc()
	searchVectorCount.Observe(float64(vectors))
}
