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

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OpEncode = "encode"
	OpDecode = "decode"

	StatusOK = "ok"
)

var (
	codecOperationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gammareq_codec_operations_total",
			Help: "Total number of request encode/decode operations",
		},
		[]string{"operation", "status"},
	)

	codecOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gammareq_codec_operation_duration_seconds",
			Help:    "Request encode/decode duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"operation"},
	)

	codecBufferBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gammareq_codec_buffer_bytes",
			Help:    "Size of encoded request buffers",
			Buckets: prometheus.ExponentialBuckets(64, 4, 10),
		},
		[]string{"operation"},
	)
)

// CodecRecorder records request codec outcomes.
type CodecRecorder struct{}

func NewCodecRecorder() *CodecRecorder {
	return &CodecRecorder{}
}

// Record counts one operation. status is StatusOK or an error code name.
func (r *CodecRecorder) Record(operation, status string, size int, start time.Time) {
	codecOperationTotal.WithLabelValues(operation, status).Inc()
	codecOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if status == StatusOK {
		codecBufferBytes.WithLabelValues(operation).Observe(float64(size))
	}
}

// Collectors exposes the codec collectors for registration in a private
// registry, such as the one the CLI writes to a metrics file.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{codecOperationTotal, codecOperationDuration, codecBufferBytes}
}

// OperationCount reads the counter for operation and status.
func OperationCount(operation, status string) float64 {
	return counterValue(codecOperationTotal.WithLabelValues(operation, status))
}
