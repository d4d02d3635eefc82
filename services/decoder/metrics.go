// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package decoder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	remoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "latticeqec_remote_requests_total",
			Help: "Remote protocol round trips by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	remoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "latticeqec_remote_request_duration_seconds",
			Help:    "Latency of remote protocol round trips.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func observeRequest(operation string, seconds float64, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	remoteRequestsTotal.WithLabelValues(operation, outcome).Inc()
	remoteRequestDuration.WithLabelValues(operation).Observe(seconds)
}
