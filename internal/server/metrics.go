package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunespace_requests_total",
			Help: "Total number of sampling API requests",
		},
		[]string{"route", "status"},
	)

	requestSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tunespace_request_seconds",
			Help:    "Sampling API request latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // from 0.5ms to ~4s
		},
		[]string{"route"},
	)

	sampledPointsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tunespace_sampled_points_total",
			Help: "Total number of parameter points drawn",
		},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestSeconds)
	prometheus.MustRegister(sampledPointsTotal)
}
