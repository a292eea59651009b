package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "companion_api_requests_total",
		Help: "API requests issued, by operation.",
	}, []string{"op"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "companion_api_errors_total",
		Help: "API request failures, by operation and kind (network or remote).",
	}, []string{"op", "kind"})
)
