package counters

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "paybox",
	Name:      "requests_built",
	Help:      "Total number of signed gateway requests built.",
}, []string{"request_type"})

var failureCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "paybox",
	Name:      "request_build_errors",
	Help:      "Total number of request build failures.",
}, []string{"request_type"})

func CountRequest(requestType string) {
	if len(requestType) == 0 {
		return
	}
	requestCounter.With(prometheus.Labels{"request_type": requestType}).Inc()
}

func CountBuildFailure(requestType string) {
	if len(requestType) == 0 {
		return
	}
	failureCounter.With(prometheus.Labels{"request_type": requestType}).Inc()
}
