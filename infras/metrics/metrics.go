package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotelhub"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ContractTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "contract_transitions_total", Help: "Committed contract status transitions."},
		[]string{"from", "to", "actor_role"},
	)
	ContractRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "contract_rejections_total", Help: "Contract writes rejected by the lifecycle rules."},
		[]string{"reason"},
	)
	ScannerRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "expiry_scanner_runs_total", Help: "Expiry sweeps."},
		[]string{"outcome"}, // outcome: ok|locked|error
	)
	ScannerContracts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "expiry_scanner_contracts_total", Help: "Contracts visited by the expiry sweep."},
		[]string{"result"}, // result: expired|skipped|failed
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ContractTransitions, ContractRejections, ScannerRuns, ScannerContracts)

	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveTransition(from, to, actorRole string) {
	ContractTransitions.WithLabelValues(from, to, actorRole).Inc()
}

func ObserveRejection(reason string) {
	if reason == "" {
		return
	}

	ContractRejections.WithLabelValues(reason).Inc()
}

func ObserveScan(outcome string, expired, skipped, failed int) {
	ScannerRuns.WithLabelValues(outcome).Inc()
	ScannerContracts.WithLabelValues("expired").Add(float64(expired))
	ScannerContracts.WithLabelValues("skipped").Add(float64(skipped))
	ScannerContracts.WithLabelValues("failed").Add(float64(failed))
}
