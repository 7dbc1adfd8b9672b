package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	// LabelRoute .
	LabelRoute = "route"
	// LabelStatusCode .
	LabelStatusCode = "status_code"
	// LabelEndpoint .
	LabelEndpoint = "endpoint"
	// LabelSuccess .
	LabelSuccess = "success"
	// LabelType .
	LabelType = "type"
)

var (
	// RequestDuration observes time spent serving api requests.
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fencewatch",
		Name:      "request_duration_seconds",
		Help:      "Time (in seconds) spent serving HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{LabelRoute, LabelStatusCode})

	// TraccarRequests counts upstream traccar api calls.
	TraccarRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fencewatch",
		Name:      "traccar_requests_total",
		Help:      "Requests made against the traccar server.",
	}, []string{LabelEndpoint, LabelSuccess})

	// Events counts geofence events produced by the analyzer.
	Events = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fencewatch",
		Name:      "events_total",
		Help:      "Geofence events mapped from positions.",
	}, []string{LabelType})
)

func init() {
	prometheus.MustRegister(RequestDuration, TraccarRequests, Events)
}
