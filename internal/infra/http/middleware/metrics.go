package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farmareach_console_requests_total",
			Help: "Total number of console HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "farmareach_console_request_duration_seconds",
			Help:    "Duration of console HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "farmareach_console_active_requests",
			Help: "Number of console requests in flight",
		},
	)

	apiCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farmareach_backend_calls_total",
			Help: "Calls made to the FarmaReach backend",
		},
		[]string{"method", "path", "status"},
	)

	apiCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "farmareach_backend_call_duration_seconds",
			Help:    "Duration of backend calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	capturesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farmareach_captures_total",
			Help: "Capture runs by outcome",
		},
		[]string{"outcome"},
	)

	leadsFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "farmareach_capture_leads_found_total",
			Help: "Leads reported as found by captures",
		},
	)

	leadsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "farmareach_capture_leads_saved_total",
			Help: "Leads reported as newly saved by captures",
		},
	)

	campaignsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farmareach_campaigns_total",
			Help: "Campaign sends by outcome",
		},
		[]string{"outcome"},
	)

	campaignMails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farmareach_campaign_mails_total",
			Help: "Mails reported by the backend per result",
		},
		[]string{"result"},
	)

	sessionInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "farmareach_session_invalidations_total",
			Help: "Sessions dropped after a 401",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern keeps ids out of the label set.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// RecordAPICall matches backend.Observer. status 0 means no answer.
func RecordAPICall(method, path string, status int, elapsed time.Duration) {
	apiCallsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	apiCallDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Recorder feeds the flow counters.
type Recorder struct{}

func (Recorder) CaptureFinished(outcome string, found, saved int) {
	capturesTotal.WithLabelValues(outcome).Inc()
	leadsFound.Add(float64(found))
	leadsSaved.Add(float64(saved))
}

func (Recorder) CampaignFinished(outcome string, sent, failed int) {
	campaignsTotal.WithLabelValues(outcome).Inc()
	campaignMails.WithLabelValues("sent").Add(float64(sent))
	campaignMails.WithLabelValues("error").Add(float64(failed))
}

func (Recorder) SessionInvalidated() {
	sessionInvalidations.Inc()
}
