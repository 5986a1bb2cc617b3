package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcome labels.
const (
	OutcomeRedirect         = "redirect"
	OutcomeQR               = "qr"
	OutcomeMissingRecipient = "missing_recipient"
	OutcomeQRError          = "qr_error"
	OutcomeAPI              = "api"
)

// Recorder counts handled requests by outcome.
type Recorder struct {
	requests *prometheus.CounterVec
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the request counter with the default registry.
// Must be called once at startup.
func Init() {
	recorderOnce.Do(func() {
		recorder = newRecorder()
		prometheus.MustRegister(recorder.requests)
	})
}

func newRecorder() *Recorder {
	return &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "msglink_requests_total",
			Help: "Total deep link requests by outcome",
		}, []string{"outcome"}),
	}
}

// RecordOutcome counts one request with the given outcome.
// It is a no-op until Init has been called.
func RecordOutcome(outcome string) {
	if recorder == nil {
		return
	}
	recorder.requests.WithLabelValues(outcome).Inc()
}
