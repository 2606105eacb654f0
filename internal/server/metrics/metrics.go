// Package metrics exposes gatekeeper's Prometheus instruments and the
// /metrics HTTP endpoint.
//
// Every method is safe on a nil *Metrics, so collaborators can be built
// without instrumentation in tests.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gatekeeper"

// Validation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeExpired  = "expired"
	OutcomeRevoked  = "revoked"
	OutcomeMismatch = "subject_mismatch"
)

type Metrics struct {
	registry *prometheus.Registry

	tokensIssued  prometheus.Counter
	validations   *prometheus.CounterVec
	revocations   *prometheus.CounterVec
	loginFailures prometheus.Counter
	registrySwept prometheus.Counter
	rpcTotal      *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
}

// New creates a private Prometheus registry with Go runtime and process
// collectors plus gatekeeper's own instruments.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_issued_total",
			Help:      "Session tokens issued.",
		}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_validations_total",
			Help:      "Token validations by outcome.",
		}, []string{"outcome"}),
		revocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_revocations_total",
			Help:      "Tokens added to the revocation registry by reason.",
		}, []string{"reason"}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_failures_total",
			Help:      "Rejected login attempts.",
		}),
		registrySwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revocation_registry_evictions_total",
			Help:      "Expired entries evicted from the revocation registry.",
		}),
		rpcTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "Handled gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "gRPC request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	reg.MustRegister(m.tokensIssued, m.validations, m.revocations, m.loginFailures,
		m.registrySwept, m.rpcTotal, m.rpcDuration)

	return m
}

// RegisterRegistrySize exports size() as the revocation registry gauge.
func (m *Metrics) RegisterRegistrySize(size func() int) {
	if m == nil {
		return
	}
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "revocation_registry_entries",
		Help:      "Entries currently held by the revocation registry.",
	}, func() float64 { return float64(size()) }))
}

func (m *Metrics) TokenIssued() {
	if m == nil {
		return
	}
	m.tokensIssued.Inc()
}

func (m *Metrics) Validation(outcome string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Revoked(reason string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.revocations.WithLabelValues(reason).Add(float64(n))
}

func (m *Metrics) LoginFailed() {
	if m == nil {
		return
	}
	m.loginFailures.Inc()
}

func (m *Metrics) Swept(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.registrySwept.Add(float64(n))
}

func (m *Metrics) RPC(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcTotal.WithLabelValues(method, code).Inc()
	m.rpcDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve runs the /metrics endpoint on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
