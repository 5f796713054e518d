package prometheus

import (
	"errors"
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/abczzz13/ipformat"
)

// PrometheusMetrics is a Prometheus-backed implementation of
// ipformat.Metrics.
type PrometheusMetrics struct {
	detectionTotal *prom.CounterVec
	formatEvents   *prom.CounterVec
}

// WithMetrics returns an ipformat option that installs Prometheus-backed
// metrics using prom.DefaultRegisterer.
func WithMetrics() ipformat.Option {
	return withMetricsFactory(New)
}

// WithRegisterer returns an ipformat option that installs Prometheus-backed
// metrics using the provided registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used.
func WithRegisterer(registerer prom.Registerer) ipformat.Option {
	return withMetricsFactory(func() (*PrometheusMetrics, error) {
		return NewWithRegisterer(registerer)
	})
}

// withMetricsFactory adapts a PrometheusMetrics constructor into an
// ipformat.Option.
func withMetricsFactory(factory func() (*PrometheusMetrics, error)) ipformat.Option {
	return ipformat.WithMetricsFactory(func() (ipformat.Metrics, error) {
		return factory()
	})
}

// New creates PrometheusMetrics and registers its collectors on
// prom.DefaultRegisterer.
func New() (*PrometheusMetrics, error) {
	return NewWithRegisterer(prom.DefaultRegisterer)
}

// NewWithRegisterer creates PrometheusMetrics and registers its collectors on
// the given registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used. If the metrics are
// already registered, existing compatible collectors are reused.
func NewWithRegisterer(registerer prom.Registerer) (*PrometheusMetrics, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}

	detectionTotalCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "ip_format_detection_total",
			Help: "Total number of format detections by rule (standard, decimal32, hex32, ipv6_mapped, overflow, truncated, octal) and result (success, invalid).",
		},
		[]string{"rule", "result"},
	)
	formatEventsCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "ip_format_events_total",
			Help: "Conversion failure events, labeled by event (unrecognized_format, malformed_numeral, invalid_address).",
		},
		[]string{"event"},
	)

	detectionTotal, err := registerCounterVec(registerer, detectionTotalCollector, "ip_format_detection_total")
	if err != nil {
		return nil, err
	}

	formatEvents, err := registerCounterVec(registerer, formatEventsCollector, "ip_format_events_total")
	if err != nil {
		return nil, err
	}

	return &PrometheusMetrics{
		detectionTotal: detectionTotal,
		formatEvents:   formatEvents,
	}, nil
}

func registerCounterVec(registerer prom.Registerer, collector *prom.CounterVec, metricName string) (*prom.CounterVec, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prom.CounterVec)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

// RecordDetectionSuccess increments ip_format_detection_total with
// result="success" for the provided rule.
func (m *PrometheusMetrics) RecordDetectionSuccess(rule string) {
	m.detectionTotal.WithLabelValues(rule, "success").Inc()
}

// RecordDetectionFailure increments ip_format_detection_total with
// result="invalid" for the provided rule.
func (m *PrometheusMetrics) RecordDetectionFailure(rule string) {
	m.detectionTotal.WithLabelValues(rule, "invalid").Inc()
}

// RecordFormatEvent increments ip_format_events_total for the provided event
// label.
func (m *PrometheusMetrics) RecordFormatEvent(event string) {
	m.formatEvents.WithLabelValues(event).Inc()
}
