// Package otelx sets up an OpenTelemetry meter provider backed by a
// Prometheus exporter and provides HTTP server instrumentation.
package otelx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Provider owns the meter provider and the registry it exports into.
type Provider struct {
	mp       *sdkmetric.MeterProvider
	registry *prometheus.Registry
}

// New creates a Provider with a dedicated Prometheus registry so that
// multiple instances (as in tests) never collide on the global one.
func New() (*Provider, error) {
	reg := prometheus.NewRegistry()

	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	return &Provider{
		mp:       sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)),
		registry: reg,
	}, nil
}

func (p *Provider) Meter(name string) metric.Meter {
	return p.mp.Meter(name)
}

// Handler serves the Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.mp.Shutdown(ctx)
}
