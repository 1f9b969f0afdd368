// internal/telemetry/telemetry.go
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"apollotrainer/internal/config"
	"apollotrainer/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ShutdownFunc flushes and stops whatever providers Setup installed.
type ShutdownFunc func(context.Context) error

// Setup installs the global tracer and meter providers described by cfg.
// Trace export is enabled only when an OTLP endpoint is configured. The
// returned handler serves Prometheus metrics and is nil when metrics are
// disabled.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (http.Handler, ShutdownFunc, error) {
	name := cfg.ServiceName
	if name == "" {
		name = "apollotrainer"
	}
	res := resource.NewSchemaless(attribute.String("service.name", name))

	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.OTLPEndpoint != "" {
		exp, err := otlptrace.New(ctx, otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		))
		if err != nil {
			return nil, shutdown, fmt.Errorf("create otlp exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
		shutdowns = append(shutdowns, tp.Shutdown)
		logger.Info().Str("endpoint", cfg.OTLPEndpoint).Msg("trace export enabled")
	}

	if !cfg.MetricsEnabled {
		return nil, shutdown, nil
	}

	reg := prometheus.NewRegistry()
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, shutdown, fmt.Errorf("create prometheus exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exp),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	shutdowns = append(shutdowns, mp.Shutdown)
	logger.Info().Msg("prometheus metrics enabled")

	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), shutdown, nil
}
