package observability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"badminton-directory-backend/internal/config"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

const defaultServiceName = "badminton-directory"

// ShutdownFunc flushes and stops the tracer provider
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// InitTracing installs a global tracer provider. When tracing is disabled the
// global no-op provider stays in place and the returned shutdown does nothing.
func InitTracing(ctx context.Context, cfg *config.Config, version string) (ShutdownFunc, error) {
	if cfg == nil || !cfg.OtelEnabled {
		return noopShutdown, nil
	}

	serviceName := strings.TrimSpace(cfg.OtelServiceName)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(version),
			attribute.String("deployment.environment", cfg.Environment),
		),
	)
	if err != nil {
		return noopShutdown, fmt.Errorf("failed to build otel resource: %w", err)
	}

	exporter, err := buildExporter(ctx, cfg.OtelEndpoint)
	if err != nil {
		return noopShutdown, fmt.Errorf("failed to build trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(SampleRatio(cfg.OtelSampleRatio)))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logrus.WithFields(logrus.Fields{
		"service":  serviceName,
		"endpoint": cfg.OtelEndpoint,
	}).Info("Tracing initialized")

	return tp.Shutdown, nil
}

// SampleRatio clamps the configured ratio into [0, 1]
func SampleRatio(ratio float64) float64 {
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	}
	return ratio
}

func buildExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		logrus.Warn("No OTLP endpoint configured, writing spans to stdout")
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}

	var opts []otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}
