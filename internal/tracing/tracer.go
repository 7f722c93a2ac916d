// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/studenthub/chatroom-service/internal/logging"
)

const tracerName = "chatroom-service"

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer sets the global otel tracer provider from the config and returns
// a tracer bound to it. With tracing disabled, spans are noop.
func NewTracer(config *Config) *Tracer {
	t := new(Tracer)
	t.logger = config.Logger

	if !config.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	var exporters []sdktrace.SpanExporter

	if config.OtelGRPCEndpoint != "" {
		exporter, err := newGRPCExporter(config.OtelGRPCEndpoint)
		if err != nil {
			config.Logger.Errorf("failed to create otlp grpc exporter: %v", err)
		} else {
			exporters = append(exporters, exporter)
		}
	}

	if len(exporters) == 0 && config.OtelHTTPEndpoint != "" {
		exporter, err := newHTTPExporter(config.OtelHTTPEndpoint)
		if err != nil {
			config.Logger.Errorf("failed to create otlp http exporter: %v", err)
		} else {
			exporters = append(exporters, exporter)
		}
	}

	if len(exporters) == 0 {
		config.Logger.Warnf("tracing enabled but no otel exporter is reachable, spans will be noop")
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(tracerName),
	)

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	for _, exporter := range exporters {
		opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second*5)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	t.tracer = tp.Tracer(tracerName)
	return t
}

func newGRPCExporter(endpoint string) (*otlptrace.Exporter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	return otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
}

func newHTTPExporter(endpoint string) (*otlptrace.Exporter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
}
