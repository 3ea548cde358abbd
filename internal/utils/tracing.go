package utils

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TraceInputValidation creates a span for input validation steps
func TraceInputValidation(ctx context.Context, validationType, field string) (context.Context, trace.Span) {
	return otel.Tracer("acampamento-api").Start(ctx, "validate."+validationType,
		trace.WithAttributes(
			attribute.String("validation.type", validationType),
			attribute.String("validation.field", field),
		),
	)
}

// TraceDatabaseFind creates a span for a database find operation
func TraceDatabaseFind(ctx context.Context, collection, filter string) (context.Context, trace.Span) {
	return otel.Tracer("acampamento-api").Start(ctx, "db.find."+collection,
		trace.WithAttributes(
			attribute.String("db.system", "mongodb"),
			attribute.String("db.collection", collection),
			attribute.String("db.filter", filter),
		),
	)
}

// TraceDatabaseInsert creates a span for a database insert operation
func TraceDatabaseInsert(ctx context.Context, collection string) (context.Context, trace.Span) {
	return otel.Tracer("acampamento-api").Start(ctx, "db.insert."+collection,
		trace.WithAttributes(
			attribute.String("db.system", "mongodb"),
			attribute.String("db.collection", collection),
		),
	)
}

// TraceDatabaseCount creates a span for a database count operation
func TraceDatabaseCount(ctx context.Context, collection, filter string) (context.Context, trace.Span) {
	return otel.Tracer("acampamento-api").Start(ctx, "db.count."+collection,
		trace.WithAttributes(
			attribute.String("db.system", "mongodb"),
			attribute.String("db.collection", collection),
			attribute.String("db.filter", filter),
		),
	)
}

// TraceExternalService creates a span for an outbound capability call
func TraceExternalService(ctx context.Context, serviceName, operation string) (context.Context, trace.Span) {
	return otel.Tracer("acampamento-api").Start(ctx, "external."+serviceName+"."+operation,
		trace.WithAttributes(
			attribute.String("external.service", serviceName),
			attribute.String("external.operation", operation),
		),
	)
}

// AddTimingToSpan adds elapsed time attributes to a span
func AddTimingToSpan(span trace.Span, startTime time.Time) {
	duration := time.Since(startTime)
	span.SetAttributes(
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("duration", duration.String()),
	)
}

// RecordErrorInSpan records an error with context attributes on a span
func RecordErrorInSpan(span trace.Span, err error, context map[string]interface{}) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	for k, v := range context {
		AddSpanAttribute(span, k, v)
	}
}

// AddSpanAttribute adds a single typed attribute to a span
func AddSpanAttribute(span trace.Span, key string, value interface{}) {
	switch val := value.(type) {
	case string:
		span.SetAttributes(attribute.String(key, val))
	case int:
		span.SetAttributes(attribute.Int(key, val))
	case int64:
		span.SetAttributes(attribute.Int64(key, val))
	case bool:
		span.SetAttributes(attribute.Bool(key, val))
	case float64:
		span.SetAttributes(attribute.Float64(key, val))
	default:
		span.SetAttributes(attribute.String(key, "unknown_type"))
	}
}
