package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// DetachTraceContext creates a new context.Background() that carries the
// span context from the original request. Dependent speech synthesis runs
// in its own goroutine after a generation completes; detaching lets its
// span link back to the generation trace without inheriting cancellation.
func DetachTraceContext(ctx context.Context) context.Context {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return context.Background()
	}
	return trace.ContextWithRemoteSpanContext(context.Background(), sc)
}
