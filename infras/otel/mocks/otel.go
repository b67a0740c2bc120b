package mocks

import (
	"camping/infras/otel"
	"context"
	"sync"
)

type otelImpl struct{}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

// NewOtel returns a tracer whose scopes discard everything.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

// Recorder is a tracer that keeps traced errors and attributes of every scope it opened.
type Recorder struct {
	mu         sync.Mutex
	errors     []error
	attributes map[string]any
}

func NewRecorder() *Recorder {
	return &Recorder{attributes: map[string]any{}}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, &scopeImpl{recorder: r}
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

func (r *Recorder) Attribute(key string) any {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.attributes[key]
}

func (r *Recorder) traceError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors = append(r.errors, err)
}

func (r *Recorder) setAttribute(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.attributes[key] = value
}
