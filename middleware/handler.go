// Package middleware composes request handlers with decorators.
package middleware

import "context"

// Handler serves one request kind. Prepare reports whether the handler is
// ready to take a request; Invoke serves it.
type Handler[Req, Resp any] interface {
	Prepare(ctx context.Context) error
	Invoke(ctx context.Context, req Req) (Resp, error)
}

// HandlerFunc adapts a function to a Handler that is always ready.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

func (f HandlerFunc[Req, Resp]) Prepare(ctx context.Context) error {
	return ctx.Err()
}

func (f HandlerFunc[Req, Resp]) Invoke(ctx context.Context, req Req) (Resp, error) {
	return f(ctx, req)
}

// Middleware decorates a handler without changing its request or response
// types.
type Middleware[Req, Resp any] func(Handler[Req, Resp]) Handler[Req, Resp]

// Chain wraps h so the first middleware is the outermost.
func Chain[Req, Resp any](h Handler[Req, Resp], mws ...Middleware[Req, Resp]) Handler[Req, Resp] {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Call prepares h and then invokes it with req.
func Call[Req, Resp any](ctx context.Context, h Handler[Req, Resp], req Req) (Resp, error) {
	if err := h.Prepare(ctx); err != nil {
		var zero Resp
		return zero, err
	}
	return h.Invoke(ctx, req)
}

// wrapped delegates Prepare and overrides Invoke.
type wrapped[Req, Resp any] struct {
	inner  Handler[Req, Resp]
	invoke func(ctx context.Context, req Req) (Resp, error)
}

func (w *wrapped[Req, Resp]) Prepare(ctx context.Context) error {
	return w.inner.Prepare(ctx)
}

func (w *wrapped[Req, Resp]) Invoke(ctx context.Context, req Req) (Resp, error) {
	return w.invoke(ctx, req)
}
