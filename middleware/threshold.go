package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrBelowThreshold is matched by every *BelowThresholdError.
var ErrBelowThreshold = errors.New("amount below threshold")

type BelowThresholdError struct {
	Amount  decimal.Decimal
	Minimum decimal.Decimal
}

func (e *BelowThresholdError) Error() string {
	return fmt.Sprintf("amount %s is below the minimum %s", e.Amount, e.Minimum)
}

func (e *BelowThresholdError) Is(target error) bool {
	return target == ErrBelowThreshold
}

// Amounted pairs a request with the amount the threshold is checked against.
type Amounted[Req any] struct {
	Request Req
	Amount  decimal.Decimal
}

// ThresholdFilter forwards a request to the inner handler only when its
// amount is at least the minimum. The inner handler is prepared lazily, so
// a rejected request never reaches it.
type ThresholdFilter[Req, Resp any] struct {
	inner   Handler[Req, Resp]
	minimum decimal.Decimal
}

var _ Handler[Amounted[int], int] = (*ThresholdFilter[int, int])(nil)

// NewThresholdFilter wraps inner with a minimum amount check.
func NewThresholdFilter[Req, Resp any](inner Handler[Req, Resp], minimum decimal.Decimal) *ThresholdFilter[Req, Resp] {
	return &ThresholdFilter[Req, Resp]{inner: inner, minimum: minimum}
}

// Minimum returns the configured minimum amount.
func (f *ThresholdFilter[Req, Resp]) Minimum() decimal.Decimal { return f.minimum }

// Prepare only reports context state; the inner handler is prepared by
// Invoke once the amount passes.
func (f *ThresholdFilter[Req, Resp]) Prepare(ctx context.Context) error {
	return ctx.Err()
}

func (f *ThresholdFilter[Req, Resp]) Invoke(ctx context.Context, req Amounted[Req]) (Resp, error) {
	var zero Resp
	if req.Amount.LessThan(f.minimum) {
		return zero, &BelowThresholdError{Amount: req.Amount, Minimum: f.minimum}
	}
	if err := f.inner.Prepare(ctx); err != nil {
		return zero, err
	}
	return f.inner.Invoke(ctx, req.Request)
}

// Threshold is the Middleware form of ThresholdFilter for requests that
// carry their own amount.
func Threshold[Req, Resp any](minimum decimal.Decimal, amountOf func(Req) decimal.Decimal) Middleware[Req, Resp] {
	return func(next Handler[Req, Resp]) Handler[Req, Resp] {
		return &thresholded[Req, Resp]{
			filter:   NewThresholdFilter(next, minimum),
			amountOf: amountOf,
		}
	}
}

type thresholded[Req, Resp any] struct {
	filter   *ThresholdFilter[Req, Resp]
	amountOf func(Req) decimal.Decimal
}

func (t *thresholded[Req, Resp]) Prepare(ctx context.Context) error {
	return t.filter.Prepare(ctx)
}

func (t *thresholded[Req, Resp]) Invoke(ctx context.Context, req Req) (Resp, error) {
	return t.filter.Invoke(ctx, Amounted[Req]{Request: req, Amount: t.amountOf(req)})
}
