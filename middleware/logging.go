package middleware

import (
	"context"
	"time"

	"github.com/kaifufi/airswap-rfq-sdk-go/log"
)

// Logging logs every invocation with its duration. Failures log at error
// level, successes at debug.
func Logging[Req, Resp any](logger log.Logger, describe func(Req) []interface{}) Middleware[Req, Resp] {
	logger = log.OrNop(logger)
	return func(next Handler[Req, Resp]) Handler[Req, Resp] {
		return &wrapped[Req, Resp]{
			inner: next,
			invoke: func(ctx context.Context, req Req) (Resp, error) {
				start := time.Now()
				resp, err := next.Invoke(ctx, req)

				var keyvals []interface{}
				if describe != nil {
					keyvals = describe(req)
				}
				keyvals = append(keyvals, "elapsed", time.Since(start).String())
				if err != nil {
					logger.Error("request failed", append(keyvals, "err", err)...)
				} else {
					logger.Debug("request served", keyvals...)
				}
				return resp, err
			},
		}
	}
}
