package log

import (
	"context"

	"go.uber.org/zap/zaptest"
)

// WithTestEffectHandler registers a log handler that writes through t.Log.
func WithTestEffectHandler(
	ctx context.Context,
	t zaptest.TestingT,
) (context.Context, func() context.Context) {
	return WithZapEffectHandler(ctx, 1, zaptest.NewLogger(t))
}
