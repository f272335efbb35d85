package logging

import (
	"context"
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With attaches a child logger carrying fields, added in key order.
func With(ctx context.Context, fields map[string]any) context.Context {
	return child(ctx, func(c zerolog.Context) zerolog.Context {
		for _, k := range slices.Sorted(maps.Keys(fields)) {
			c = c.Interface(k, fields[k])
		}
		return c
	})
}

// WithComponent tags log lines with the subsystem that wrote them.
func WithComponent(ctx context.Context, component string) context.Context {
	return child(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("component", component) })
}

// WithPath tags log lines with the config file they concern.
func WithPath(ctx context.Context, path string) context.Context {
	return child(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("path", path) })
}

func child(ctx context.Context, add func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, add(FromContext(ctx).With()).Logger())
}
