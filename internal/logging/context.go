// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyCorrelationID
	keyLogger
)

// GenerateRequestID returns a full UUID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateCorrelationID returns a short 8 character ID for grouping the
// log lines of one recommendation across categories.
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

func stringFrom(ctx context.Context, key ctxKey) string {
	s, _ := ctx.Value(key).(string)
	return s
}

// ContextWithRequestID attaches an HTTP request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// ContextWithNewRequestID attaches a freshly generated request ID.
func ContextWithNewRequestID(ctx context.Context) context.Context {
	return ContextWithRequestID(ctx, GenerateRequestID())
}

// RequestIDFromContext returns "" when no request ID is attached.
func RequestIDFromContext(ctx context.Context) string {
	return stringFrom(ctx, keyRequestID)
}

// ContextWithCorrelationID attaches a correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyCorrelationID, id)
}

// CorrelationIDFromContext returns "" when no correlation ID is attached.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringFrom(ctx, keyCorrelationID)
}

// ContextWithLogger stores logger so Ctx picks it up instead of the global one.
//
//nolint:gocritic // zerolog.Logger is passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// Ctx returns the context logger (or the global one) decorated with the
// request and correlation IDs found in ctx.
//
//	logging.Ctx(ctx).Info().Msg("Recommendation served")
func Ctx(ctx context.Context) *zerolog.Logger {
	base, ok := ctx.Value(keyLogger).(zerolog.Logger)
	if !ok {
		base = Logger()
	}
	return WithContext(ctx, base)
}

// WithContext decorates a component logger with the IDs carried by ctx.
//
//	logging.WithContext(ctx, e.logger).Warn().Msg("Category scoring failed")
//
//nolint:gocritic // zerolog.Logger is passed by value
func WithContext(ctx context.Context, logger zerolog.Logger) *zerolog.Logger {
	zc := logger.With()
	if id := stringFrom(ctx, keyCorrelationID); id != "" {
		zc = zc.Str("correlation_id", id)
	}
	if id := stringFrom(ctx, keyRequestID); id != "" {
		zc = zc.Str("request_id", id)
	}
	l := zc.Logger()
	return &l
}

// CtxErr is shorthand for Ctx(ctx).Err(err).
func CtxErr(ctx context.Context, err error) *zerolog.Event {
	return Ctx(ctx).Err(err)
}

// WithComponent returns a child of the global logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
