package server

import (
	"context"
	"time"
)

// HealthChecker reports whether a backing dependency can serve requests.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthCheckFunc adapts a plain function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) bool

func (f HealthCheckFunc) Healthy(ctx context.Context) bool {
	return f(ctx)
}

type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(context.Context) bool {
	return true
}

// WithTimeout bounds every check of hc by d, so a hung store fails the probe
// instead of blocking it.
func WithTimeout(hc HealthChecker, d time.Duration) HealthChecker {
	return HealthCheckFunc(func(ctx context.Context) bool {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return hc.Healthy(ctx)
	})
}
