package es

import (
	"context"
	"log/slog"
)

type HealthChecker struct {
	store *Store
}

func NewHealthChecker(store *Store) *HealthChecker {
	return &HealthChecker{store: store}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.store == nil || hc.store.Reader == nil {
		return false
	}
	ok, err := hc.store.Reader.client.Ping().IsSuccess(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}
