package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOkHealthChecker(t *testing.T) {
	assert.True(t, NewOkHealthChecker().Healthy(context.Background()))
}

func TestWithTimeout(t *testing.T) {
	blocking := HealthCheckFunc(func(ctx context.Context) bool {
		<-ctx.Done()
		return false
	})

	start := time.Now()
	assert.False(t, WithTimeout(blocking, 20*time.Millisecond).Healthy(context.Background()))
	assert.Less(t, time.Since(start), time.Second)

	assert.True(t, WithTimeout(NewOkHealthChecker(), time.Second).Healthy(context.Background()))
}
