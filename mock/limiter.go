package mock

import (
	"context"

	"github.com/docserve/docserve"
)

var _ docserve.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of docserve.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
