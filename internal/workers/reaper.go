// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/service"
)

// authRequestReaper periodically expires pending login-with-device requests
// whose TTL elapsed without an answer. Expiry is also applied lazily on poll;
// the reaper keeps the table from accumulating requests nobody polls anymore.
type authRequestReaper struct {
	authRequests service.AuthRequestService
	interval     time.Duration

	logger *logger.Logger
}

func newAuthRequestReaper(authRequests service.AuthRequestService, interval time.Duration, logger *logger.Logger) *authRequestReaper {
	return &authRequestReaper{
		authRequests: authRequests,
		interval:     interval,
		logger:       logger,
	}
}

// Run starts the reaper loop in its own goroutine and returns immediately.
// The loop lives for the rest of the process.
func (r *authRequestReaper) Run() {
	r.logger.Info().Dur("interval", r.interval).Msg("auth request reaper started")

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for range ticker.C {
			r.reap(context.Background())
		}
	}()
}

// reap runs a single expiry sweep.
func (r *authRequestReaper) reap(ctx context.Context) {
	expired, err := r.authRequests.ExpireStale(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("auth request reaper sweep failed")
		return
	}

	if expired > 0 {
		r.logger.Info().Int64("expired", expired).Msg("expired stale auth requests")
	}
}
