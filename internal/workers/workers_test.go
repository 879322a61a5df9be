// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

// stubAuthRequestService implements service.AuthRequestService with a
// configurable ExpireStale; the other methods are never reached by the reaper.
type stubAuthRequestService struct {
	expireStaleFn func(ctx context.Context) (int64, error)
}

func (s *stubAuthRequestService) Create(_ context.Context, request models.AuthRequest, _ string) (models.AuthRequest, error) {
	return request, nil
}

func (s *stubAuthRequestService) Poll(_ context.Context, id uuid.UUID, _ string) (models.AuthRequest, error) {
	return models.AuthRequest{ID: id}, nil
}

func (s *stubAuthRequestService) ListPending(_ context.Context, _ int64) ([]models.AuthRequest, error) {
	return nil, nil
}

func (s *stubAuthRequestService) Answer(_ context.Context, _ int64, id uuid.UUID, _ models.AnswerAuthRequestRequest) (models.AuthRequest, error) {
	return models.AuthRequest{ID: id}, nil
}

func (s *stubAuthRequestService) ExpireStale(ctx context.Context) (int64, error) {
	return s.expireStaleFn(ctx)
}

func TestAuthRequestReaper_Reap(t *testing.T) {
	calls := 0
	svc := &stubAuthRequestService{
		expireStaleFn: func(_ context.Context) (int64, error) {
			calls++
			return 2, nil
		},
	}

	reaper := newAuthRequestReaper(svc, time.Minute, logger.Nop())
	reaper.reap(context.Background())

	if calls != 1 {
		t.Errorf("expected one ExpireStale call, got %d", calls)
	}
}

func TestAuthRequestReaper_Reap_SweepError(t *testing.T) {
	svc := &stubAuthRequestService{
		expireStaleFn: func(_ context.Context) (int64, error) {
			return 0, errors.New("db unavailable")
		},
	}

	reaper := newAuthRequestReaper(svc, time.Minute, logger.Nop())

	// A failing sweep must not panic; the next tick retries.
	reaper.reap(context.Background())
}

func TestAuthRequestReaper_Run_SweepsPeriodically(t *testing.T) {
	swept := make(chan struct{}, 1)
	svc := &stubAuthRequestService{
		expireStaleFn: func(_ context.Context) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 0, nil
		},
	}

	reaper := newAuthRequestReaper(svc, time.Millisecond, logger.Nop())
	reaper.Run()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("reaper did not sweep within 2s")
	}
}
