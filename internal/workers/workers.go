package workers

import (
	"github.com/nstepanov/lockbox/internal/config"
	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/service"
)

// Workers aggregates the background workers of the server process.
type Workers struct {
	workers []Worker
}

// NewWorkers wires every background worker to the services it drives.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newAuthRequestReaper(services.AuthRequestService, cfg.ReapInterval, logger),
		},
	}
}

// Run starts every worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
