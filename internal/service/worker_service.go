package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Refresher reloads local state from the store
type Refresher interface {
	Refresh(ctx context.Context) error
}

// WorkerService periodically refreshes the staffing data so writes made by
// other clients become visible.
type WorkerService struct {
	refresher Refresher
	interval  time.Duration
	log       logrus.FieldLogger
}

func NewWorkerService(refresher Refresher, interval time.Duration, log logrus.FieldLogger) *WorkerService {
	return &WorkerService{
		refresher: refresher,
		interval:  interval,
		log:       log.WithField("component", "refresh_worker"),
	}
}

// Start runs until ctx is cancelled. A non-positive interval disables the worker.
func (w *WorkerService) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.log.Info("Refresh worker disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.WithField("interval", w.interval.String()).Info("Refresh worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *WorkerService) refresh(ctx context.Context) {
	start := time.Now()
	if err := w.refresher.Refresh(ctx); err != nil {
		w.log.WithError(err).Error("Error refreshing staffing data")
		return
	}
	w.log.WithField("elapsed_ms", time.Since(start).Milliseconds()).Debug("Staffing data refreshed")
}
