package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AliJone/Gaza/internal/service"
)

// PendingMonitorWorker logs the moderation backlog on a fixed interval
// so operators notice a growing queue of unreviewed submissions.
type PendingMonitorWorker struct {
	moderationService *service.ModerationService
	interval          time.Duration
}

// NewPendingMonitorWorker constructs a PendingMonitorWorker.
func NewPendingMonitorWorker(moderationService *service.ModerationService, interval time.Duration) *PendingMonitorWorker {
	return &PendingMonitorWorker{
		moderationService: moderationService,
		interval:          interval,
	}
}

// Start begins the monitor loop and listens for context cancellation.
func (w *PendingMonitorWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting pending monitor worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run()
		case <-ctx.Done():
			log.Info().Msg("Pending monitor worker stopped")
			return
		}
	}
}

func (w *PendingMonitorWorker) run() {
	n, err := w.moderationService.PendingCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to count pending entries")
		return
	}
	if n > 0 {
		log.Info().Int("pending", n).Msg("Entries awaiting review")
	}
}
