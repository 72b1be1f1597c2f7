package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SessionPurger removes expired admin sessions.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// SessionJanitor periodically purges expired admin sessions.
type SessionJanitor struct {
	purger    SessionPurger
	interval  time.Duration
	logger    zerolog.Logger
	stopCh    chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewSessionJanitor creates a janitor. Call Start to begin sweeping.
func NewSessionJanitor(purger SessionPurger, interval time.Duration, logger zerolog.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &SessionJanitor{
		purger:   purger,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the sweep loop.
func (j *SessionJanitor) Start() {
	j.startOnce.Do(func() {
		j.wg.Add(1)
		go j.loop()
	})
}

// Sweep runs one purge.
func (j *SessionJanitor) Sweep(ctx context.Context) {
	n, err := j.purger.PurgeExpired(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("purge expired sessions")
		return
	}
	if n > 0 {
		j.logger.Debug().Int("count", n).Msg("purged expired sessions")
	}
}

func (j *SessionJanitor) loop() {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			j.Sweep(ctx)
			cancel()
		case <-j.stopCh:
			return
		}
	}
}

// Stop stops the loop and waits for an in-flight sweep.
func (j *SessionJanitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopCh)
		j.wg.Wait()
	})
}
