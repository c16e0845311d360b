package supabase

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/supabase-community/supabase-go"

	"owusu1946/portfolio-chat/types"
)

// Tracker writes turn activities in the background so a slow insert never
// delays a chat response. Wait drains the pending writes on shutdown.
type Tracker struct {
	client *supabase.Client
	log    logrus.FieldLogger
	wg     sync.WaitGroup
}

func NewTracker(client *supabase.Client, log logrus.FieldLogger) *Tracker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Tracker{client: client, log: log}
}

// Track queues one insert. Failures are logged, not returned.
func (t *Tracker) Track(activity types.TurnActivity) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := TrackTurnActivity(t.client, activity); err != nil {
			t.log.WithError(err).WithField("request_id", activity.RequestID).Warn("Failed to record turn activity")
		}
	}()
}

// Wait blocks until every queued insert has finished or ctx is done.
func (t *Tracker) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
