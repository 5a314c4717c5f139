package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
)

// ScheduledTask runs a job on a cron spec. Cancel removes the cron entry and
// cancels the context handed to every tick, so an in-flight run observes the
// shutdown instead of finishing against a detached background context.
type ScheduledTask struct {
	cronID cron.EntryID
	cron   *cron.Cron
	cancel context.CancelFunc
}

func NewScheduledTask(cronSpec string, taskFunc func(context.Context)) (*ScheduledTask, error) {
	ctx, cancel := context.WithCancel(context.Background())
	c := cron.New()

	id, err := c.AddFunc(cronSpec, func() {
		if ctx.Err() != nil {
			return
		}
		taskFunc(ctx)
	})
	if err != nil {
		cancel()
		return nil, err
	}

	c.Start()
	return &ScheduledTask{
		cronID: id,
		cron:   c,
		cancel: cancel,
	}, nil
}

func (s *ScheduledTask) Cancel() {
	s.cron.Remove(s.cronID)
	s.cancel()
}
