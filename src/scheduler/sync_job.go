package scheduler

import (
	"context"
	"server/src/models"
	"server/src/repositories"
	"server/src/services"
	"server/src/utils"
	"time"

	"github.com/sirupsen/logrus"
)

// SyncJob runs the portfolio sync on a cron tick. The tick fires daily; the
// stored schedule decides whether a given day is actually due, keyed off the
// latest sync log. The job itself holds no schedule state.
type SyncJob struct {
	settingsRepo repositories.UserSettingsRepository
	syncLogRepo  repositories.SyncLogRepository
	syncService  services.SyncServiceI
	logger       *logrus.Logger
}

func NewSyncJob(
	settingsRepo repositories.UserSettingsRepository,
	syncLogRepo repositories.SyncLogRepository,
	syncService services.SyncServiceI,
	logger *logrus.Logger,
) *SyncJob {
	return &SyncJob{
		settingsRepo: settingsRepo,
		syncLogRepo:  syncLogRepo,
		syncService:  syncService,
		logger:       logger,
	}
}

// Start registers the job with the given cron spec.
func (j *SyncJob) Start(cronSpec string) (*ScheduledTask, error) {
	return NewScheduledTask(cronSpec, j.Run)
}

// Run executes one scheduler tick: skip quietly when settings are missing or
// the schedule is not due, otherwise trigger a sync run. The tick context
// comes from the owning ScheduledTask and is canceled on shutdown.
func (j *SyncJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	ctx = utils.WithLogger(ctx, j.logger)

	settings, err := j.settingsRepo.Get(ctx)
	if err != nil {
		j.logger.WithError(err).Error("scheduler: could not load settings")
		return
	}
	if settings == nil {
		j.logger.Debug("scheduler: no settings saved, skipping tick")
		return
	}

	lastLog, err := j.syncLogRepo.GetLatest(ctx)
	if err != nil {
		j.logger.WithError(err).Error("scheduler: could not load last sync log")
		return
	}
	var lastSync *time.Time
	if lastLog != nil {
		lastSync = &lastLog.SyncDate
	}

	if !ScheduleDue(settings.SyncSchedule, lastSync, time.Now()) {
		j.logger.WithField("schedule", settings.SyncSchedule).Debug("scheduler: sync not due")
		return
	}

	if _, err := j.syncService.SyncPortfolio(ctx); err != nil {
		j.logger.WithError(err).Error("scheduler: sync run failed")
	}
}

// ScheduleDue reports whether a sync is due at 'now' for the given schedule.
// Monthly schedules only fire on their calendar day; for interval schedules a
// portfolio that never synced is always due.
func ScheduleDue(schedule models.SyncSchedule, lastSync *time.Time, now time.Time) bool {
	switch schedule {
	case models.SyncMonthlyFirst:
		return now.Day() == 1
	case models.SyncMonthlyLast:
		return now.AddDate(0, 0, 1).Day() == 1
	}

	if lastSync == nil {
		return true
	}
	elapsed := daysBetween(*lastSync, now)

	switch schedule {
	case models.SyncDaily:
		return elapsed >= 1
	case models.SyncEveryTwoDays:
		return elapsed >= 2
	case models.SyncWeekly:
		return elapsed >= 7
	case models.SyncEveryTwoWeeks:
		return elapsed >= 14
	}
	return false
}

// daysBetween counts calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}
