package models

import (
	"fmt"
	"time"
)

type SyncSchedule string

const (
	SyncDaily         SyncSchedule = "daily"
	SyncEveryTwoDays  SyncSchedule = "every_two_days"
	SyncWeekly        SyncSchedule = "weekly"
	SyncEveryTwoWeeks SyncSchedule = "every_two_weeks"
	SyncMonthlyFirst  SyncSchedule = "monthly_first"
	SyncMonthlyLast   SyncSchedule = "monthly_last"
)

// ParseSyncSchedule validates a schedule value coming from the API.
func ParseSyncSchedule(value string) (SyncSchedule, error) {
	switch SyncSchedule(value) {
	case SyncDaily, SyncEveryTwoDays, SyncWeekly, SyncEveryTwoWeeks, SyncMonthlyFirst, SyncMonthlyLast:
		return SyncSchedule(value), nil
	}
	return "", fmt.Errorf("unknown sync schedule %q", value)
}

// UserSettings is a singleton record; the latest row wins. The YNAB token is
// stored as given.
type UserSettings struct {
	ID           int          `db:"id"`
	YNABAPIToken string       `db:"ynab_api_token"`
	SyncSchedule SyncSchedule `db:"sync_schedule"`
	YNABBudgetID *string      `db:"ynab_budget_id"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}
