package models

import "time"

// SyncLog records one completed sync run. The latest SyncDate drives the
// schedule-due evaluation in the scheduler.
type SyncLog struct {
	ID                int       `db:"id"`
	AccountCount      int       `db:"account_count"`
	AssetCount        int       `db:"asset_count"`
	UnresolvedSymbols string    `db:"unresolved_symbols"`
	SyncDate          time.Time `db:"sync_date"`
	CreatedAt         time.Time `db:"created_at"`
}
