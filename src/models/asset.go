package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is one tracked holding: a symbol, the amount owned, and the YNAB
// account its value is pushed to.
type Asset struct {
	ID            int             `db:"id"`
	Symbol        string          `db:"symbol"`
	Amount        decimal.Decimal `db:"amount"`
	YNABAccountID string          `db:"ynab_account_id"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
