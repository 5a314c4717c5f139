package schemas

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateAssetRequest struct {
	Symbol        string          `json:"symbol"`
	Amount        decimal.Decimal `json:"amount"`
	YNABAccountID string          `json:"ynabAccountId"`
}

type UpdateAssetRequest struct {
	ID            int              `json:"-"`
	Symbol        *string          `json:"symbol"`
	Amount        *decimal.Decimal `json:"amount"`
	YNABAccountID *string          `json:"ynabAccountId"`
}

type AssetResponse struct {
	ID            int             `json:"id"`
	Symbol        string          `json:"symbol"`
	Amount        decimal.Decimal `json:"amount"`
	YNABAccountID string          `json:"ynabAccountId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
