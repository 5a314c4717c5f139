package schemas

import "github.com/shopspring/decimal"

type GetYNABAccountsRequest struct {
	Token string `json:"token"`
}

type YNABAccountResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type SyncResponse struct {
	Message string `json:"message"`
}

// SyncSummary describes one completed sync run.
type SyncSummary struct {
	AccountsSynced    int      `json:"accountsSynced"`
	AssetCount        int      `json:"assetCount"`
	UnresolvedSymbols []string `json:"unresolvedSymbols"`
}
