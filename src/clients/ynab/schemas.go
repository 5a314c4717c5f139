package ynab

type CurrencyFormat struct {
	ISOCode string `json:"iso_code"`
}

type Budget struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CurrencyFormat CurrencyFormat `json:"currency_format"`
}

type GetBudgetsResponse struct {
	Data struct {
		Budgets       []Budget `json:"budgets"`
		DefaultBudget *Budget  `json:"default_budget"`
	} `json:"data"`
}

// Account balances come back in milliunits (1/1000 of the currency unit).
type Account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance int64  `json:"balance"`
	Closed  bool   `json:"closed"`
	Deleted bool   `json:"deleted"`
}

type GetAccountsResponse struct {
	Data struct {
		Accounts []Account `json:"accounts"`
	} `json:"data"`
}

type Transaction struct {
	AccountID string `json:"account_id"`
	Date      string `json:"date"`
	Amount    int64  `json:"amount"`
	PayeeName string `json:"payee_name"`
	Memo      string `json:"memo"`
	Cleared   string `json:"cleared"`
	Approved  bool   `json:"approved"`
}

type CreateTransactionRequest struct {
	Transaction *Transaction `json:"transaction"`
}
