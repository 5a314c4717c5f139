package schemas

import "github.com/shopspring/decimal"

type GetPricesRequest struct {
	Symbols  []string `json:"symbols"`
	Currency string   `json:"currency"`
}

type PriceQuoteResponse struct {
	Symbol   string          `json:"symbol"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

type GetPricesResponse struct {
	Prices  []PriceQuoteResponse `json:"prices"`
	Missing []string             `json:"missing"`
}

type ConvertRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from"`
	To     string          `json:"to"`
}

type ConvertResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}
