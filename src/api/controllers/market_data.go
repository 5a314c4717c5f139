package controllers

import (
	"context"
	"server/src/schemas"
	"server/src/services"
	"server/src/utils"

	"github.com/xuri/excelize/v2"
)

type MarketDataControllerI interface {
	GetPrices(ctx context.Context, req *schemas.GetPricesRequest) (*schemas.GetPricesResponse, error)
	Convert(ctx context.Context, req *schemas.ConvertRequest) (*schemas.ConvertResponse, error)
	ExportPortfolio(ctx context.Context, currency string) (*excelize.File, error)
}

type MarketDataController struct {
	marketData services.MarketDataServiceI
	export     services.ExportServiceI
}

func NewMarketDataController(marketData services.MarketDataServiceI, export services.ExportServiceI) *MarketDataController {
	return &MarketDataController{
		marketData: marketData,
		export:     export,
	}
}

func (c *MarketDataController) GetPrices(ctx context.Context, req *schemas.GetPricesRequest) (*schemas.GetPricesResponse, error) {
	if len(req.Symbols) == 0 {
		return nil, utils.BadRequest("symbols must not be empty")
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	quotes, missing := c.marketData.GetPrices(ctx, req.Symbols, currency)

	response := &schemas.GetPricesResponse{
		Prices:  make([]schemas.PriceQuoteResponse, 0, len(quotes)),
		Missing: missing,
	}
	for _, quote := range quotes {
		response.Prices = append(response.Prices, schemas.PriceQuoteResponse{
			Symbol:   quote.Symbol,
			Price:    quote.Price,
			Currency: quote.Currency,
		})
	}
	return response, nil
}

func (c *MarketDataController) Convert(ctx context.Context, req *schemas.ConvertRequest) (*schemas.ConvertResponse, error) {
	if req.From == "" || req.To == "" {
		return nil, utils.BadRequest("from and to currencies are required")
	}

	converted, err := c.marketData.Convert(ctx, req.Amount, req.From, req.To)
	if err != nil {
		return nil, utils.ServiceUnavailable("currency conversion failed: " + err.Error())
	}
	return &schemas.ConvertResponse{Amount: converted, Currency: req.To}, nil
}

func (c *MarketDataController) ExportPortfolio(ctx context.Context, currency string) (*excelize.File, error) {
	if currency == "" {
		currency = "USD"
	}
	return c.export.BuildPortfolioWorkbook(ctx, currency)
}
