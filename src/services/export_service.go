package services

import (
	"context"
	"fmt"
	"server/src/clients/providers"
	"server/src/repositories"

	"github.com/xuri/excelize/v2"
)

type ExportServiceI interface {
	BuildPortfolioWorkbook(ctx context.Context, currency string) (*excelize.File, error)
}

// ExportService renders the current holdings with resolved prices into an
// XLSX workbook. Assets whose symbol did not resolve keep empty price and
// value cells.
type ExportService struct {
	assetRepo  repositories.AssetRepository
	marketData MarketDataServiceI
}

func NewExportService(assetRepo repositories.AssetRepository, marketData MarketDataServiceI) *ExportService {
	return &ExportService{
		assetRepo:  assetRepo,
		marketData: marketData,
	}
}

func (s *ExportService) BuildPortfolioWorkbook(ctx context.Context, currency string) (*excelize.File, error) {
	assets, err := s.assetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(assets))
	for _, asset := range assets {
		symbols = append(symbols, asset.Symbol)
	}
	quotes, _ := s.marketData.GetPrices(ctx, symbols, currency)
	priceBySymbol := make(map[string]providers.Quote, len(quotes))
	for _, quote := range quotes {
		priceBySymbol[quote.Symbol] = quote
	}

	file := excelize.NewFile()
	sheet := "Portfolio"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Symbol", "Amount", "Price", "Value", "Currency", "YNAB Account"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, asset := range assets {
		row := i + 2
		values := []interface{}{asset.Symbol, asset.Amount.InexactFloat64(), nil, nil, nil, asset.YNABAccountID}
		if quote, ok := priceBySymbol[asset.Symbol]; ok {
			values[2] = quote.Price.InexactFloat64()
			values[3] = asset.Amount.Mul(quote.Price).InexactFloat64()
			values[4] = quote.Currency
		}
		for col, value := range values {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}
	return file, nil
}
