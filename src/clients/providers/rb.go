package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"server/src/config"
	"server/src/utils"
	"server/src/utils/requests"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
)

// Label strings as they appear on the bank's product pages. The markup has no
// schema version; when it drifts, symbols silently stop resolving.
const (
	rbStockQuoteLabel  = "Quote"
	rbFundPriceLabel   = "Price"
	rbCurrencyLabel    = "Currency"
	rbCertNominalLabel = "Nominal value"
	rbCertBidLabel     = "Bid"
)

// RBProvider resolves prices for bank-listed instruments by scraping the
// product pages, since no structured API exposes this data. Each symbol is
// tried as a stock, then a fund, then an investment certificate; the first
// page yielding a positive price wins. Any fetch or parse failure on a path
// moves on to the next path, and a symbol with no valid price from any path
// is left out of the result.
type RBProvider struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

func NewRBProvider(cfg *config.Config) *RBProvider {
	return &RBProvider{
		API:     requests.NewExternalAPIService(),
		BaseURL: cfg.Providers.RB.BaseURL,
	}
}

func (p *RBProvider) ProviderName() string {
	return "rb"
}

func (p *RBProvider) IsAvailable() bool {
	return p.BaseURL != ""
}

func (p *RBProvider) FetchAssetPrices(ctx context.Context, symbols []string, currency string) []Quote {
	logger := utils.LoggerFromContext(ctx)

	quotes := make([]Quote, 0, len(symbols))
	for _, symbol := range symbols {
		quote, ok := p.fetchOne(ctx, symbol, currency)
		if !ok {
			logger.WithField("symbol", symbol).Debug("rb: no price from any product page")
			continue
		}
		quotes = append(quotes, quote)
	}
	return quotes
}

func (p *RBProvider) fetchOne(ctx context.Context, symbol, currency string) (Quote, bool) {
	paths := []func(context.Context, string, string) (Quote, bool){
		p.fetchStock,
		p.fetchFund,
		p.fetchCertificate,
	}
	for _, fetch := range paths {
		if quote, ok := fetch(ctx, symbol, currency); ok {
			return quote, true
		}
	}
	return Quote{}, false
}

// fetchStock scans the stock quote page for the "Quote" label and the numeric
// value that follows it.
func (p *RBProvider) fetchStock(ctx context.Context, symbol, currency string) (Quote, bool) {
	texts, err := p.pageTexts(ctx, p.productURL("stocks", symbol))
	if err != nil {
		return Quote{}, false
	}
	return quoteFromLabels(texts, rbStockQuoteLabel, symbol, currency)
}

// fetchFund works like the stock path but over the fund page's label set.
func (p *RBProvider) fetchFund(ctx context.Context, symbol, currency string) (Quote, bool) {
	texts, err := p.pageTexts(ctx, p.productURL("funds", symbol))
	if err != nil {
		return Quote{}, false
	}
	return quoteFromLabels(texts, rbFundPriceLabel, symbol, currency)
}

// fetchCertificate prices a structured certificate from its nominal face
// value and the bid expressed as a percentage of par. A missing bid yields no
// price, not a zero.
func (p *RBProvider) fetchCertificate(ctx context.Context, symbol, currency string) (Quote, bool) {
	texts, err := p.pageTexts(ctx, p.productURL("certificates", symbol))
	if err != nil {
		return Quote{}, false
	}

	nominalRaw, ok := valueAfterLabel(texts, rbCertNominalLabel)
	if !ok {
		return Quote{}, false
	}
	nominal, err := utils.ParseAmount(nominalRaw)
	if err != nil {
		return Quote{}, false
	}

	bidRaw, ok := valueAfterLabel(texts, rbCertBidLabel)
	if !ok {
		return Quote{}, false
	}
	bid, err := utils.ParseAmount(bidRaw)
	if err != nil {
		return Quote{}, false
	}

	price := nominal.Mul(bid).Div(decimal.NewFromInt(100))
	quote := Quote{Symbol: symbol, Price: price, Currency: pageCurrency(texts, currency)}
	if !quote.Valid() {
		return Quote{}, false
	}
	return quote, true
}

func (p *RBProvider) productURL(kind, symbol string) string {
	return fmt.Sprintf("%s/%s/detail?symbol=%s", p.BaseURL, kind, url.QueryEscape(symbol))
}

// pageTexts fetches a product page and returns its text nodes in document
// order, trimmed, with empty nodes and script/style content dropped.
func (p *RBProvider) pageTexts(ctx context.Context, endpoint string) ([]string, error) {
	resp, err := p.API.Get(ctx, endpoint, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("product page returned %s", resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	var texts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				texts = append(texts, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return texts, nil
}

// quoteFromLabels builds a quote from a label/value text sequence. The price
// value is the text immediately following the price label.
func quoteFromLabels(texts []string, priceLabel, symbol, fallbackCurrency string) (Quote, bool) {
	raw, ok := valueAfterLabel(texts, priceLabel)
	if !ok {
		return Quote{}, false
	}
	price, err := utils.ParseAmount(raw)
	if err != nil {
		return Quote{}, false
	}

	quote := Quote{Symbol: symbol, Price: price, Currency: pageCurrency(texts, fallbackCurrency)}
	if !quote.Valid() {
		return Quote{}, false
	}
	return quote, true
}

func valueAfterLabel(texts []string, label string) (string, bool) {
	for i, text := range texts {
		if strings.EqualFold(text, label) && i+1 < len(texts) {
			return texts[i+1], true
		}
	}
	return "", false
}

func pageCurrency(texts []string, fallback string) string {
	if currency, ok := valueAfterLabel(texts, rbCurrencyLabel); ok {
		return currency
	}
	return fallback
}
