package providers

import "server/src/config"

// BuildProviders assembles the configured providers in preference order.
// Names missing from the order list are left out; an empty list falls back to
// the full set.
func BuildProviders(cfg *config.Config) []PriceProvider {
	available := map[string]PriceProvider{
		"rb":        NewRBProvider(cfg),
		"coingecko": NewCoinGeckoProvider(cfg),
		"static":    NewStaticProvider(cfg),
	}

	order := cfg.Providers.Order
	if len(order) == 0 {
		order = []string{"rb", "coingecko", "static"}
	}

	providerList := make([]PriceProvider, 0, len(order))
	for _, name := range order {
		if provider, ok := available[name]; ok {
			providerList = append(providerList, provider)
		}
	}
	return providerList
}
