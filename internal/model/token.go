package model

// TokenInfo is one entry of the upstream ranked token list.
type TokenInfo struct {
	Address          string  `json:"address"`
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Volume24hUSD     float64 `json:"v24hUSD"`
	Change24hPercent float64 `json:"v24hChangePercent"`
	MarketCap        float64 `json:"mc"`
}
