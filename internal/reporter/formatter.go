package reporter

import (
	"fmt"
	"strings"

	"TokenPulse/internal/model"
)

const timeLayout = "2006-01-02 15:04:05"

// FormatSummary renders the price analysis for console output.
func FormatSummary(tokenName string, s *model.Summary) string {
	var b strings.Builder

	b.WriteString("Price Analysis Summary\n")
	b.WriteString(fmt.Sprintf("Token: %s\n", tokenName))
	b.WriteString(fmt.Sprintf("Time Period: %s to %s\n",
		s.FirstTime.Format(timeLayout), s.LastTime.Format(timeLayout)))
	b.WriteString(fmt.Sprintf("Data Points: %d\n\n", s.Points))

	b.WriteString(fmt.Sprintf("Starting Price: $%.2f\n", s.First))
	b.WriteString(fmt.Sprintf("Current Price:  $%.2f\n", s.Last))
	b.WriteString(fmt.Sprintf("Highest Price:  $%.2f\n", s.Max))
	b.WriteString(fmt.Sprintf("Lowest Price:   $%.2f\n", s.Min))
	b.WriteString(fmt.Sprintf("Average Price:  $%.2f\n\n", s.Average))

	b.WriteString(fmt.Sprintf("Total Change: $%.2f (%+.2f%%)\n", s.AbsoluteChange, s.PercentChange))
	b.WriteString(fmt.Sprintf("Market Trend: %s\n", s.Trend))
	b.WriteString(fmt.Sprintf("Price Volatility: %.1f%% (%s)\n", s.VolatilityRatio, s.Volatility))
	b.WriteString(volatilityNote(s.Volatility))

	return b.String()
}

func volatilityNote(v model.VolatilityLabel) string {
	switch v {
	case model.VolatilityHigh:
		return "High volatility detected: significant price swings\n"
	case model.VolatilityModerate:
		return "Moderate volatility: normal market conditions\n"
	default:
		return "Low volatility: stable price movement\n"
	}
}

// FormatTokenList renders the ranked token list, one token per line.
func FormatTokenList(tokens []model.TokenInfo) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Top %d tokens\n", len(tokens)))
	for _, t := range tokens {
		b.WriteString(fmt.Sprintf("  %-10s $%-12.4f 24h %+7.2f%%  %s\n",
			t.Symbol, t.Price, t.Change24hPercent, t.Address))
	}
	return b.String()
}

// FormatEmptySeries explains an empty-but-successful upstream response.
func FormatEmptySeries(tokenName string) string {
	return fmt.Sprintf("No price data returned for %s in the requested window.\n"+
		"Try a longer window or a coarser interval.\n", tokenName)
}
