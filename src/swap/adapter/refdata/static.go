package refdata

import (
	"context"

	"github.com/MMN3003/swapproxy/src/logger"
	"github.com/MMN3003/swapproxy/src/swap/domain"
)

// Static serves a fixed demo catalogue; use for local testing and offline demos.
type Static struct {
	chains []domain.Chain
	tokens map[int][]domain.Token // chainID -> tokens
	logger *logger.Logger
}

var _ domain.ReferenceDataSource = (*Static)(nil)

var demoChains = []domain.Chain{
	{ID: 1, Name: "Ethereum"},
	{ID: 137, Name: "Polygon"},
	{ID: 56, Name: "BNB Smart Chain"},
	{ID: 42161, Name: "Arbitrum One"},
	{ID: 10, Name: "Optimism"},
	{ID: 8453, Name: "Base"},
	{ID: 43114, Name: "Avalanche C-Chain"},
}

var demoTokens = []domain.Token{
	{Address: "0x0000000000000000000000000000000000000000", Symbol: "ETH", Name: "Ethereum", Decimals: 18},
	{Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Symbol: "USDC", Name: "USD Coin", Decimals: 6},
	{Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Symbol: "USDT", Name: "Tether USD", Decimals: 6},
	{Address: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", Symbol: "WBTC", Name: "Wrapped Bitcoin", Decimals: 8},
	{Address: "0x6B175474E89094C44Da98b954EedeAC495271d0F", Symbol: "DAI", Name: "Dai Stablecoin", Decimals: 18},
}

func NewStatic(logger *logger.Logger) *Static {
	s := &Static{
		chains: demoChains,
		tokens: make(map[int][]domain.Token, len(demoChains)),
		logger: logger,
	}
	// every demo chain shows the same picker entries
	for _, c := range demoChains {
		s.tokens[c.ID] = demoTokens
	}
	return s
}

// Tokens returns the demo tokens; chains outside the catalogue have none.
func (s *Static) Tokens(ctx context.Context, chainID int) ([]domain.Token, error) {
	tokens, ok := s.tokens[chainID]
	if !ok {
		s.logger.Debugf("static tokens: chain %d not in catalogue", chainID)
		return []domain.Token{}, nil
	}
	return append([]domain.Token(nil), tokens...), nil
}

func (s *Static) Chains(ctx context.Context) ([]domain.Chain, error) {
	return append([]domain.Chain(nil), s.chains...), nil
}
