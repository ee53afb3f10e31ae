package domain

import (
	"context"
	"encoding/json"
)

// Gateway is the upstream aggregator port. Successful payloads come back verbatim.
type Gateway interface {
	GetQuote(ctx context.Context, intent SwapIntent) (json.RawMessage, error)
	PostExecute(ctx context.Context, req ExecuteRequest) (json.RawMessage, error)

	// ListTokens returns the chain's tokens in upstream order.
	ListTokens(ctx context.Context, chainID int) ([]Token, error)
	ListChains(ctx context.Context) ([]Chain, error)

	Balance(ctx context.Context, q BalanceQuery) (json.RawMessage, error)
	GasEstimate(ctx context.Context, q GasQuery) (*GasEstimate, error)
}

// ReferenceDataSource supplies tokens and chains for the pickers.
type ReferenceDataSource interface {
	Tokens(ctx context.Context, chainID int) ([]Token, error)
	Chains(ctx context.Context) ([]Chain, error)
}
