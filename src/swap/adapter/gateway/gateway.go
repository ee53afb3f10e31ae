package gateway

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MMN3003/swapproxy/src/Infrastructure/oneinch"
	"github.com/MMN3003/swapproxy/src/swap/domain"
)

// Operation names used in surfaced errors.
const (
	OpQuote   = "Quote"
	OpSwap    = "Swap"
	OpTokens  = "Tokens"
	OpChains  = "Chains"
	OpBalance = "Balance"
	OpGas     = "Gas estimate"
)

// Client is the slice of the 1inch client the gateway drives.
type Client interface {
	GetQuote(ctx context.Context, p oneinch.QuoteParams) (json.RawMessage, error)
	PostSwap(ctx context.Context, p oneinch.SwapParams) (json.RawMessage, error)
	GetTokens(ctx context.Context, chainID int) ([]oneinch.Token, error)
	GetSupportedChains(ctx context.Context) ([]oneinch.Chain, error)
	GetBalance(ctx context.Context, p oneinch.BalanceParams) (json.RawMessage, error)
	GetGasEstimate(ctx context.Context, p oneinch.GasParams) (*oneinch.GasEstimate, error)
}

type Gateway struct {
	client Client
}

var _ domain.Gateway = (*Gateway)(nil)

func New(client Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) GetQuote(ctx context.Context, intent domain.SwapIntent) (json.RawMessage, error) {
	raw, err := g.client.GetQuote(ctx, quoteParams(intent))
	if err != nil {
		return nil, mapError(OpQuote, err)
	}
	return raw, nil
}

func (g *Gateway) PostExecute(ctx context.Context, req domain.ExecuteRequest) (json.RawMessage, error) {
	raw, err := g.client.PostSwap(ctx, oneinch.SwapParams{
		QuoteParams: quoteParams(req.Intent),
		QuoteID:     req.QuoteID,
		Permit:      req.Permit,
		Signature:   req.Signature,
	})
	if err != nil {
		return nil, mapError(OpSwap, err)
	}
	return raw, nil
}

func (g *Gateway) ListTokens(ctx context.Context, chainID int) ([]domain.Token, error) {
	tokens, err := g.client.GetTokens(ctx, chainID)
	if err != nil {
		return nil, mapError(OpTokens, err)
	}
	out := make([]domain.Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, domain.Token{
			Address:  t.Address,
			Symbol:   t.Symbol,
			Name:     t.Name,
			Decimals: t.Decimals,
			LogoURI:  t.LogoURI,
		})
	}
	return out, nil
}

func (g *Gateway) ListChains(ctx context.Context) ([]domain.Chain, error) {
	chains, err := g.client.GetSupportedChains(ctx)
	if err != nil {
		return nil, mapError(OpChains, err)
	}
	out := make([]domain.Chain, 0, len(chains))
	for _, c := range chains {
		out = append(out, domain.Chain{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (g *Gateway) Balance(ctx context.Context, q domain.BalanceQuery) (json.RawMessage, error) {
	raw, err := g.client.GetBalance(ctx, oneinch.BalanceParams{
		ChainID:       q.ChainID,
		TokenAddress:  q.TokenAddress,
		WalletAddress: q.WalletAddress,
	})
	if err != nil {
		return nil, mapError(OpBalance, err)
	}
	return raw, nil
}

func (g *Gateway) GasEstimate(ctx context.Context, q domain.GasQuery) (*domain.GasEstimate, error) {
	est, err := g.client.GetGasEstimate(ctx, oneinch.GasParams{
		ChainID:          q.ChainID,
		FromTokenAddress: q.FromTokenAddress,
		ToTokenAddress:   q.ToTokenAddress,
		Amount:           q.Amount,
	})
	if err != nil {
		return nil, mapError(OpGas, err)
	}
	return &domain.GasEstimate{Gas: est.Gas, GasPrice: est.GasPrice}, nil
}

func quoteParams(i domain.SwapIntent) oneinch.QuoteParams {
	return oneinch.QuoteParams{
		SrcChain:        i.SourceChainID,
		DestChain:       i.DestChainID,
		SrcTokenAddress: i.SourceTokenAddress,
		DstTokenAddress: i.DestTokenAddress,
		Amount:          i.Amount,
		WalletAddress:   i.WalletAddress,
	}
}

// mapError folds client failures into the domain taxonomy.
func mapError(op string, err error) error {
	var apiErr *oneinch.APIError
	if errors.As(err, &apiErr) {
		return &domain.UpstreamError{Op: op, Status: apiErr.StatusCode, Message: apiErr.Message}
	}
	var reqErr *oneinch.RequestError
	if errors.As(err, &reqErr) {
		return &domain.TransportError{Op: op, Err: reqErr.Err}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &domain.TransportError{Op: op, Err: err}
	}
	return err
}
