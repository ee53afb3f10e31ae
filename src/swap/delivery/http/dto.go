// Package http exposes the swap proxy over HTTP.
//
// Schemes: http
// Host: localhost:3001
// BasePath: /api
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MMN3003/swapproxy/src/swap/domain"
)

// ChainID accepts a chain id sent either as a JSON number or as a numeric string,
// since browser selects post their values as strings.
type ChainID int

func (c *ChainID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("chain id %s is not an integer", string(b))
	}
	*c = ChainID(n)
	return nil
}

// QuoteQuery carries the quote parameters in the query string
// swagger:parameters getQuote
type QuoteQuery struct {
	SrcChain        int    `form:"srcChain"`
	DestChain       int    `form:"destChain"`
	SrcTokenAddress string `form:"srcTokenAddress"`
	DstTokenAddress string `form:"dstTokenAddress"`
	Amount          string `form:"amount"`
	WalletAddress   string `form:"walletAddress"`
}

func (q QuoteQuery) ToIntent() domain.SwapIntent {
	return domain.SwapIntent{
		SourceChainID:      q.SrcChain,
		DestChainID:        q.DestChain,
		SourceTokenAddress: strings.TrimSpace(q.SrcTokenAddress),
		DestTokenAddress:   strings.TrimSpace(q.DstTokenAddress),
		Amount:             strings.TrimSpace(q.Amount),
		WalletAddress:      strings.TrimSpace(q.WalletAddress),
	}
}

// SwapIntentBody is the six-field swap request
// swagger:model SwapIntentBody
type SwapIntentBody struct {
	SrcChain        ChainID `json:"srcChain" swaggertype:"integer" example:"1"`
	DestChain       ChainID `json:"destChain" swaggertype:"integer" example:"137"`
	SrcTokenAddress string  `json:"srcTokenAddress" example:"0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"`
	DstTokenAddress string  `json:"dstTokenAddress" example:"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"`
	Amount          string  `json:"amount" example:"1000000"`
	WalletAddress   string  `json:"walletAddress"`
}

func (b SwapIntentBody) ToIntent() domain.SwapIntent {
	return QuoteQuery{
		SrcChain:        int(b.SrcChain),
		DestChain:       int(b.DestChain),
		SrcTokenAddress: b.SrcTokenAddress,
		DstTokenAddress: b.DstTokenAddress,
		Amount:          b.Amount,
		WalletAddress:   b.WalletAddress,
	}.ToIntent()
}

// ExecuteSwapBody submits a quote obtained from /api/quote
// swagger:model ExecuteSwapBody
type ExecuteSwapBody struct {
	SwapIntentBody
	QuoteID   string          `json:"quoteId"`
	Permit    json.RawMessage `json:"permit,omitempty" swaggertype:"object"`
	Signature json.RawMessage `json:"signature,omitempty" swaggertype:"string"`
}

// ToQuote rebuilds the quote reference the caller holds, bound to the body's intent.
func (b ExecuteSwapBody) ToQuote() *domain.Quote {
	return &domain.Quote{
		QuoteID:   strings.TrimSpace(b.QuoteID),
		Permit:    nullToNil(b.Permit),
		Signature: nullToNil(b.Signature),
		Intent:    b.ToIntent(),
	}
}

// FullSwapResponse is the quote-then-execute outcome
// swagger:model FullSwapResponse
type FullSwapResponse struct {
	TxHash   string          `json:"txHash"`
	Status   string          `json:"status" enums:"success,failed"`
	Quote    json.RawMessage `json:"quote" swaggertype:"object"`
	SwapData json.RawMessage `json:"swapData" swaggertype:"object"`
}

func fromSwapResult(r *domain.SwapResult) FullSwapResponse {
	resp := FullSwapResponse{
		TxHash:   r.TransactionHash,
		Status:   string(r.Status),
		SwapData: r.Raw,
	}
	if r.Quote != nil {
		resp.Quote = r.Quote.Raw
	}
	return resp
}

// swagger:parameters getBalance
type BalanceQuery struct {
	ChainID       int    `form:"chainId"`
	TokenAddress  string `form:"tokenAddress"`
	WalletAddress string `form:"walletAddress"`
}

func (q BalanceQuery) ToDomain() domain.BalanceQuery {
	return domain.BalanceQuery{
		ChainID:       q.ChainID,
		TokenAddress:  strings.TrimSpace(q.TokenAddress),
		WalletAddress: strings.TrimSpace(q.WalletAddress),
	}
}

// swagger:parameters getGas
type GasQuery struct {
	ChainID          int    `form:"chainId"`
	FromTokenAddress string `form:"fromTokenAddress"`
	ToTokenAddress   string `form:"toTokenAddress"`
	Amount           string `form:"amount"`
}

func (q GasQuery) ToDomain() domain.GasQuery {
	return domain.GasQuery{
		ChainID:          q.ChainID,
		FromTokenAddress: strings.TrimSpace(q.FromTokenAddress),
		ToTokenAddress:   strings.TrimSpace(q.ToTokenAddress),
		Amount:           strings.TrimSpace(q.Amount),
	}
}

func nullToNil(m json.RawMessage) json.RawMessage {
	if len(bytes.TrimSpace(m)) == 0 || bytes.Equal(bytes.TrimSpace(m), []byte("null")) {
		return nil
	}
	return m
}
