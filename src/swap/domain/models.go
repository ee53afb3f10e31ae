package domain

import (
	"encoding/json"
	"strings"
)

// SwapIntent is what the user asked for. It is built fresh per action and never mutated.
type SwapIntent struct {
	SourceChainID      int    `json:"srcChain" validate:"required,gt=0"`
	DestChainID        int    `json:"destChain" validate:"required,gt=0"`
	SourceTokenAddress string `json:"srcTokenAddress" validate:"required,hexaddr"`
	DestTokenAddress   string `json:"dstTokenAddress" validate:"required,hexaddr"`
	Amount             string `json:"amount" validate:"required,positive_amount"`
	WalletAddress      string `json:"walletAddress" validate:"required,hexaddr"`
}

// SameAs reports whether o names the same chains, tokens, amount and wallet.
// Addresses compare case-insensitively since checksum casing is cosmetic.
func (i SwapIntent) SameAs(o SwapIntent) bool {
	return i.SourceChainID == o.SourceChainID &&
		i.DestChainID == o.DestChainID &&
		strings.EqualFold(i.SourceTokenAddress, o.SourceTokenAddress) &&
		strings.EqualFold(i.DestTokenAddress, o.DestTokenAddress) &&
		i.Amount == o.Amount &&
		strings.EqualFold(i.WalletAddress, o.WalletAddress)
}

// Quote entity. Raw keeps the upstream body untouched for callers that proxy it.
type Quote struct {
	QuoteID         string          `json:"quoteId"`
	EstimatedOutput string          `json:"estimatedOutput"`
	Permit          json.RawMessage `json:"permit,omitempty"`
	Signature       json.RawMessage `json:"signature,omitempty"`

	// Intent is the request this quote was priced for.
	Intent SwapIntent      `json:"-"`
	Raw    json.RawMessage `json:"-"`
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

type SwapResult struct {
	TransactionHash string          `json:"txHash"`
	Status          Status          `json:"status"`
	Quote           *Quote          `json:"-"`
	Raw             json.RawMessage `json:"swapData"`
}

// Token description
type Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
	LogoURI  string `json:"logoURI,omitempty"`
}

type Chain struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type BalanceQuery struct {
	ChainID       int    `json:"chainId" validate:"required,gt=0"`
	TokenAddress  string `json:"tokenAddress" validate:"required,hexaddr"`
	WalletAddress string `json:"walletAddress" validate:"required,hexaddr"`
}

type GasQuery struct {
	ChainID          int    `json:"chainId" validate:"required,gt=0"`
	FromTokenAddress string `json:"fromTokenAddress" validate:"required,hexaddr"`
	ToTokenAddress   string `json:"toTokenAddress" validate:"required,hexaddr"`
	Amount           string `json:"amount" validate:"required,positive_amount"`
}

type GasEstimate struct {
	Gas      string `json:"gas"`
	GasPrice string `json:"gasPrice"`
}

// ExecuteRequest is everything the execute endpoint needs besides auth.
type ExecuteRequest struct {
	Intent    SwapIntent
	QuoteID   string
	Permit    json.RawMessage
	Signature json.RawMessage
}
