package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/MMN3003/swapproxy/src/logger"
	"github.com/MMN3003/swapproxy/src/swap/domain"
)

// Service orchestrates quote-then-execute against the aggregator. It holds no per-request state.
type Service struct {
	gateway domain.Gateway
	refdata domain.ReferenceDataSource
	logger  *logger.Logger
}

func NewService(gw domain.Gateway, ref domain.ReferenceDataSource, logg *logger.Logger) *Service {
	return &Service{
		gateway: gw,
		refdata: ref,
		logger:  logg,
	}
}

// Quote prices intent with exactly one upstream call. The returned quote is bound to intent.
// A 2xx answer without a quoteId is an upstream fault and yields a 502 *domain.UpstreamError.
func (s *Service) Quote(ctx context.Context, intent domain.SwapIntent) (*domain.Quote, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.gateway.GetQuote(ctx, intent)
	if err != nil {
		s.logger.Errorf("quote %d->%d: %v", intent.SourceChainID, intent.DestChainID, err)
		return nil, err
	}

	q := parseQuote(raw)
	if q.QuoteID == "" {
		s.logger.Errorf("quote %d->%d: response carries no quoteId: %s", intent.SourceChainID, intent.DestChainID, raw)
		return nil, &domain.UpstreamError{Op: "Quote", Status: http.StatusBadGateway, Message: "quote response has no quoteId"}
	}
	q.Intent = intent
	s.logger.WithFields(map[string]interface{}{
		"quote_id":   q.QuoteID,
		"src_chain":  intent.SourceChainID,
		"dest_chain": intent.DestChainID,
	}).Infof("quote received")
	return q, nil
}

// Execute submits quote for intent with exactly one upstream call.
func (s *Service) Execute(ctx context.Context, intent domain.SwapIntent, quote *domain.Quote) (*domain.SwapResult, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	if quote == nil || quote.QuoteID == "" {
		return nil, &domain.ValidationError{Field: "quoteId", Message: "is required"}
	}
	if !quote.Intent.SameAs(intent) {
		return nil, &domain.ValidationError{Field: "quoteId", Message: fmt.Sprintf("quote %s was issued for a different swap", quote.QuoteID)}
	}

	raw, err := s.gateway.PostExecute(ctx, domain.ExecuteRequest{
		Intent:    intent,
		QuoteID:   quote.QuoteID,
		Permit:    quote.Permit,
		Signature: quote.Signature,
	})
	if err != nil {
		s.logger.Errorf("execute quote %s: %v", quote.QuoteID, err)
		return nil, err
	}

	res := parseResult(raw)
	res.Quote = quote
	s.logger.WithFields(map[string]interface{}{
		"quote_id": quote.QuoteID,
		"tx_hash":  res.TransactionHash,
		"status":   res.Status,
	}).Infof("swap submitted")
	return res, nil
}

// Swap is Quote followed by Execute. A failed quote is returned unchanged and nothing is executed.
func (s *Service) Swap(ctx context.Context, intent domain.SwapIntent) (*domain.SwapResult, error) {
	q, err := s.Quote(ctx, intent)
	if err != nil {
		return nil, err
	}
	return s.Execute(ctx, intent, q)
}

func (s *Service) ListTokens(ctx context.Context, chainID int) ([]domain.Token, error) {
	if chainID <= 0 {
		return nil, &domain.ValidationError{Field: "chainId", Message: fmt.Sprintf("must be greater than 0, got %d", chainID)}
	}
	return s.refdata.Tokens(ctx, chainID)
}

func (s *Service) ListChains(ctx context.Context) ([]domain.Chain, error) {
	return s.refdata.Chains(ctx)
}

func (s *Service) Balance(ctx context.Context, q domain.BalanceQuery) (json.RawMessage, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.gateway.Balance(ctx, q)
}

func (s *Service) GasEstimate(ctx context.Context, q domain.GasQuery) (*domain.GasEstimate, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.gateway.GasEstimate(ctx, q)
}

// parseQuote reads the fields execution needs. Anything it cannot read is left empty.
func parseQuote(raw json.RawMessage) *domain.Quote {
	q := &domain.Quote{Raw: raw}
	fields := decodeObject(raw)
	q.QuoteID = stringField(fields, "quoteId")
	q.EstimatedOutput = stringField(fields, "estimatedOutput", "dstTokenAmount")
	q.Permit = presentField(fields, "permit")
	q.Signature = presentField(fields, "signature")
	return q
}

func parseResult(raw json.RawMessage) *domain.SwapResult {
	res := &domain.SwapResult{Raw: raw, Status: domain.StatusSuccess}
	fields := decodeObject(raw)
	res.TransactionHash = normalizeTxHash(stringField(fields, "txHash"))
	if strings.EqualFold(stringField(fields, "status"), string(domain.StatusFailed)) {
		res.Status = domain.StatusFailed
	}
	return res
}

// normalizeTxHash lowercases well-formed 32-byte hashes and leaves anything else as sent.
func normalizeTxHash(h string) string {
	b, err := hexutil.Decode(h)
	if err != nil || len(b) != common.HashLength {
		return h
	}
	return common.BytesToHash(b).Hex()
}

func decodeObject(raw json.RawMessage) map[string]json.RawMessage {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]json.RawMessage{}
	}
	return m
}

// stringField returns the first of keys holding a string or number.
func stringField(m map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil && s != "" {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

func presentField(m map[string]json.RawMessage, key string) json.RawMessage {
	v, ok := m[key]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil
	}
	return v
}
