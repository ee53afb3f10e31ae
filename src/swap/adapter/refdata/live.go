package refdata

import (
	"context"

	"github.com/MMN3003/swapproxy/src/swap/domain"
)

// Live asks the aggregator every time. Failures are returned, never papered over.
type Live struct {
	gw domain.Gateway
}

var _ domain.ReferenceDataSource = (*Live)(nil)

func NewLive(gw domain.Gateway) *Live {
	return &Live{gw: gw}
}

func (l *Live) Tokens(ctx context.Context, chainID int) ([]domain.Token, error) {
	return l.gw.ListTokens(ctx, chainID)
}

func (l *Live) Chains(ctx context.Context) ([]domain.Chain, error) {
	return l.gw.ListChains(ctx)
}
