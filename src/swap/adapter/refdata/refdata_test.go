package refdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MMN3003/swapproxy/src/config"
	"github.com/MMN3003/swapproxy/src/logger"
	"github.com/MMN3003/swapproxy/src/swap/domain"
)

type failingGateway struct {
	domain.Gateway
	err   error
	calls int
}

func (f *failingGateway) ListTokens(context.Context, int) ([]domain.Token, error) {
	f.calls++
	return nil, f.err
}

func (f *failingGateway) ListChains(context.Context) ([]domain.Chain, error) {
	f.calls++
	return nil, f.err
}

func TestStaticCatalogue(t *testing.T) {
	s := NewStatic(logger.Nop())

	chains, err := s.Chains(context.Background())
	require.NoError(t, err)
	ids := make([]int, 0, len(chains))
	for _, c := range chains {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int{1, 137, 56, 42161, 10, 8453, 43114}, ids)

	tokens, err := s.Tokens(context.Background(), 137)
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, "ETH", tokens[0].Symbol)
	assert.Equal(t, "DAI", tokens[4].Symbol)

	seen := map[string]bool{}
	for _, tk := range tokens {
		assert.False(t, seen[tk.Address], "duplicate address %s", tk.Address)
		seen[tk.Address] = true
	}

	none, err := s.Tokens(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStaticReturnsCopies(t *testing.T) {
	s := NewStatic(logger.Nop())
	first, _ := s.Tokens(context.Background(), 1)
	first[0].Symbol = "MUTATED"

	second, _ := s.Tokens(context.Background(), 1)
	assert.Equal(t, "ETH", second[0].Symbol)
}

func TestLiveSurfacesErrors(t *testing.T) {
	upstream := &domain.UpstreamError{Op: "Tokens", Status: 500, Message: "boom"}
	gw := &failingGateway{err: upstream}
	l := NewLive(gw)

	tokens, err := l.Tokens(context.Background(), 1)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, upstream)

	_, err = l.Chains(context.Background())
	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, 2, gw.calls)
}

func TestFromConfig(t *testing.T) {
	live, err := FromConfig(config.TokenSourceLive, &failingGateway{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &Live{}, live)

	static, err := FromConfig(config.TokenSourceStatic, nil, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &Static{}, static)

	_, err = FromConfig("mock", nil, logger.Nop())
	require.Error(t, err)
}
