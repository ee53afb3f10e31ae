package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIntent() SwapIntent {
	return SwapIntent{
		SourceChainID:      1,
		DestChainID:        137,
		SourceTokenAddress: "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE",
		DestTokenAddress:   "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		Amount:             "1000000",
		WalletAddress:      "0xAbc0000000000000000000000000000000000001",
	}
}

func TestSwapIntentValidate(t *testing.T) {
	require.NoError(t, validIntent().Validate())

	cases := []struct {
		name  string
		mut   func(*SwapIntent)
		field string
	}{
		{"missing source chain", func(i *SwapIntent) { i.SourceChainID = 0 }, "srcChain"},
		{"negative dest chain", func(i *SwapIntent) { i.DestChainID = -4 }, "destChain"},
		{"empty source token", func(i *SwapIntent) { i.SourceTokenAddress = "" }, "srcTokenAddress"},
		{"bad dest token", func(i *SwapIntent) { i.DestTokenAddress = "0x123" }, "dstTokenAddress"},
		{"empty amount", func(i *SwapIntent) { i.Amount = "" }, "amount"},
		{"zero amount", func(i *SwapIntent) { i.Amount = "0" }, "amount"},
		{"negative amount", func(i *SwapIntent) { i.Amount = "-5" }, "amount"},
		{"word amount", func(i *SwapIntent) { i.Amount = "lots" }, "amount"},
		{"fractional amount", func(i *SwapIntent) { i.Amount = "1.5" }, "amount"},
		{"padded amount", func(i *SwapIntent) { i.Amount = " 100 " }, "amount"},
		{"empty wallet", func(i *SwapIntent) { i.WalletAddress = "" }, "walletAddress"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validIntent()
			tc.mut(&in)
			err := in.Validate()
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.NotEmpty(t, vErr.Message)
		})
	}
}

func TestIsPositiveAmount(t *testing.T) {
	for _, s := range []string{"1", "42", "1000000", "115792089237316195423570985008687907853269984665640564039457584007913129639935"} {
		assert.True(t, IsPositiveAmount(s), s)
	}
	for _, s := range []string{"", "0", "-1", "+5", "0.5", "1.5", "1.0", "1e3", "007", " 100 ", "100 ", "1,000", "lots"} {
		assert.False(t, IsPositiveAmount(s), s)
	}
}

func TestAmountMessageNamesBaseUnits(t *testing.T) {
	in := validIntent()
	in.Amount = "1.5"
	var vErr *ValidationError
	require.ErrorAs(t, in.Validate(), &vErr)
	assert.Equal(t, "amount", vErr.Field)
	assert.Contains(t, vErr.Message, "base units")
}
