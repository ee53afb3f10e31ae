package cmd

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MMN3003/swapproxy/src/config"
	"github.com/MMN3003/swapproxy/src/logger"
	"github.com/MMN3003/swapproxy/src/swap/domain"
)

func testConfig(t *testing.T, upstream string) *config.Config {
	t.Helper()
	return &config.Config{
		ListenAddr:  "127.0.0.1:0",
		Env:         "test",
		TokenSource: config.TokenSourceStatic,
		CORSOrigins: []string{"http://localhost:5173"},
		Upstream: config.UpstreamConfig{
			BaseURL: upstream,
			Timeout: 2 * time.Second,
			Fee:     "1",
		},
	}
}

func TestRouterHealthAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := newApp(testConfig(t, "http://127.0.0.1:1"), logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	r := newRouter(a.cfg, logger.Nop(), a.service)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestRouterServesStaticChains(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := newApp(testConfig(t, "http://127.0.0.1:1"), logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	r := newRouter(a.cfg, logger.Nop(), a.service)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tokens/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"symbol":"USDC"`)
}

func TestRouterCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := newApp(testConfig(t, "http://127.0.0.1:1"), logger.Nop())
	require.NoError(t, err)
	defer a.Close()
	r := newRouter(a.cfg, logger.Nop(), a.service)

	req := httptest.NewRequest(http.MethodOptions, "/api/chains", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsConfigWildcard(t *testing.T) {
	cc := corsConfig([]string{"*"})
	assert.True(t, cc.AllowAllOrigins)
	assert.Empty(t, cc.AllowOrigins)

	cc = corsConfig([]string{"https://a.example"})
	assert.False(t, cc.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example"}, cc.AllowOrigins)
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	srv := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, logger.Nop()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestIntentFlags(t *testing.T) {
	f := intentFlags{srcChain: 1, destChain: 137, srcToken: "0xa", dstToken: "0xb", amount: "5", wallet: "0xc"}
	assert.Equal(t, domain.SwapIntent{
		SourceChainID:      1,
		DestChainID:        137,
		SourceTokenAddress: "0xa",
		DestTokenAddress:   "0xb",
		Amount:             "5",
		WalletAddress:      "0xc",
	}, f.intent())
}

func TestFilterTokens(t *testing.T) {
	tokens := []domain.Token{{Symbol: "USDC"}, {Symbol: "ETH"}, {Symbol: "USDT"}}
	assert.Len(t, filterTokens(tokens, "usd"), 2)
	assert.Len(t, filterTokens(tokens, ""), 3)
	assert.Empty(t, filterTokens(tokens, "BTC"))
}

func TestWriteTimeoutFollowsUpstream(t *testing.T) {
	assert.Equal(t, 25*time.Second, writeTimeout(10*time.Second))
	assert.Zero(t, writeTimeout(0))
}
