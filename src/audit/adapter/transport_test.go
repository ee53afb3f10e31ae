package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MMN3003/swapproxy/src/audit/domain"
	"github.com/MMN3003/swapproxy/src/logger"
)

type memRepo struct {
	mu    sync.Mutex
	calls []*domain.UpstreamCall
	err   error
}

func (m *memRepo) SaveCall(_ context.Context, c *domain.UpstreamCall) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
	return m.err
}

func TestTransportRecordsMetadataOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"message":"rate limited"}`)
	}))
	defer srv.Close()

	repo := &memRepo{}
	client, tr := NewHTTPClient(5*time.Second, repo, logger.Nop())

	resp, err := client.Get(srv.URL + "/fusion-plus/v1.0/quote/receive?walletAddress=0xabc")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, `{"message":"rate limited"}`, string(body), "body is passed through untouched")

	tr.Wait()
	require.Len(t, repo.calls, 1)
	c := repo.calls[0]
	assert.Equal(t, http.MethodGet, c.Method)
	assert.Equal(t, "/fusion-plus/v1.0/quote/receive", c.Path)
	assert.NotContains(t, c.Path, "walletAddress")
	assert.Equal(t, http.StatusTooManyRequests, c.Status)
	assert.Empty(t, c.Error)
}

type failingRT struct{}

func (failingRT) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestTransportRecordsFailures(t *testing.T) {
	repo := &memRepo{err: errors.New("db down")}
	tr := NewTransport(failingRT{}, repo, logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "http://api.example/fusion-plus/v1.0/swap", nil)
	_, err := tr.RoundTrip(req)
	require.Error(t, err)

	tr.Wait()
	require.Len(t, repo.calls, 1)
	assert.Equal(t, 0, repo.calls[0].Status)
	assert.Equal(t, "connection refused", repo.calls[0].Error)
	assert.Equal(t, "api.example", repo.calls[0].Host)
}
