package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MMN3003/swapproxy/src/audit/domain"
)

func TestToModelFillsIDAndTimestamp(t *testing.T) {
	m := toModel(&domain.UpstreamCall{Method: "GET", Host: "api.1inch.dev", Path: "/swap/v6.0/1/tokens", Status: 200})
	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.False(t, m.CreatedAt.IsZero())
	assert.Equal(t, 200, m.Status)
}

func TestToModelKeepsGivenValues(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	m := toModel(&domain.UpstreamCall{ID: id, CreatedAt: at, Error: "dial tcp: refused"})
	assert.Equal(t, id, m.ID)
	assert.Equal(t, at, m.CreatedAt)
	assert.Equal(t, "dial tcp: refused", m.Error)
}
