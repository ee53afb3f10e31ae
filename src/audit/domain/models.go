package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UpstreamCall is one outbound request to the aggregator. Only metadata is kept:
// no bodies, query strings or headers.
type UpstreamCall struct {
	ID         uuid.UUID
	Method     string
	Host       string
	Path       string
	Status     int // 0 when no response arrived
	DurationMs int64
	Error      string
	CreatedAt  time.Time
}

// Repository persistence port
type Repository interface {
	SaveCall(ctx context.Context, c *UpstreamCall) error
}
