package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MMN3003/swapproxy/src/audit/domain"
	"github.com/MMN3003/swapproxy/src/logger"
)

var _ domain.Repository = (*AuditRepo)(nil)

// ---------- UPSTREAM CALLS ----------
type UpstreamCall struct {
	ID         uuid.UUID `gorm:"type:uuid;primarykey"`
	Method     string    `gorm:"not null;size:8"`
	Host       string    `gorm:"not null;index:idx_upstream_call_target"`
	Path       string    `gorm:"not null;index:idx_upstream_call_target"`
	Status     int       `gorm:"not null;default:0"`
	DurationMs int64     `gorm:"not null"`
	Error      string
	CreatedAt  time.Time `gorm:"index"`
}

// ---------- REPO ----------

type AuditRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAuditRepo(db *gorm.DB, log *logger.Logger) (*AuditRepo, error) {
	if err := db.AutoMigrate(&UpstreamCall{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &AuditRepo{db: db, log: log}, nil
}

func (r *AuditRepo) SaveCall(ctx context.Context, c *domain.UpstreamCall) error {
	model := toModel(c)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Errorf("failed to save upstream call: %v", err)
		return err
	}
	return nil
}

func toModel(c *domain.UpstreamCall) UpstreamCall {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	created := c.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return UpstreamCall{
		ID:         id,
		Method:     c.Method,
		Host:       c.Host,
		Path:       c.Path,
		Status:     c.Status,
		DurationMs: c.DurationMs,
		Error:      c.Error,
		CreatedAt:  created,
	}
}
