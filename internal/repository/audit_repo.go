package repository

import (
	"context"

	"anaesthesia-staffing-service/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(ctx context.Context, actor, action, details string) error {
	log := &models.AuditLog{
		Actor:   actor,
		Action:  action,
		Details: details,
	}
	return r.db.WithContext(ctx).Create(log).Error
}

