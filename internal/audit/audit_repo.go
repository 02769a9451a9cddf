package audit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rec *LifecycleAudit) error
	FindByEmployee(ctx context.Context, businessEntityID int) ([]LifecycleAudit, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *LifecycleAudit) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByEmployee(ctx context.Context, businessEntityID int) ([]LifecycleAudit, error) {
	var recs []LifecycleAudit
	err := r.db.WithContext(ctx).
		Where("business_entity_id = ?", businessEntityID).
		Order("recorded_at ASC").
		Find(&recs).Error
	return recs, err
}
