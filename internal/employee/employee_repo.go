package employee

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int) (*Employee, error)
	FindByIDWithHistory(ctx context.Context, id int) (*Employee, error)
	Replace(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the gorm session to the caller's transaction connection, so
// the aggregate write and the outbox insert commit or roll back together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("Person").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Person").
		First(&empl, "business_entity_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByIDWithHistory(ctx context.Context, id int) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Person").
		Preload("DepartmentHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date ASC")
		}).
		Preload("PayHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("rate_change_date ASC")
		}).
		First(&empl, "business_entity_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// Replace writes the whole aggregate back, history rows included. New history
// rows (zero ID) are inserted, existing ones updated in place, so a lifecycle
// transition lands as a single save.
func (r *repository) Replace(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "business_entity_id = ?", id).Error
}
