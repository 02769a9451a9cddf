package address

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=address_repo.go -destination=mock/address_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, addr *Address) error
	FindAll(ctx context.Context) ([]Address, error)
	FindByID(ctx context.Context, id int) (*Address, error)
	Update(ctx context.Context, addr *Address) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the gorm session to the caller's transaction connection.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, addr *Address) error {
	return r.db.WithContext(ctx).Create(addr).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Address, error) {
	var addrs []Address
	err := r.db.WithContext(ctx).
		Order("city ASC, address_line1 ASC").
		Find(&addrs).Error
	return addrs, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Address, error) {
	var addr Address
	err := r.db.WithContext(ctx).
		First(&addr, "address_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *repository) Update(ctx context.Context, addr *Address) error {
	return r.db.WithContext(ctx).Save(addr).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).
		Delete(&Address{}, "address_id = ?", id).Error
}
