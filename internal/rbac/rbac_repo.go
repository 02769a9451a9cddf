package rbac

import (
	"context"

	"gorm.io/gorm"
)

type RolePermission struct {
	Role     string
	Resource string
	Action   string
}

type RoleInheritance struct {
	Role        string
	InheritFrom string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions(ctx context.Context) ([]RolePermission, error)
	GetRoleInheritances(ctx context.Context) ([]RoleInheritance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermission, error) {
	var perms []RolePermission
	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role, resource, action").
		Scan(&perms).Error
	return perms, err
}

func (r *repository) GetRoleInheritances(ctx context.Context) ([]RoleInheritance, error) {
	var inherits []RoleInheritance
	err := r.db.WithContext(ctx).
		Table("role_inheritances").
		Select("role, inherit_from").
		Scan(&inherits).Error
	return inherits, err
}
