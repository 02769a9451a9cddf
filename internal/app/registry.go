package app

import (
	"context"
	"database/sql"
	"go-erp/internal/address"
	"go-erp/internal/auth"
	"go-erp/internal/department"
	"go-erp/internal/employee"
	"go-erp/internal/lifecycle"
	"go-erp/internal/messaging/kafka"
	"go-erp/internal/product"
	"go-erp/internal/rbac"
	"go-erp/internal/rbac/infra"
	"go-erp/internal/shared/counter"
	"go-erp/internal/shift"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	addressRepo := address.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	productRepo := product.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.ReloadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Services ---
	addressService := address.NewService(db, addressRepo)
	authService := auth.NewService(authRepo)
	departmentService := department.NewService(db, departmentRepo, rdb)
	employeeService := employee.NewService(db, employeeRepo, counterRepo)
	lifecycleService := lifecycle.NewService(db, employeeRepo, outboxRepo, rdb)
	productService := product.NewService(db, productRepo)
	shiftService := shift.NewService(gormDB)

	// --- Handlers ---
	addressHandler := address.NewHandler(addressService)
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	lifecycleHandler := lifecycle.NewHandler(lifecycleService)
	productHandler := product.NewHandler(productService)
	shiftHandler := shift.NewHandler(shiftService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		address.RegisterRoutes(api, addressHandler, rbacService, logger)
		department.RegisterRoutes(api, departmentHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		lifecycle.RegisterRoutes(api, lifecycleHandler, rbacService, logger)
		product.RegisterRoutes(api, productHandler, rbacService, logger)
		shift.RegisterRoutes(api, shiftHandler, rbacService, logger)
	}

	return nil
}
