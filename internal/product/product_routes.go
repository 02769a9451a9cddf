package product

import (
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	products := r.Group("/products")
	products.Use(middleware.AuthMiddleware())
	products.Use(middleware.ContextLogger(logger))
	{
		products.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "product", "read"),
			handler.GetAll,
		)

		products.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "product", "read"),
			handler.GetById,
		)

		products.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "product", "create"),
			handler.Create,
		)

		products.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "product", "update"),
			handler.Update,
		)

		products.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			rbac.Authorize(rbacService, "product", "delete"),
			handler.Delete,
		)
	}
}
