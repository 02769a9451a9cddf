package address

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
	addresses := r.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware())
	addresses.Use(middleware.ContextLogger(logger))
	{
		addresses.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "address", "read"),
			handler.GetAll,
		)

		addresses.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "address", "read"),
			handler.GetById,
		)

		addresses.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "address", "create"),
			handler.Create,
		)

		addresses.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "address", "update"),
			handler.Update,
		)

		addresses.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			rbac.Authorize(rbacService, "address", "delete"),
			handler.Delete,
		)
	}
}
