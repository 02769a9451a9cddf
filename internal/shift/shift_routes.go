package shift

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
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	shifts.Use(middleware.ContextLogger(logger))
	{
		shifts.GET("",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "shift", "read"),
			handler.GetAll,
		)

		shifts.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "shift", "read"),
			handler.GetById,
		)
	}
}
