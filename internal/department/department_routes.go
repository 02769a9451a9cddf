package department

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
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "department", "read"),
			handler.GetAll,
		)

		departments.GET("/options",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "department", "read"),
			handler.GetOptions,
		)

		departments.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "department", "read"),
			handler.GetById,
		)

		departments.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "department", "create"),
			handler.Create,
		)

		departments.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "department", "update"),
			handler.Update,
		)

		departments.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			rbac.Authorize(rbacService, "department", "delete"),
			handler.Delete,
		)
	}
}
