package auth

import (
	"go-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	a := r.Group("/auth")
	{
		a.POST("/login",
			middleware.RateLimitByIP(1, 5),
			handler.Login,
		)
	}
}
