package routes

import (
	"github.com/gin-gonic/gin"
	usercontroller "github.com/threadcraft/boutique-api/controllers/user"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", usercontroller.Register(d.DB, d.JWTSecret))
		authGroup.POST("/login", usercontroller.Login(d.DB, d.JWTSecret))
	}
}
