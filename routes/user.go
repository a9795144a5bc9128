package routes

import (
	"github.com/gin-gonic/gin"
	cartcontroller "github.com/threadcraft/boutique-api/controllers/cart"
	usercontroller "github.com/threadcraft/boutique-api/controllers/user"
	"github.com/threadcraft/boutique-api/middleware"
)

// SetupUserRoutes registers the "/user/*" endpoints. Requires a session.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.JWTSecret))
	{
		userGroup.GET("", usercontroller.GetProfile(d.DB))
		userGroup.PUT("", usercontroller.UpdateProfile(d.DB))

		userGroup.POST("/addresses", usercontroller.AddAddress(d.DB))
		userGroup.DELETE("/addresses/:id", usercontroller.DeleteAddress(d.DB))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartcontroller.GetUserCart(d.DB))
			cartGroup.POST("", cartcontroller.UpdateCartItem(d.DB))
			cartGroup.DELETE("/:product_id", cartcontroller.DeleteCartItem(d.DB))
			cartGroup.DELETE("", cartcontroller.ClearUserCart(d.DB))
		}
	}
}
