package routes

import (
	"github.com/gin-gonic/gin"
	customercontroller "github.com/threadcraft/boutique-api/controllers/customer"
	dashboardcontroller "github.com/threadcraft/boutique-api/controllers/dashboard"
	ordercontroller "github.com/threadcraft/boutique-api/controllers/order"
	productcontroller "github.com/threadcraft/boutique-api/controllers/product"
	seedcontroller "github.com/threadcraft/boutique-api/controllers/seed"
	uploadcontroller "github.com/threadcraft/boutique-api/controllers/upload"
	usercontroller "github.com/threadcraft/boutique-api/controllers/user"
	"github.com/threadcraft/boutique-api/middleware"
	"github.com/threadcraft/boutique-api/models"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. Catalog editing is
// open to editors, order/customer/user management needs manager or admin,
// destructive user operations are admin only.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(d.JWTSecret))

	staff := adminGroup.Group("")
	staff.Use(middleware.RequireRole(
		string(models.RoleAdmin), string(models.RoleManager), string(models.RoleEditor),
	))
	{
		productAdmin := staff.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.DB))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.DB))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.DB))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(d.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.DB))
		}

		categoryAdmin := staff.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(d.DB))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(d.DB))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(d.DB))
		}

		staff.POST("/uploads", uploadcontroller.HandleUpload(d.UploadDir, d.UploadPath, d.R2))
	}

	managers := adminGroup.Group("")
	managers.Use(middleware.RequireRole(
		string(models.RoleAdmin), string(models.RoleManager),
	))
	{
		orderAdmin := managers.Group("/orders")
		{
			orderAdmin.GET("", ordercontroller.GetAllOrdersHandler(d.DB))
			orderAdmin.GET("/ws", ordercontroller.OrderWebSocketHandler)
			orderAdmin.PUT("/:orderID/status", ordercontroller.UpdateOrderStatusHandler(d.DB, d.Publisher))
			orderAdmin.DELETE("/:orderID", ordercontroller.DeleteOrderHandler(d.DB))
		}

		managers.GET("/customers", customercontroller.GetCustomers(d.DB))
		managers.GET("/dashboard", dashboardcontroller.GetSummary(d.DB))
		managers.GET("/users", usercontroller.GetAllUsers(d.DB))
	}

	admins := adminGroup.Group("")
	admins.Use(middleware.RequireRole(string(models.RoleAdmin)))
	{
		admins.PUT("/users/:id/role", usercontroller.UpdateUserRole(d.DB))
		admins.DELETE("/users/:id", usercontroller.DeleteUser(d.DB))
		admins.POST("/seed", seedcontroller.Seed(d.DB))
	}
}
