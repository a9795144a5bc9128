package routes

import (
	"github.com/gin-gonic/gin"
	ordercontroller "github.com/threadcraft/boutique-api/controllers/order"
	productcontroller "github.com/threadcraft/boutique-api/controllers/product"
)

// SetupStoreRoutes registers the public storefront endpoints: browsing the
// catalog and placing orders needs no account.
func SetupStoreRoutes(r *gin.Engine, d Deps) {
	r.GET("/products", productcontroller.GetProducts(d.DB))
	r.GET("/products/:id", productcontroller.GetProductByID(d.DB))
	r.GET("/categories", productcontroller.GetAllCategories(d.DB))

	orders := r.Group("/orders")
	{
		orders.POST("/quote", ordercontroller.QuoteHandler(d.DB, d.HomeDistrict))
		orders.POST("", ordercontroller.PlaceOrderHandler(d.DB, d.HomeDistrict, d.Mailer, d.Publisher))
		orders.GET("/phone/:phone", ordercontroller.GetOrdersByPhoneHandler(d.DB))
		orders.GET("/:orderID", ordercontroller.GetOrderByIDHandler(d.DB))
	}
}
