package customercontroller

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

// GetCustomers builds the derived customers view from the full order list,
// sorted by latest order. GET /admin/customers
func GetCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Find(&orders).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}

		byKey := models.AggregateCustomers(orders)
		customers := make([]models.Customer, 0, len(byKey))
		for _, cust := range byKey {
			customers = append(customers, cust)
		}
		sort.Slice(customers, func(i, j int) bool {
			return customers[i].LastOrder.After(customers[j].LastOrder)
		})

		response.OKWithMeta(c, http.StatusOK, customers, gin.H{"count": len(customers)})
	}
}
