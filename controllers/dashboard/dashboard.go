package dashboardcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

type Summary struct {
	Products       int64                        `json:"products"`
	Categories     int64                        `json:"categories"`
	Orders         int64                        `json:"orders"`
	Users          int64                        `json:"users"`
	Revenue        float64                      `json:"revenue"`
	OrdersByStatus map[models.OrderStatus]int64 `json:"orders_by_status"`
	RecentOrders   []models.Order               `json:"recent_orders"`
}

// GetSummary aggregates the back-office landing numbers. Cancelled orders
// are excluded from revenue. GET /admin/dashboard
func GetSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s Summary
		s.OrdersByStatus = make(map[models.OrderStatus]int64)

		if err := db.Model(&models.Product{}).Count(&s.Products).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to build dashboard")
			return
		}
		db.Model(&models.Category{}).Count(&s.Categories)
		db.Model(&models.Order{}).Count(&s.Orders)
		db.Model(&models.User{}).Count(&s.Users)

		var revenue *float64
		db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("SUM(total_amount)").Scan(&revenue)
		if revenue != nil {
			s.Revenue = *revenue
		}

		rows := []struct {
			Status models.OrderStatus
			N      int64
		}{}
		db.Model(&models.Order{}).
			Select("status, COUNT(*) as n").Group("status").Scan(&rows)
		for _, r := range rows {
			s.OrdersByStatus[r.Status] = r.N
		}

		db.Preload("Items").Order("created_at DESC").Limit(5).Find(&s.RecentOrders)

		response.OK(c, http.StatusOK, s)
	}
}
