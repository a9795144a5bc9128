package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

// GetProductByID returns a single product. GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				response.Error(c, http.StatusNotFound, "Product not found")
			} else {
				response.Error(c, http.StatusInternalServerError, "Failed to retrieve product")
			}
			return
		}
		response.OK(c, http.StatusOK, product)
	}
}
