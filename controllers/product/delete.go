package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

// DeleteProduct removes a catalog entry. DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		response.OK(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
