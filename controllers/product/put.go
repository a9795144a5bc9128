package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	Category    *string   `json:"category"`
	Stock       *int      `json:"stock"`
	Highlights  *[]string `json:"highlights"`
	Sizes       *[]string `json:"sizes"`
	SizeGuide   *string   `json:"size_guide"`
}

// UpdateProduct applies a partial update. PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
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

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				response.Error(c, http.StatusBadRequest, "Invalid price")
				return
			}
			product.Price = *input.Price
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.Category != nil {
			product.CategoryID = *input.Category
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				response.Error(c, http.StatusBadRequest, "Invalid stock")
				return
			}
			product.Stock = *input.Stock
		}
		if input.Highlights != nil {
			product.Highlights = *input.Highlights
		}
		if input.Sizes != nil {
			product.Sizes = *input.Sizes
		}
		if input.SizeGuide != nil {
			product.SizeGuide = *input.SizeGuide
		}

		if err := db.Save(&product).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update product")
			return
		}
		response.OK(c, http.StatusOK, product)
	}
}
