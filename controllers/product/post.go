package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock" binding:"gte=0"`
	Highlights  []string `json:"highlights"`
	Sizes       []string `json:"sizes"`
	SizeGuide   string   `json:"size_guide"`
}

// CreateProduct adds a catalog entry. POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Images:      input.Images,
			CategoryID:  input.Category,
			Stock:       input.Stock,
			Highlights:  input.Highlights,
			Sizes:       input.Sizes,
			SizeGuide:   input.SizeGuide,
		}

		if err := db.Create(&product).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to create product")
			return
		}
		response.OK(c, http.StatusCreated, product)
	}
}
