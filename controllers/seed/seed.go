package seedcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

var seedCategories = []models.Category{
	{ID: "dresses", Name: "Dresses"},
	{ID: "tops", Name: "Tops"},
	{ID: "outerwear", Name: "Outerwear"},
	{ID: "accessories", Name: "Accessories"},
}

var seedProducts = []models.Product{
	{
		Name:        "Linen Wrap Dress",
		Description: "Breathable midi wrap dress in natural linen.",
		Price:       2450,
		CategoryID:  "dresses",
		Stock:       12,
		Sizes:       models.StringList{"S", "M", "L"},
		Highlights:  models.StringList{"100% linen", "Adjustable waist tie"},
	},
	{
		Name:        "Silk Camisole",
		Description: "Mulberry silk camisole with a relaxed drape.",
		Price:       1890,
		CategoryID:  "tops",
		Stock:       20,
		Sizes:       models.StringList{"XS", "S", "M", "L"},
	},
	{
		Name:        "Quilted Bomber Jacket",
		Description: "Lightweight quilted bomber for cool evenings.",
		Price:       3600,
		CategoryID:  "outerwear",
		Stock:       8,
		Sizes:       models.StringList{"M", "L", "XL"},
	},
	{
		Name:        "Woven Leather Belt",
		Description: "Hand-woven full-grain leather belt.",
		Price:       950,
		CategoryID:  "accessories",
		Stock:       30,
	},
}

// Seed inserts the demo catalog. Refuses to run when products already
// exist so a stray call cannot duplicate the catalog. POST /admin/seed
func Seed(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64
		if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to inspect catalog")
			return
		}
		if count > 0 {
			response.Error(c, http.StatusConflict, "Catalog is not empty")
			return
		}

		// copy so GORM does not write generated IDs back into the template
		products := make([]models.Product, len(seedProducts))
		copy(products, seedProducts)

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, cat := range seedCategories {
				if err := tx.Where("id = ?", cat.ID).FirstOrCreate(&models.Category{}, cat).Error; err != nil {
					return err
				}
			}
			return tx.Create(&products).Error
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to seed catalog")
			return
		}

		response.OK(c, http.StatusCreated, gin.H{
			"categories": len(seedCategories),
			"products":   len(seedProducts),
		})
	}
}
