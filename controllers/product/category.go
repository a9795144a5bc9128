package productcontroller

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

type CategoryInput struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// CreateCategory registers a category; the slug is derived from the name
// when not supplied. POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		slug := input.ID
		if slug == "" {
			slug = slugify(input.Name)
		}
		if slug == "" {
			response.Error(c, http.StatusBadRequest, "Category name does not produce a valid slug")
			return
		}

		category := models.Category{ID: slug, Name: input.Name}
		if err := db.Create(&category).Error; err != nil {
			response.Error(c, http.StatusConflict, "Category already exists")
			return
		}
		response.OK(c, http.StatusCreated, category)
	}
}

// GetAllCategories lists every category. GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name asc").Find(&categories).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}
		response.OK(c, http.StatusOK, categories)
	}
}

// UpdateCategory renames a category. PUT /admin/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			response.Error(c, http.StatusNotFound, "Category not found")
			return
		}

		var input struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		category.Name = input.Name
		if err := db.Save(&category).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update category")
			return
		}
		response.OK(c, http.StatusOK, category)
	}
}

// DeleteCategory removes a category. Products keep their dangling slug,
// the reference was never enforced. DELETE /admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Category{}, "id = ?", id)
		if result.Error != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete category")
			return
		}
		if result.RowsAffected == 0 {
			response.Error(c, http.StatusNotFound, "Category not found")
			return
		}
		response.OK(c, http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
