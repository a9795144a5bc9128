package usercontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	Name *string `json:"name"`
}

// GetProfile returns the caller's account with address book. GET /user
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.Preload("AddressBook").First(&user, "id = ?", userID).Error; err != nil {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.OK(c, http.StatusOK, user)
	}
}

// UpdateProfile edits the caller's account. PUT /user
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if input.Name != nil {
			if err := db.Model(&user).Update("name", *input.Name).Error; err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to update user")
				return
			}
		}
		response.OK(c, http.StatusOK, user)
	}
}

// GetAllUsers lists accounts for the back office, password hashes are
// never serialized. GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch users")
			return
		}
		response.OKWithMeta(c, http.StatusOK, users, gin.H{"count": len(users)})
	}
}

// UpdateUserRole changes an account's role. PUT /admin/users/:id/role
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input struct {
			Role string `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		if !models.ValidRole(input.Role) {
			response.Error(c, http.StatusBadRequest, "Invalid role")
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}

		if err := db.Model(&user).Update("role", input.Role).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update role")
			return
		}
		response.OK(c, http.StatusOK, gin.H{"message": "Role updated", "role": input.Role})
	}
}

// DeleteUser removes an account. DELETE /admin/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete user")
			return
		}
		response.OK(c, http.StatusOK, gin.H{"message": "User deleted"})
	}
}
