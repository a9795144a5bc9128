package usercontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

type AddressInput struct {
	Kind       string `json:"kind" binding:"required,oneof=shipping billing"`
	Recipient  string `json:"recipient" binding:"required"`
	Phone      string `json:"phone"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`
}

// AddAddress appends an entry to the caller's address book.
// POST /user/addresses
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		entry := models.AddressEntry{
			UserID:     userID,
			Kind:       input.Kind,
			Recipient:  input.Recipient,
			Phone:      input.Phone,
			Street:     input.Street,
			City:       input.City,
			District:   input.District,
			PostalCode: input.PostalCode,
		}
		if err := db.Create(&entry).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to save address")
			return
		}
		response.OK(c, http.StatusCreated, entry)
	}
}

// DeleteAddress removes one of the caller's address book entries.
// DELETE /user/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		id := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.AddressEntry{})
		if result.Error != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete address")
			return
		}
		if result.RowsAffected == 0 {
			response.Error(c, http.StatusNotFound, "Address not found")
			return
		}
		response.OK(c, http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
