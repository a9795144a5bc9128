package cartcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/pricing"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

func userCart(db *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{UserID: userID}
		if err := db.Create(&cart).Error; err != nil {
			return cart, err
		}
		return cart, nil
	}
	return cart, err
}

// UpdateCartItem adds a product to the cart or sets its quantity. The
// quantity is clamped to [1, stock] on every mutation. POST /user/cart
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				response.Error(c, http.StatusBadRequest, "Product does not exist")
			} else {
				response.Error(c, http.StatusInternalServerError, "Failed to validate product")
			}
			return
		}

		cart, err := userCart(db, userID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to load cart")
			return
		}

		quantity := pricing.ClampQuantity(input.Quantity, product.Stock)

		var item models.CartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		if err == gorm.ErrRecordNotFound {
			item = models.CartItem{
				CartID:       cart.CartID,
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductImage: product.Image,
				ProductStock: product.Stock,
				Price:        product.Price,
				Quantity:     quantity,
				AddedAt:      time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to add item to cart")
				return
			}
			response.OK(c, http.StatusCreated, item)
			return
		}
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch cart item")
			return
		}

		item.Quantity = quantity
		item.ProductStock = product.Stock
		item.Price = product.Price
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update cart item")
			return
		}
		response.OK(c, http.StatusOK, item)
	}
}

// DeleteCartItem removes one product line. DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("product_id")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			response.Error(c, http.StatusNotFound, "User cart not found")
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete item")
			return
		}
		if result.RowsAffected == 0 {
			response.Error(c, http.StatusNotFound, "Cart item not found")
			return
		}
		response.OK(c, http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// ClearUserCart empties the cart. DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := userCart(db, userID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to load cart")
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to clear cart")
			return
		}
		response.OK(c, http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GetUserCart returns the cart lines. GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := userCart(db, userID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		response.OK(c, http.StatusOK, cart.Items)
	}
}
