package usercontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/threadcraft/boutique-api/auth"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type sessionPayload struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates an account with the default user role and opens a
// session. POST /auth/register
func Register(db *gorm.DB, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		email := strings.ToLower(strings.TrimSpace(input.Email))

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to create account")
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Name:         input.Name,
			Email:        email,
			PasswordHash: hash,
			Role:         models.RoleUser,
			Cart:         models.Cart{},
		}
		user.Cart.UserID = user.ID

		// the unique index on email is the only duplicate check; a
		// lookup-then-insert would race with concurrent registrations
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				response.Error(c, http.StatusConflict, "Email already registered")
				return
			}
			response.Error(c, http.StatusInternalServerError, "Failed to create account")
			return
		}

		token, err := auth.IssueToken(jwtSecret, auth.Claims{
			UserID: user.ID, Email: user.Email, Role: string(user.Role),
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Token generation failed")
			return
		}
		response.OK(c, http.StatusCreated, sessionPayload{Token: token, User: user})
	}
}

// Login verifies credentials and opens a session. POST /auth/login
func Login(db *gorm.DB, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		email := strings.ToLower(strings.TrimSpace(input.Email))

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		if !auth.CheckPassword(user.PasswordHash, input.Password) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := auth.IssueToken(jwtSecret, auth.Claims{
			UserID: user.ID, Email: user.Email, Role: string(user.Role),
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Token generation failed")
			return
		}
		response.OK(c, http.StatusOK, sessionPayload{Token: token, User: user})
	}
}
