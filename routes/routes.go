package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/events"
	"github.com/threadcraft/boutique-api/mailer"
	"github.com/threadcraft/boutique-api/uploader"
	"gorm.io/gorm"
)

// Deps bundles everything the route groups need.
type Deps struct {
	DB           *gorm.DB
	JWTSecret    []byte
	HomeDistrict string
	Mailer       *mailer.Mailer
	Publisher    events.Publisher
	UploadDir    string
	UploadPath   string
	R2           *uploader.R2
}

// SetupRoutes is the single entry point that wires up the public store,
// authenticated user and admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	SetupAuthRoutes(r, d)
	SetupStoreRoutes(r, d)
	SetupUserRoutes(r, d)
	SetupAdminRoutes(r, d)
}
