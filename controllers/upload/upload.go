package uploadcontroller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/response"
	"github.com/threadcraft/boutique-api/uploader"
)

var unsafeChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// HandleUpload accepts a multipart image, stores it and returns its public
// URL. Files land on local disk under the uploads dir; when an R2 bucket
// is configured the image is resized and pushed there instead.
// POST /admin/uploads
func HandleUpload(uploadDir, publicPath string, r2 *uploader.R2) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			response.Error(c, http.StatusBadRequest, "No file uploaded")
			return
		}

		if r2 != nil {
			f, err := fileHeader.Open()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to read file")
				return
			}
			defer f.Close()

			url, err := r2.Upload(c.Request.Context(), f)
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Upload failed: "+err.Error())
				return
			}
			response.OK(c, http.StatusCreated, gin.H{"url": url})
			return
		}

		cleanName := unsafeChars.ReplaceAllString(fileHeader.Filename, "_")
		filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), cleanName)

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to create upload folder")
			return
		}

		savePath := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to save file")
			return
		}

		url := fmt.Sprintf("%s/%s", publicPath, filename)
		log.Printf("file uploaded: %s -> %s", fileHeader.Filename, url)

		response.OK(c, http.StatusCreated, gin.H{"url": url})
	}
}
