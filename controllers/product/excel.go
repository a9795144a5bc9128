package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
)

// ImportProductsFromExcel bulk-creates or updates products from a
// spreadsheet. Rows with an existing ID update that product, the rest are
// inserted. POST /admin/products/import-excel
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Excel file is required")
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to open Excel file")
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to parse Excel file")
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			response.Error(c, http.StatusBadRequest, "Excel file is empty or missing header row")
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			stock, _ := strconv.Atoi(get(4))
			image := get(5)
			category := get(6)
			sizes := splitList(get(7))
			highlights := splitList(get(8))

			if name == "" || priceErr != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:        name,
				Description: description,
				Price:       price,
				Stock:       stock,
				Image:       image,
				CategoryID:  category,
				Sizes:       sizes,
				Highlights:  highlights,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						existing.Name = product.Name
						existing.Description = product.Description
						existing.Price = product.Price
						existing.Stock = product.Stock
						existing.Image = product.Image
						existing.CategoryID = product.CategoryID
						existing.Sizes = product.Sizes
						existing.Highlights = product.Highlights
						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		response.OK(c, http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
