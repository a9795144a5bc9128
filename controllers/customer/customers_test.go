package customercontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadcraft/boutique-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}))
	return db
}

func getCustomers(t *testing.T, db *gorm.DB) []models.Customer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/customers", GetCustomers(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Customer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCustomersSortedByLastOrder(t *testing.T) {
	db := testDB(t)
	day := func(n int) time.Time {
		return time.Date(2025, time.March, n, 12, 0, 0, 0, time.UTC)
	}
	require.NoError(t, db.Create(&[]models.Order{
		{ID: "a", CustomerName: "Farhana Akter", Phone: "01711000001", TotalAmount: 2510, CreatedAt: day(1)},
		{ID: "b", CustomerName: "Farhana Akter", Phone: "01711000001", TotalAmount: 980, CreatedAt: day(3)},
		{ID: "c", CustomerName: "Nusrat Jahan", Phone: "01911000002", TotalAmount: 4420, CreatedAt: day(5)},
	}).Error)

	customers := getCustomers(t, db)
	require.Len(t, customers, 2)

	assert.Equal(t, "Nusrat Jahan", customers[0].Name, "latest order first")
	assert.Equal(t, "Farhana Akter", customers[1].Name)
	assert.Equal(t, 2, customers[1].OrderCount)
	assert.InDelta(t, 3490.0, customers[1].TotalSpent, 1e-9)
}

func TestCustomersEmpty(t *testing.T) {
	db := testDB(t)
	assert.Empty(t, getCustomers(t, db))
}
