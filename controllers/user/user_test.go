package usercontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadcraft/boutique-api/middleware"
	"github.com/threadcraft/boutique-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var jwtSecret = []byte("test-secret")

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	// TranslateError matches production, duplicate emails must map to 409
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.AddressEntry{},
		&models.Cart{}, &models.CartItem{},
	))
	return db
}

func testRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", Register(db, jwtSecret))
	r.POST("/auth/login", Login(db, jwtSecret))

	user := r.Group("/user", middleware.ValidateToken(jwtSecret))
	user.GET("", GetProfile(db))
	user.PUT("", UpdateProfile(db))
	user.POST("/addresses", AddAddress(db))

	admin := r.Group("/admin", middleware.ValidateToken(jwtSecret), middleware.RequireRole(string(models.RoleAdmin)))
	admin.GET("/users", GetAllUsers(db))
	admin.PUT("/users/:id/role", UpdateUserRole(db))
	admin.DELETE("/users/:id", DeleteUser(db))
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func register(t *testing.T, r *gin.Engine, name, email, password string) session {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestRegisterAndLogin(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)

	s := register(t, r, "Farhana", "Farhana@Example.com", "s3cret-passw0rd")
	assert.NotEmpty(t, s.Token)
	assert.Equal(t, "farhana@example.com", s.User.Email, "email lowercased")
	assert.Equal(t, models.RoleUser, s.User.Role)

	// a cart is opened with the account
	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", s.User.ID).First(&cart).Error)

	w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "farhana@example.com", "password": "s3cret-passw0rd",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "farhana@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)

	register(t, r, "Farhana", "farhana@example.com", "s3cret-passw0rd")

	w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Imposter", "email": "FARHANA@example.com", "password": "another-pass",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count, "the unique index rejects the second insert")
}

func TestPasswordHashNeverSerialized(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)

	s := register(t, r, "Farhana", "farhana@example.com", "s3cret-passw0rd")

	w := doJSON(r, http.MethodGet, "/user", s.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestProfileRequiresToken(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)

	w := doJSON(r, http.MethodGet, "/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/user", "garbage.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)
	s := register(t, r, "Farhana", "farhana@example.com", "s3cret-passw0rd")

	w := doJSON(r, http.MethodPut, "/user", s.Token, gin.H{"name": "Farhana A."})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.User
	require.NoError(t, db.First(&got, "id = ?", s.User.ID).Error)
	assert.Equal(t, "Farhana A.", got.Name)
}

func TestAddressBook(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)
	s := register(t, r, "Farhana", "farhana@example.com", "s3cret-passw0rd")

	w := doJSON(r, http.MethodPost, "/user/addresses", s.Token, gin.H{
		"kind": "shipping", "recipient": "Farhana Akter",
		"street": "House 12, Road 4", "district": "Dhaka",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/user/addresses", s.Token, gin.H{
		"kind": "office", "recipient": "Farhana Akter", "street": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "kind restricted to shipping/billing")
}

func TestRoleGate(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)

	s := register(t, r, "Plain User", "user@example.com", "s3cret-passw0rd")
	w := doJSON(r, http.MethodGet, "/admin/users", s.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// promote directly in the store, then re-login for a fresh token
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", s.User.ID).Update("role", models.RoleAdmin).Error)

	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "user@example.com", "password": "s3cret-passw0rd",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = doJSON(r, http.MethodGet, "/admin/users", resp.Data.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateUserRole(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)

	adminSess := register(t, r, "Root", "root@example.com", "s3cret-passw0rd")
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", adminSess.User.ID).Update("role", models.RoleAdmin).Error)
	w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "root@example.com", "password": "s3cret-passw0rd",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Data session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login.Data.Token

	target := register(t, r, "Editor-to-be", "editor@example.com", "s3cret-passw0rd")

	w = doJSON(r, http.MethodPut, "/admin/users/"+target.User.ID+"/role", token, gin.H{"role": "editor"})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.User
	require.NoError(t, db.First(&got, "id = ?", target.User.ID).Error)
	assert.Equal(t, models.RoleEditor, got.Role)

	w = doJSON(r, http.MethodPut, "/admin/users/"+target.User.ID+"/role", token, gin.H{"role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown role rejected")

	w = doJSON(r, http.MethodDelete, "/admin/users/"+target.User.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	err := db.First(&got, "id = ?", target.User.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
