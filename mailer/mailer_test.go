package mailer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadcraft/boutique-api/models"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:             "20250301120000-abc",
		CustomerName:   "Farhana Akter",
		Phone:          "01711000001",
		Address:        "House 12, Road 4",
		District:       "Dhaka",
		Subtotal:       2450,
		ShippingCharge: 60,
		TotalAmount:    2510,
		CreatedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ProductName: "Linen Wrap Dress", Quantity: 1, Price: 2450},
		},
	}
}

func TestSendOrderNotification(t *testing.T) {
	var got struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		Text    string   `json:"text"`
	}
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New(srv.URL, "key-123", "orders@boutique.example", "shop@boutique.example")
	require.True(t, m.Enabled())
	require.NoError(t, m.SendOrderNotification(sampleOrder()))

	assert.Equal(t, "Bearer key-123", auth)
	assert.Equal(t, "orders@boutique.example", got.From)
	assert.Equal(t, []string{"shop@boutique.example"}, got.To)
	assert.Contains(t, got.Subject, "20250301120000-abc")
	assert.Contains(t, got.Subject, "Farhana Akter")
	assert.Contains(t, got.Text, "1 x Linen Wrap Dress @ 2450.00")
	assert.Contains(t, got.Text, "Total: 2510.00")
}

func TestSendOrderNotificationAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	m := New(srv.URL, "", "orders@boutique.example", "shop@boutique.example")
	err := m.SendOrderNotification(sampleOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDisabledMailerIsNoop(t *testing.T) {
	m := New("", "", "orders@boutique.example", "")
	assert.False(t, m.Enabled())
	assert.NoError(t, m.SendOrderNotification(sampleOrder()), "unconfigured mailer never errors")
}
