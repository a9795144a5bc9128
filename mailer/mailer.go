// Package mailer sends order notifications through a transactional mail
// HTTP API. Sends are best effort: callers fire them in a goroutine and
// failures are logged, never surfaced to the shopper.
package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/threadcraft/boutique-api/models"
)

type Mailer struct {
	apiURL string
	apiKey string
	from   string
	to     string
	client *http.Client
}

func New(apiURL, apiKey, from, to string) *Mailer {
	return &Mailer{
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
		to:     to,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether the mail API is configured.
func (m *Mailer) Enabled() bool {
	return m.apiURL != "" && m.to != ""
}

// SendOrderNotification posts a new-order email to the shop inbox.
func (m *Mailer) SendOrderNotification(order models.Order) error {
	if !m.Enabled() {
		return nil
	}

	payload := map[string]interface{}{
		"from":    m.from,
		"to":      []string{m.to},
		"subject": fmt.Sprintf("New order %s from %s", order.ID, order.CustomerName),
		"text":    renderOrderBody(order),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if m.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach mail API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail API error (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}

// NotifyAsync fires the notification without blocking the checkout path.
func (m *Mailer) NotifyAsync(order models.Order) {
	if !m.Enabled() {
		return
	}
	go func() {
		if err := m.SendOrderNotification(order); err != nil {
			log.Printf("order email for %s not sent: %v", order.ID, err)
		}
	}()
}

func renderOrderBody(order models.Order) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Order %s placed on %s\n\n", order.ID, order.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&buf, "Customer: %s (%s)\n", order.CustomerName, order.Phone)
	fmt.Fprintf(&buf, "Ship to: %s, %s\n\n", order.Address, order.District)
	for _, item := range order.Items {
		fmt.Fprintf(&buf, "  %d x %s @ %.2f\n", item.Quantity, item.ProductName, item.Price)
	}
	fmt.Fprintf(&buf, "\nSubtotal: %.2f\nShipping: %.2f\nTotal: %.2f\n",
		order.Subtotal, order.ShippingCharge, order.TotalAmount)
	return buf.String()
}
