package models

import "time"

// Customer is a view derived from the order list, it is never persisted.
type Customer struct {
	Key        string    `json:"key"` // phone + name
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	OrderCount int       `json:"order_count"`
	TotalSpent float64   `json:"total_spent"`
	LastOrder  time.Time `json:"last_order"`
}

// AggregateCustomers groups orders by (phone, name), accumulating order
// count, total spend and the latest order date. The accumulation is
// commutative, so any permutation of the input yields the same counts and
// totals. LastOrder is kept by strict greater-than comparison: at equal
// timestamps the first record encountered wins.
func AggregateCustomers(orders []Order) map[string]Customer {
	customers := make(map[string]Customer, len(orders))
	for _, o := range orders {
		key := o.Phone + "|" + o.CustomerName
		c, ok := customers[key]
		if !ok {
			c = Customer{
				Key:       key,
				Name:      o.CustomerName,
				Phone:     o.Phone,
				LastOrder: o.CreatedAt,
			}
		}
		c.OrderCount++
		c.TotalSpent += o.TotalAmount
		if o.CreatedAt.After(c.LastOrder) {
			c.LastOrder = o.CreatedAt
		}
		customers[key] = c
	}
	return customers
}
