package models

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2025, time.March, n, 12, 0, 0, 0, time.UTC)
}

func sampleOrders() []Order {
	return []Order{
		{ID: "a", CustomerName: "Farhana Akter", Phone: "01711000001", TotalAmount: 2510, CreatedAt: day(1)},
		{ID: "b", CustomerName: "Farhana Akter", Phone: "01711000001", TotalAmount: 1060, CreatedAt: day(5)},
		{ID: "c", CustomerName: "Farhana Akter", Phone: "01711000001", TotalAmount: 980, CreatedAt: day(3)},
		{ID: "d", CustomerName: "Nusrat Jahan", Phone: "01911000002", TotalAmount: 4420, CreatedAt: day(2)},
		// same phone, different name: distinct customer key
		{ID: "e", CustomerName: "N. Jahan", Phone: "01911000002", TotalAmount: 700, CreatedAt: day(4)},
	}
}

func TestAggregateCustomers(t *testing.T) {
	customers := AggregateCustomers(sampleOrders())
	require.Len(t, customers, 3)

	farhana := customers["01711000001|Farhana Akter"]
	assert.Equal(t, 3, farhana.OrderCount)
	assert.InDelta(t, 4550.0, farhana.TotalSpent, 1e-9)
	assert.Equal(t, day(5), farhana.LastOrder)
	assert.Equal(t, "Farhana Akter", farhana.Name)
	assert.Equal(t, "01711000001", farhana.Phone)

	nusrat := customers["01911000002|Nusrat Jahan"]
	assert.Equal(t, 1, nusrat.OrderCount)
	assert.InDelta(t, 4420.0, nusrat.TotalSpent, 1e-9)
}

func TestAggregateCustomersPermutationInvariant(t *testing.T) {
	base := AggregateCustomers(sampleOrders())

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		orders := sampleOrders()
		rng.Shuffle(len(orders), func(a, b int) {
			orders[a], orders[b] = orders[b], orders[a]
		})
		got := AggregateCustomers(orders)

		require.Len(t, got, len(base))
		for key, want := range base {
			assert.Equal(t, want.OrderCount, got[key].OrderCount, "key %s", key)
			assert.InDelta(t, want.TotalSpent, got[key].TotalSpent, 1e-9, "key %s", key)
			assert.Equal(t, want.LastOrder, got[key].LastOrder, "key %s", key)
		}
	}
}

func TestAggregateCustomersTieKeepsFirstRecord(t *testing.T) {
	ts := day(7)
	orders := []Order{
		{ID: "first", CustomerName: "X", Phone: "01500", TotalAmount: 10, CreatedAt: ts},
		{ID: "second", CustomerName: "X", Phone: "01500", TotalAmount: 20, CreatedAt: ts},
	}

	c := AggregateCustomers(orders)["01500|X"]
	assert.Equal(t, 2, c.OrderCount)
	assert.InDelta(t, 30.0, c.TotalSpent, 1e-9)
	// equal timestamps: the strictly-greater comparison keeps the first seen
	assert.Equal(t, ts, c.LastOrder)
}

func TestAggregateCustomersEmpty(t *testing.T) {
	assert.Empty(t, AggregateCustomers(nil))
}
