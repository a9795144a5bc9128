package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const home = "Dhaka"

func TestShippingCharge(t *testing.T) {
	tests := []struct {
		name     string
		district string
		want     *float64
	}{
		{"home district", "Dhaka", ptr(60.0)},
		{"other district", "Chattogram", ptr(120.0)},
		{"another district", "Sylhet", ptr(120.0)},
		{"no district selected", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShippingCharge(tt.district, home)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestShippingChargeIsCaseSensitive(t *testing.T) {
	// the district comes from a fixed dropdown, "dhaka" is not the home match
	got := ShippingCharge("dhaka", home)
	require.NotNil(t, got)
	assert.Equal(t, OutsideCharge, *got)
}

func TestCompute(t *testing.T) {
	lines := []Line{
		{Price: 2450, Quantity: 2},
		{Price: 950, Quantity: 1},
	}

	q := Compute(lines, "Dhaka", home)
	assert.Equal(t, 5850.0, q.Subtotal)
	require.NotNil(t, q.Shipping)
	assert.Equal(t, 60.0, *q.Shipping)
	assert.Equal(t, 5910.0, q.Total)

	q = Compute(lines, "Rajshahi", home)
	require.NotNil(t, q.Shipping)
	assert.Equal(t, 120.0, *q.Shipping)
	assert.Equal(t, 5970.0, q.Total)
}

func TestComputeWithoutDistrict(t *testing.T) {
	q := Compute([]Line{{Price: 100, Quantity: 3}}, "", home)
	assert.Equal(t, 300.0, q.Subtotal)
	assert.Nil(t, q.Shipping)
	assert.Equal(t, 300.0, q.Total, "total excludes shipping until a district is chosen")
}

func TestComputeEmptyLines(t *testing.T) {
	q := Compute(nil, "Dhaka", home)
	assert.Equal(t, 0.0, q.Subtotal)
	require.NotNil(t, q.Shipping)
	assert.Equal(t, 60.0, q.Total)
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name  string
		qty   int
		stock int
		want  int
	}{
		{"within range", 3, 10, 3},
		{"zero clamps to one", 0, 10, 1},
		{"negative clamps to one", -5, 10, 1},
		{"above stock clamps to stock", 15, 10, 10},
		{"exactly stock", 10, 10, 10},
		{"stock of one", 4, 1, 1},
		{"no stock keeps minimum of one", 4, 0, 1},
		{"no stock large request still one", 50, 0, 1},
		{"negative stock keeps minimum of one", 4, -2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampQuantity(tt.qty, tt.stock))
		})
	}
}

func ptr(f float64) *float64 { return &f }
