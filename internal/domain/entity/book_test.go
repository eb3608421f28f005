package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_EffectivePrice(t *testing.T) {
	book := Book{Price: 12.50}
	assert.Equal(t, 12.50, book.EffectivePrice())

	discounted := 8.00
	book.DiscountedPrice = &discounted
	assert.Equal(t, 8.00, book.EffectivePrice())
}

func TestBook_BelowReorderLevel(t *testing.T) {
	cases := []struct {
		name  string
		stock int
		level int
		want  bool
	}{
		{name: "below", stock: 2, level: 5, want: true},
		{name: "at level", stock: 5, level: 5, want: false},
		{name: "above", stock: 9, level: 5, want: false},
		{name: "zero stock zero level", stock: 0, level: 0, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			book := Book{StockQuantity: tc.stock, ReorderLevel: tc.level}
			assert.Equal(t, tc.want, book.BelowReorderLevel())
		})
	}
}
