package objects

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTourPriceValue(t *testing.T) {

	cases := []struct {
		price string
		want  string
		ok    bool
	}{
		{price: "12,500", want: "12500", ok: true},
		{price: " 999.50 ", want: "999.5", ok: true},
		{price: "", ok: false},
		{price: "on request", ok: false},
	}

	for _, c := range cases {

		value, ok := Tour{Price: c.price}.PriceValue()
		assert.Equal(t, c.ok, ok, c.price)

		if c.ok {
			assert.True(t, decimal.RequireFromString(c.want).Equal(value), c.price)
		}
	}
}
