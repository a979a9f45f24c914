package formatter_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoicely-web/pkg/formatter"
)

func TestUSDollar(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"149.99", "$149.99"},
		{"1500", "$1,500.00"},
		{"1234567.5", "$1,234,567.50"},
		{"-42.1", "$-42.10"},
	}
	for _, tc := range cases {
		got := formatter.USDollar(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "entrada %s", tc.in)
	}
}
