package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestDiv(t *testing.T) {
	data := map[string][3]string{
		"floors":        {"100", "18", "5.555555555555555555"},
		"exact":         {"20000", "2", "10000"},
		"sub unit":      {"1", "3", "0.333333333333333333"},
		"toward zero":   {"-100", "18", "-5.555555555555555555"},
		"small by big":  {"1", "1000000000000000000000", "0"},
		"one to one":    {"10000", "10000", "1"},
		"half solvency": {"10000", "20000", "0.5"},
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			got := Div(Decimal(v[0]), Decimal(v[1]))
			assert.Equal(t, v[2], got.String(), "should floor toward zero")
		})
	}
}

func TestMul(t *testing.T) {
	data := map[string][3]string{
		"exact":  {"2000", "10", "20000"},
		"floors": {"5.555555555555555555", "0.1", "0.555555555555555555"},
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			got := Mul(Decimal(v[0]), Decimal(v[1]))
			assert.Equal(t, v[2], got.String(), "should floor the product")
		})
	}
}
