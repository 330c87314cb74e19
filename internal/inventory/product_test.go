package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		minimum float64
		want    bool
	}{
		{"por encima del mínimo", 100, 10, false},
		{"exactamente en el mínimo", 10, 10, true},
		{"por debajo del mínimo", 5, 10, true},
		{"stock negativo", -10, 10, true},
		{"mínimo cero con stock", 3, 0, false},
		{"mínimo cero sin stock", 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsLowStock(tc.current, tc.minimum))
		})
	}
}
