package sales

import (
	"testing"

	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDerivePaymentStatus(t *testing.T) {
	cases := []struct {
		name       string
		amountPaid float64
		totalPrice float64
		want       models.PaymentStatus
	}{
		{"sin pago", 0, 500000, models.PaymentPendiente},
		{"pago negativo", -100, 500000, models.PaymentPendiente},
		{"abono parcial", 100000, 500000, models.PaymentParcial},
		{"casi completo", 499999, 500000, models.PaymentParcial},
		{"pago exacto", 500000, 500000, models.PaymentPagado},
		{"pago con excedente", 600000, 500000, models.PaymentPagado},
		{"abono mínimo", 0.01, 500000, models.PaymentParcial},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DerivePaymentStatus(tc.amountPaid, tc.totalPrice))
		})
	}
}

func TestDerivePaymentStatusExhaustive(t *testing.T) {
	// Para todo par con total > 0 el resultado es uno de los tres estados.
	valid := map[models.PaymentStatus]bool{
		models.PaymentPendiente: true,
		models.PaymentParcial:   true,
		models.PaymentPagado:    true,
	}
	for paid := -100.0; paid <= 1100; paid += 50 {
		got := DerivePaymentStatus(paid, 1000)
		assert.True(t, valid[got], "amountPaid=%.0f produjo %q", paid, got)
	}
}
