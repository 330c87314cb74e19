package sales

import "github.com/fabiiianac15/capri-system-sub000/internal/models"

// DerivePaymentStatus calcula el estado de pago a partir del monto
// pagado y el precio total. No existe historial de abonos: el estado se
// recalcula en cada create/update.
//
//	amountPaid >= totalPrice  => PAGADO
//	0 < amountPaid < total    => PARCIAL
//	amountPaid <= 0           => PENDIENTE
func DerivePaymentStatus(amountPaid, totalPrice float64) models.PaymentStatus {
	switch {
	case amountPaid >= totalPrice:
		return models.PaymentPagado
	case amountPaid > 0:
		return models.PaymentParcial
	default:
		return models.PaymentPendiente
	}
}
