package breeding

import "time"

// GestationDays: duración promedio de la gestación caprina.
const GestationDays = 150

// EstimatePartoDate calcula la fecha estimada de parto a partir de la
// fecha de monta.
func EstimatePartoDate(montaDate time.Time) time.Time {
	return montaDate.AddDate(0, 0, GestationDays)
}
