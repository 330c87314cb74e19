package models

import "time"

// MedicationApplication: aplicación de un medicamento a una cabra
// (vacuna, desparasitante, tratamiento).
type MedicationApplication struct {
	ID              uint `gorm:"primaryKey"`
	GoatID          uint `gorm:"index;not null"`
	Goat            Goat
	MedicationName  string    `gorm:"size:100;not null"`
	Dose            string    `gorm:"size:50;not null"` // ej: "2 ml", "1 tableta"
	Route           string    `gorm:"size:30"`          // oral, subcutánea, intramuscular
	ApplicationDate time.Time `gorm:"index;not null"`
	NextDoseDate    *time.Time
	UserID          uint `gorm:"index;not null"`
	User            User
	Notes           string `gorm:"size:500"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
