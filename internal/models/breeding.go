package models

import "time"

type MontaStatus string

const (
	MontaPendiente  MontaStatus = "PENDIENTE"
	MontaConfirmada MontaStatus = "CONFIRMADA"
	MontaFinalizada MontaStatus = "FINALIZADA"
)

// Monta: evento de monta entre una hembra y un macho, con fecha estimada
// de parto (gestación caprina ~150 días).
type Monta struct {
	ID             uint `gorm:"primaryKey"`
	FemaleGoatID   uint `gorm:"index;not null"`
	FemaleGoat     Goat `gorm:"foreignKey:FemaleGoatID"`
	MaleGoatID     uint `gorm:"index;not null"`
	MaleGoat       Goat `gorm:"foreignKey:MaleGoatID"`
	MontaDate      time.Time   `gorm:"index;not null"`
	EstimatedParto time.Time   `gorm:"index;not null"`
	Status         MontaStatus `gorm:"size:15;not null;default:PENDIENTE"`
	Notes          string      `gorm:"size:500"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Parto: nacimiento registrado contra una monta, con conteo de crías.
type Parto struct {
	ID        uint `gorm:"primaryKey"`
	MontaID   uint `gorm:"uniqueIndex;not null"` // una monta tiene a lo sumo un parto
	Monta     Monta
	PartoDate time.Time `gorm:"not null"`
	TotalBorn int       `gorm:"not null"`
	BornAlive int       `gorm:"not null"`
	BornDead  int       `gorm:"not null"`
	Notes     string    `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
