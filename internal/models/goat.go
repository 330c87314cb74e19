package models

import "time"

type GoatSex string

const (
	SexHembra GoatSex = "HEMBRA"
	SexMacho  GoatSex = "MACHO"
)

type GoatStatus string

const (
	GoatActiva    GoatStatus = "ACTIVA"
	GoatVendida   GoatStatus = "VENDIDA"
	GoatFallecida GoatStatus = "FALLECIDA" // estado terminal
)

type GoatCategory string

const (
	CategoryCria        GoatCategory = "CRIA"
	CategoryLevante1    GoatCategory = "LEVANTE_1"
	CategoryLevante2    GoatCategory = "LEVANTE_2"
	CategoryLechera     GoatCategory = "LECHERA"
	CategoryReproductor GoatCategory = "REPRODUCTOR"
)

type Goat struct {
	ID             uint         `gorm:"primaryKey"`
	Codigo         string       `gorm:"size:30;uniqueIndex;not null"` // identificador propio de la finca
	Breed          string       `gorm:"size:60"`
	Sex            GoatSex      `gorm:"size:10;not null"`
	Category       GoatCategory `gorm:"size:20;not null"`
	Status         GoatStatus   `gorm:"size:15;not null;default:ACTIVA"`
	Weight         float64      `gorm:"not null"` // kg
	MilkProduction float64      // litros/día, solo aplica a hembras
	BirthDate      *time.Time
	Notes          string `gorm:"size:500"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
