package models

// Cascada de ubicación para direcciones de proveedores:
// país -> departamento -> ciudad.

type Country struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:80;uniqueIndex;not null"`
}

type State struct {
	ID        uint `gorm:"primaryKey"`
	CountryID uint `gorm:"index;not null"`
	Country   Country
	Name      string `gorm:"size:80;not null"`
}

type City struct {
	ID      uint `gorm:"primaryKey"`
	StateID uint `gorm:"index;not null"`
	State   State
	Name    string `gorm:"size:80;not null"`
}
