package models

import "time"

type Staff struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Document  string `gorm:"size:30;uniqueIndex;not null"` // cédula
	Position  string `gorm:"size:60;not null"`
	Phone     string `gorm:"size:30"`
	Salary    float64
	HireDate  time.Time `gorm:"not null"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
