package models

import "time"

type Supplier struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	NIT         string `gorm:"column:nit;size:30;uniqueIndex;not null"`
	ContactName string `gorm:"size:100"`
	Phone       string `gorm:"size:30"`
	Email       string `gorm:"size:100"`
	Address     string `gorm:"size:255"`
	CityID      *uint  `gorm:"index"`
	City        *City
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
