package models

import "time"

type SaleProductType string

const (
	SaleCarne     SaleProductType = "CARNE"
	SaleLeche     SaleProductType = "LECHE"
	SaleCabraViva SaleProductType = "CABRA_VIVA"
	SaleProcesado SaleProductType = "PROCESADO"
)

type PaymentMethod string

const (
	PaymentEfectivo      PaymentMethod = "EFECTIVO"
	PaymentTransferencia PaymentMethod = "TRANSFERENCIA"
	PaymentCredito       PaymentMethod = "CREDITO"
)

type PaymentStatus string

const (
	PaymentPendiente PaymentStatus = "PENDIENTE"
	PaymentParcial   PaymentStatus = "PARCIAL"
	PaymentPagado    PaymentStatus = "PAGADO"
)

type Sale struct {
	ID            uint            `gorm:"primaryKey"`
	InvoiceCode   string          `gorm:"size:20;uniqueIndex;not null"`
	ProductType   SaleProductType `gorm:"size:15;not null"`
	CustomerName  string          `gorm:"size:100;not null"`
	Quantity      float64         `gorm:"not null"`
	UnitPrice     float64         `gorm:"not null"`
	TotalPrice    float64         `gorm:"not null"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null"`
	PaymentStatus PaymentStatus   `gorm:"size:15;not null"` // derivado de AmountPaid vs TotalPrice
	AmountPaid    float64         `gorm:"not null"`
	GoatID        *uint           `gorm:"index"` // obligatorio cuando ProductType = CABRA_VIVA
	Goat          *Goat
	SaleDate      time.Time `gorm:"index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
