package models

import "time"

type ProductCategory string

const (
	ProductAlimento    ProductCategory = "ALIMENTO"
	ProductMedicamento ProductCategory = "MEDICAMENTO"
	ProductInsumo      ProductCategory = "INSUMO"
	ProductHerramienta ProductCategory = "HERRAMIENTA"
)

type Product struct {
	ID           uint            `gorm:"primaryKey"`
	Name         string          `gorm:"size:100;not null"`
	Category     ProductCategory `gorm:"size:20;not null"`
	CurrentStock float64         `gorm:"not null"`
	MinimumStock float64         `gorm:"not null"`
	Unit         string          `gorm:"size:20;not null"` // kg, bulto, litro, unidad...
	Price        float64         `gorm:"not null"`
	SupplierID   *uint           `gorm:"index"`
	Supplier     *Supplier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InventoryOutput: salida de inventario. Se crea una sola vez, no tiene
// ruta de actualización.
type InventoryOutput struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"index;not null"`
	Product   Product
	UserID    uint `gorm:"index;not null"`
	User      User
	Quantity  float64 `gorm:"not null"`
	Notes     string  `gorm:"size:255"`
	CreatedAt time.Time
}
