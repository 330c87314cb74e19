package inventory

import (
	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type InventoryStats struct {
	TotalProducts  int64                            `json:"total_products"`
	LowStockCount  int64                            `json:"low_stock_count"`
	InventoryValue float64                          `json:"inventory_value"` // sum(stock * precio)
	ByCategory     map[models.ProductCategory]int64 `json:"by_category"`
}

// ComputeStats arma el resumen de inventario.
func ComputeStats() (*InventoryStats, error) {
	stats := &InventoryStats{
		ByCategory: make(map[models.ProductCategory]int64),
	}

	if err := database.DB.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Product{}).
		Where("current_stock <= minimum_stock").
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Product{}).
		Select("coalesce(sum(current_stock * price), 0)").
		Scan(&stats.InventoryValue).Error; err != nil {
		return nil, err
	}

	type categoryRow struct {
		Category models.ProductCategory
		Count    int64
	}
	var rows []categoryRow
	if err := database.DB.Model(&models.Product{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		stats.ByCategory[r.Category] = r.Count
	}

	return stats, nil
}

// GET /products/stats
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := ComputeStats()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron calcular las estadísticas de inventario")
		}
		return c.JSON(stats)
	}
}
