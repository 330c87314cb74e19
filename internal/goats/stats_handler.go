package goats

import (
	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type GoatStats struct {
	Total           int64                         `json:"total"`
	ByStatus        map[models.GoatStatus]int64   `json:"by_status"`
	ByCategory      map[models.GoatCategory]int64 `json:"by_category"`
	TotalMilkPerDay float64                       `json:"total_milk_per_day"` // suma de producción de hembras activas
}

// ComputeStats arma el resumen del hato a partir de la base de datos.
func ComputeStats() (*GoatStats, error) {
	stats := &GoatStats{
		ByStatus:   make(map[models.GoatStatus]int64),
		ByCategory: make(map[models.GoatCategory]int64),
	}

	if err := database.DB.Model(&models.Goat{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type statusRow struct {
		Status models.GoatStatus
		Count  int64
	}
	var statusRows []statusRow
	if err := database.DB.Model(&models.Goat{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, r := range statusRows {
		stats.ByStatus[r.Status] = r.Count
	}

	type categoryRow struct {
		Category models.GoatCategory
		Count    int64
	}
	var categoryRows []categoryRow
	if err := database.DB.Model(&models.Goat{}).
		Select("category, count(*) as count").
		Where("status = ?", models.GoatActiva).
		Group("category").
		Scan(&categoryRows).Error; err != nil {
		return nil, err
	}
	for _, r := range categoryRows {
		stats.ByCategory[r.Category] = r.Count
	}

	if err := database.DB.Model(&models.Goat{}).
		Select("coalesce(sum(milk_production), 0)").
		Where("status = ? AND sex = ?", models.GoatActiva, models.SexHembra).
		Scan(&stats.TotalMilkPerDay).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// GET /goats/stats
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := ComputeStats()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron calcular las estadísticas")
		}
		return c.JSON(stats)
	}
}
