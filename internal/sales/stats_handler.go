package sales

import (
	"time"

	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SaleStats struct {
	TotalSales    int64                            `json:"total_sales"`
	TotalRevenue  float64                          `json:"total_revenue"`
	TotalPending  float64                          `json:"total_pending"` // saldo por cobrar
	ByProductType map[models.SaleProductType]int64 `json:"by_product_type"`
	ByStatus      map[models.PaymentStatus]int64   `json:"by_payment_status"`
	MonthRevenue  float64                          `json:"month_revenue"` // mes calendario actual
}

// ComputeStats arma el resumen de ventas.
func ComputeStats() (*SaleStats, error) {
	stats := &SaleStats{
		ByProductType: make(map[models.SaleProductType]int64),
		ByStatus:      make(map[models.PaymentStatus]int64),
	}

	if err := database.DB.Model(&models.Sale{}).Count(&stats.TotalSales).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Sale{}).
		Select("coalesce(sum(total_price), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Sale{}).
		Select("coalesce(sum(total_price - amount_paid), 0)").
		Where("payment_status <> ?", models.PaymentPagado).
		Scan(&stats.TotalPending).Error; err != nil {
		return nil, err
	}

	type typeRow struct {
		ProductType models.SaleProductType
		Count       int64
	}
	var typeRows []typeRow
	if err := database.DB.Model(&models.Sale{}).
		Select("product_type, count(*) as count").
		Group("product_type").
		Scan(&typeRows).Error; err != nil {
		return nil, err
	}
	for _, r := range typeRows {
		stats.ByProductType[r.ProductType] = r.Count
	}

	type statusRow struct {
		PaymentStatus models.PaymentStatus
		Count         int64
	}
	var statusRows []statusRow
	if err := database.DB.Model(&models.Sale{}).
		Select("payment_status, count(*) as count").
		Group("payment_status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, r := range statusRows {
		stats.ByStatus[r.PaymentStatus] = r.Count
	}

	now := time.Now()
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := database.DB.Model(&models.Sale{}).
		Select("coalesce(sum(total_price), 0)").
		Where("sale_date >= ?", firstDay).
		Scan(&stats.MonthRevenue).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// GET /sales/stats
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := ComputeStats()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron calcular las estadísticas de ventas")
		}
		return c.JSON(stats)
	}
}
