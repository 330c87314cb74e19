package dashboard

import (
	"github.com/fabiiianac15/capri-system-sub000/internal/goats"
	"github.com/fabiiianac15/capri-system-sub000/internal/inventory"
	"github.com/fabiiianac15/capri-system-sub000/internal/sales"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type DashboardStats struct {
	Goats     *goats.GoatStats          `json:"goats"`
	Sales     *sales.SaleStats          `json:"sales"`
	Inventory *inventory.InventoryStats `json:"inventory"`
}

// GET /dashboard/stats
// Los tres resúmenes son consultas independientes de solo lectura, así
// que se lanzan en paralelo.
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var stats DashboardStats

		g := new(errgroup.Group)
		g.Go(func() error {
			s, err := goats.ComputeStats()
			stats.Goats = s
			return err
		})
		g.Go(func() error {
			s, err := sales.ComputeStats()
			stats.Sales = s
			return err
		})
		g.Go(func() error {
			s, err := inventory.ComputeStats()
			stats.Inventory = s
			return err
		})

		if err := g.Wait(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron calcular las estadísticas del tablero")
		}

		return c.JSON(stats)
	}
}
