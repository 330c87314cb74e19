package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fabiiianac15/capri-system-sub000/internal/audit"
	"github.com/fabiiianac15/capri-system-sub000/internal/auth"
	"github.com/fabiiianac15/capri-system-sub000/internal/breeding"
	"github.com/fabiiianac15/capri-system-sub000/internal/config"
	"github.com/fabiiianac15/capri-system-sub000/internal/dashboard"
	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/goats"
	"github.com/fabiiianac15/capri-system-sub000/internal/inventory"
	"github.com/fabiiianac15/capri-system-sub000/internal/medications"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"
	"github.com/fabiiianac15/capri-system-sub000/internal/reports"
	"github.com/fabiiianac15/capri-system-sub000/internal/sales"
	"github.com/fabiiianac15/capri-system-sub000/internal/staff"
	"github.com/fabiiianac15/capri-system-sub000/internal/suppliers"
	"github.com/fabiiianac15/capri-system-sub000/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync()

	cfg := config.Load()
	database.Init(cfg, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error("error inesperado", zap.Error(err), zap.String("path", c.Path()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error interno del servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// Públicas
	app.Post("/auth/register", auth.RegisterHandler(cfg))
	app.Post("/auth/login", auth.LoginHandler(cfg))

	// Protegidas
	protected := app.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Cabras
	protected.Get("/goats", goats.ListGoatsHandler())
	protected.Get("/goats/stats", goats.StatsHandler())
	protected.Get("/goats/:id", goats.GetGoatHandler())
	protected.Post("/goats", goats.CreateGoatHandler())
	protected.Put("/goats/:id", goats.UpdateGoatHandler())
	protected.Patch("/goats/:id/update-category", goats.UpdateCategoryHandler())
	protected.Delete("/goats/:id", goats.DeleteGoatHandler())

	// Ventas
	protected.Get("/sales", sales.ListSalesHandler())
	protected.Get("/sales/stats", sales.StatsHandler())
	protected.Get("/sales/:id", sales.GetSaleHandler())
	protected.Post("/sales", sales.CreateSaleHandler())
	protected.Put("/sales/:id", sales.UpdateSaleHandler())
	protected.Delete("/sales/:id", sales.DeleteSaleHandler())

	// Productos e inventario
	adminOnly := auth.RequireRole(models.RoleAdmin)
	protected.Get("/products", inventory.ListProductsHandler())
	protected.Get("/products/low-stock", inventory.LowStockHandler())
	protected.Get("/products/stats", inventory.StatsHandler())
	protected.Post("/products/outputs", inventory.CreateOutputHandler())
	protected.Get("/products/:productId/outputs", inventory.ListOutputsHandler())
	protected.Get("/products/:id", inventory.GetProductHandler())
	protected.Post("/products", adminOnly, inventory.CreateProductHandler())
	protected.Put("/products/:id", adminOnly, inventory.UpdateProductHandler())
	protected.Delete("/products/:id", adminOnly, inventory.DeleteProductHandler())

	// Proveedores y ubicaciones
	protected.Get("/suppliers/locations/countries", suppliers.ListCountriesHandler())
	protected.Get("/suppliers/locations/states/:countryId", suppliers.ListStatesHandler())
	protected.Get("/suppliers/locations/cities/:stateId", suppliers.ListCitiesHandler())
	protected.Get("/suppliers", suppliers.ListSuppliersHandler())
	protected.Get("/suppliers/:id", suppliers.GetSupplierHandler())
	protected.Post("/suppliers", adminOnly, suppliers.CreateSupplierHandler())
	protected.Put("/suppliers/:id", adminOnly, suppliers.UpdateSupplierHandler())
	protected.Delete("/suppliers/:id", adminOnly, suppliers.DeleteSupplierHandler())

	// Personal
	protected.Get("/staff", staff.ListStaffHandler())
	protected.Get("/staff/:id", staff.GetStaffHandler())
	protected.Post("/staff", adminOnly, staff.CreateStaffHandler())
	protected.Put("/staff/:id", adminOnly, staff.UpdateStaffHandler())
	protected.Delete("/staff/:id", adminOnly, staff.DeleteStaffHandler())

	// Sanidad (aplicaciones de medicamentos)
	vetOrAdmin := auth.RequireRole(models.RoleAdmin, models.RoleVeterinario)
	protected.Get("/medications", medications.ListApplicationsHandler())
	protected.Get("/medications/:id", medications.GetApplicationHandler())
	protected.Post("/medications", vetOrAdmin, medications.CreateApplicationHandler())
	protected.Put("/medications/:id", vetOrAdmin, medications.UpdateApplicationHandler())
	protected.Delete("/medications/:id", vetOrAdmin, medications.DeleteApplicationHandler())

	// Reproducción (montas y partos)
	protected.Get("/montas", breeding.ListMontasHandler())
	protected.Get("/montas/upcoming", breeding.UpcomingPartosHandler())
	protected.Get("/montas/:id", breeding.GetMontaHandler())
	protected.Post("/montas", vetOrAdmin, breeding.CreateMontaHandler())
	protected.Post("/montas/:id/parto", vetOrAdmin, breeding.CreatePartoHandler())
	protected.Delete("/montas/:id", vetOrAdmin, breeding.DeleteMontaHandler())

	// Tablero y reportes
	protected.Get("/dashboard/stats", dashboard.StatsHandler())
	protected.Get("/reports/goats", reports.GoatsReportHandler())
	protected.Get("/reports/sales", reports.SalesReportHandler())

	// Bitácora
	protected.Get("/audit-logs", adminOnly, audit.ListAuditLogsHandler())

	// Apagado ordenado: cerrar el servidor y luego el pool de conexiones
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("apagando servidor...")
		if err := app.Shutdown(); err != nil {
			log.Error("error al apagar el servidor", zap.Error(err))
		}
		if err := database.Close(); err != nil {
			log.Error("error al cerrar la base de datos", zap.Error(err))
		}
	}()

	log.Info("servidor escuchando", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("el servidor terminó con error", zap.Error(err))
	}
}
