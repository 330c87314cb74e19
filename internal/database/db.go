package database

import (
	"github.com/fabiiianac15/capri-system-sub000/internal/config"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config, log *zap.Logger) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.State{},
		&models.City{},
		&models.Supplier{},
		&models.Product{},
		&models.InventoryOutput{},
		&models.Goat{},
		&models.Sale{},
		&models.Staff{},
		&models.MedicationApplication{},
		&models.Monta{},
		&models.Parto{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatal("error en AutoMigrate", zap.Error(err))
	}

	seedLocations(log)

	log.Info("conexión a base de datos lista, migración completada")
}

// Close cierra el pool de conexiones subyacente (shutdown ordenado).
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedLocations carga la cascada país/departamento/ciudad mínima para
// direcciones de proveedores cuando las tablas están vacías.
func seedLocations(log *zap.Logger) {
	var count int64
	DB.Model(&models.Country{}).Count(&count)
	if count > 0 {
		return
	}

	colombia := models.Country{Name: "Colombia"}
	if err := DB.Create(&colombia).Error; err != nil {
		log.Warn("no se pudo sembrar países", zap.Error(err))
		return
	}

	states := map[string][]string{
		"Santander":  {"Bucaramanga", "Floridablanca", "Girón", "Piedecuesta"},
		"Boyacá":     {"Tunja", "Duitama", "Sogamoso"},
		"Antioquia":  {"Medellín", "Rionegro", "Santa Rosa de Osos"},
		"Cundinamarca": {"Bogotá", "Zipaquirá", "Ubaté"},
	}
	for stateName, cities := range states {
		state := models.State{CountryID: colombia.ID, Name: stateName}
		if err := DB.Create(&state).Error; err != nil {
			log.Warn("no se pudo sembrar departamento", zap.String("state", stateName), zap.Error(err))
			continue
		}
		for _, cityName := range cities {
			DB.Create(&models.City{StateID: state.ID, Name: cityName})
		}
	}

	log.Info("ubicaciones iniciales sembradas")
}
