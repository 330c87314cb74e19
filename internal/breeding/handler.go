package breeding

import (
	"time"

	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateMontaRequest struct {
	FemaleGoatID uint   `json:"female_goat_id"`
	MaleGoatID   uint   `json:"male_goat_id"`
	MontaDate    string `json:"monta_date"` // "2006-01-02", por defecto hoy
	Notes        string `json:"notes"`
}

type CreatePartoRequest struct {
	PartoDate string `json:"parto_date"` // "2006-01-02", por defecto hoy
	TotalBorn int    `json:"total_born"`
	BornAlive int    `json:"born_alive"`
	BornDead  int    `json:"born_dead"`
	Notes     string `json:"notes"`
}

type MontaResponse struct {
	ID             uint               `json:"id"`
	FemaleGoatID   uint               `json:"female_goat_id"`
	FemaleCodigo   string             `json:"female_codigo"`
	MaleGoatID     uint               `json:"male_goat_id"`
	MaleCodigo     string             `json:"male_codigo"`
	MontaDate      string             `json:"monta_date"`
	EstimatedParto string             `json:"estimated_parto"`
	Status         models.MontaStatus `json:"status"`
	Notes          string             `json:"notes"`
}

type PartoResponse struct {
	ID        uint   `json:"id"`
	MontaID   uint   `json:"monta_id"`
	PartoDate string `json:"parto_date"`
	TotalBorn int    `json:"total_born"`
	BornAlive int    `json:"born_alive"`
	BornDead  int    `json:"born_dead"`
	Notes     string `json:"notes"`
}

func toMontaResponse(m *models.Monta) MontaResponse {
	return MontaResponse{
		ID:             m.ID,
		FemaleGoatID:   m.FemaleGoatID,
		FemaleCodigo:   m.FemaleGoat.Codigo,
		MaleGoatID:     m.MaleGoatID,
		MaleCodigo:     m.MaleGoat.Codigo,
		MontaDate:      m.MontaDate.Format("2006-01-02"),
		EstimatedParto: m.EstimatedParto.Format("2006-01-02"),
		Status:         m.Status,
		Notes:          m.Notes,
	}
}

func toPartoResponse(p *models.Parto) PartoResponse {
	return PartoResponse{
		ID:        p.ID,
		MontaID:   p.MontaID,
		PartoDate: p.PartoDate.Format("2006-01-02"),
		TotalBorn: p.TotalBorn,
		BornAlive: p.BornAlive,
		BornDead:  p.BornDead,
		Notes:     p.Notes,
	}
}

// GET /montas?status=PENDIENTE
func ListMontasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Preload("FemaleGoat").Preload("MaleGoat").Model(&models.Monta{})
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}

		var montas []models.Monta
		if err := q.Order("monta_date DESC").Find(&montas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las montas")
		}

		resp := make([]MontaResponse, 0, len(montas))
		for i := range montas {
			resp = append(resp, toMontaResponse(&montas[i]))
		}
		return c.JSON(resp)
	}
}

// GET /montas/:id
func GetMontaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var monta models.Monta
		if err := database.DB.Preload("FemaleGoat").Preload("MaleGoat").
			First(&monta, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La monta no existe")
		}

		resp := fiber.Map{"monta": toMontaResponse(&monta)}

		var parto models.Parto
		if err := database.DB.First(&parto, "monta_id = ?", monta.ID).Error; err == nil {
			resp["parto"] = toPartoResponse(&parto)
		}
		return c.JSON(resp)
	}
}

// GET /montas/upcoming?days=15
// Montas sin parto con fecha estimada dentro de los próximos N días.
func UpcomingPartosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 15)
		if days <= 0 || days > 150 {
			days = 15
		}

		now := time.Now()
		until := now.AddDate(0, 0, days)

		var montas []models.Monta
		if err := database.DB.Preload("FemaleGoat").Preload("MaleGoat").
			Where("status <> ? AND estimated_parto BETWEEN ? AND ?", models.MontaFinalizada, now, until).
			Order("estimated_parto asc").
			Find(&montas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron consultar los próximos partos")
		}

		resp := make([]MontaResponse, 0, len(montas))
		for i := range montas {
			resp = append(resp, toMontaResponse(&montas[i]))
		}
		return c.JSON(resp)
	}
}

// POST /montas
// La hembra y el macho deben existir, estar activos y tener el sexo y la
// categoría adecuados (macho REPRODUCTOR).
func CreateMontaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMontaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.FemaleGoatID == 0 || body.MaleGoatID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "La hembra y el macho son obligatorios")
		}
		if body.FemaleGoatID == body.MaleGoatID {
			return fiber.NewError(fiber.StatusBadRequest, "La hembra y el macho deben ser animales distintos")
		}

		var female models.Goat
		if err := database.DB.First(&female, "id = ?", body.FemaleGoatID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La cabra hembra no existe")
		}
		if female.Sex != models.SexHembra {
			return fiber.NewError(fiber.StatusBadRequest, "El animal indicado como hembra no es hembra")
		}
		if female.Status != models.GoatActiva {
			return fiber.NewError(fiber.StatusBadRequest, "La cabra hembra no está activa")
		}

		var male models.Goat
		if err := database.DB.First(&male, "id = ?", body.MaleGoatID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El macho no existe")
		}
		if male.Sex != models.SexMacho {
			return fiber.NewError(fiber.StatusBadRequest, "El animal indicado como macho no es macho")
		}
		if male.Status != models.GoatActiva {
			return fiber.NewError(fiber.StatusBadRequest, "El macho no está activo")
		}
		if male.Category != models.CategoryReproductor {
			return fiber.NewError(fiber.StatusBadRequest, "El macho no es reproductor")
		}

		montaDate := time.Now()
		if body.MontaDate != "" {
			d, err := time.Parse("2006-01-02", body.MontaDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La fecha debe tener formato 'YYYY-MM-DD'")
			}
			montaDate = d
		}

		monta := models.Monta{
			FemaleGoatID:   body.FemaleGoatID,
			MaleGoatID:     body.MaleGoatID,
			MontaDate:      montaDate,
			EstimatedParto: EstimatePartoDate(montaDate),
			Status:         models.MontaPendiente,
			Notes:          body.Notes,
		}

		if err := database.DB.Create(&monta).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la monta")
		}

		monta.FemaleGoat = female
		monta.MaleGoat = male
		return c.Status(fiber.StatusCreated).JSON(toMontaResponse(&monta))
	}
}

// POST /montas/:id/parto
// Registra el parto y finaliza la monta en la misma transacción.
func CreatePartoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var monta models.Monta
		if err := database.DB.First(&monta, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La monta no existe")
		}
		if monta.Status == models.MontaFinalizada {
			return fiber.NewError(fiber.StatusBadRequest, "La monta ya tiene un parto registrado")
		}

		var body CreatePartoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.TotalBorn <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El total de crías debe ser mayor a 0")
		}
		if body.BornAlive < 0 || body.BornDead < 0 || body.BornAlive+body.BornDead != body.TotalBorn {
			return fiber.NewError(fiber.StatusBadRequest, "Las crías vivas y muertas deben sumar el total")
		}

		partoDate := time.Now()
		if body.PartoDate != "" {
			d, err := time.Parse("2006-01-02", body.PartoDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La fecha debe tener formato 'YYYY-MM-DD'")
			}
			partoDate = d
		}

		parto := models.Parto{
			MontaID:   monta.ID,
			PartoDate: partoDate,
			TotalBorn: body.TotalBorn,
			BornAlive: body.BornAlive,
			BornDead:  body.BornDead,
			Notes:     body.Notes,
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&parto).Error; err != nil {
				return err
			}
			return tx.Model(&monta).Update("status", models.MontaFinalizada).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar el parto")
		}

		return c.Status(fiber.StatusCreated).JSON(toPartoResponse(&parto))
	}
}

// DELETE /montas/:id
// Solo se eliminan montas sin parto registrado.
func DeleteMontaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var monta models.Monta
		if err := database.DB.First(&monta, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La monta no existe")
		}

		var partoCount int64
		database.DB.Model(&models.Parto{}).Where("monta_id = ?", monta.ID).Count(&partoCount)
		if partoCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "La monta tiene un parto registrado y no puede eliminarse")
		}

		if err := database.DB.Delete(&monta).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la monta")
		}

		return c.JSON(fiber.Map{"message": "Monta eliminada exitosamente"})
	}
}
