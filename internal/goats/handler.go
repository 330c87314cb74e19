package goats

import (
	"strings"
	"time"

	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateGoatRequest struct {
	Codigo         string          `json:"codigo"`
	Breed          string          `json:"breed"`
	Sex            models.GoatSex  `json:"sex"`
	Weight         float64         `json:"weight"`
	MilkProduction float64         `json:"milk_production"`
	BirthDate      *string         `json:"birth_date"` // "2006-01-02"
	Notes          string          `json:"notes"`
}

type UpdateGoatRequest struct {
	Breed          *string  `json:"breed"`
	Weight         *float64 `json:"weight"`
	MilkProduction *float64 `json:"milk_production"`
	Notes          *string  `json:"notes"`
}

type GoatResponse struct {
	ID             uint                `json:"id"`
	Codigo         string              `json:"codigo"`
	Breed          string              `json:"breed"`
	Sex            models.GoatSex      `json:"sex"`
	Category       models.GoatCategory `json:"category"`
	Status         models.GoatStatus   `json:"status"`
	Weight         float64             `json:"weight"`
	MilkProduction float64             `json:"milk_production"`
	BirthDate      *string             `json:"birth_date"`
	Notes          string              `json:"notes"`
	CreatedAt      string              `json:"created_at"`
}

func toGoatResponse(g *models.Goat) GoatResponse {
	var birth *string
	if g.BirthDate != nil {
		s := g.BirthDate.Format("2006-01-02")
		birth = &s
	}
	return GoatResponse{
		ID:             g.ID,
		Codigo:         g.Codigo,
		Breed:          g.Breed,
		Sex:            g.Sex,
		Category:       g.Category,
		Status:         g.Status,
		Weight:         g.Weight,
		MilkProduction: g.MilkProduction,
		BirthDate:      birth,
		Notes:          g.Notes,
		CreatedAt:      g.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /goats?status=ACTIVA&category=LECHERA
func ListGoatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.Goat{})

		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		if category := c.Query("category"); category != "" {
			q = q.Where("category = ?", category)
		}

		var goatsList []models.Goat
		if err := q.Order("codigo asc").Find(&goatsList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las cabras")
		}

		resp := make([]GoatResponse, 0, len(goatsList))
		for i := range goatsList {
			resp = append(resp, toGoatResponse(&goatsList[i]))
		}
		return c.JSON(resp)
	}
}

// GET /goats/:id
func GetGoatHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var goat models.Goat
		if err := database.DB.First(&goat, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La cabra no existe")
		}
		return c.JSON(toGoatResponse(&goat))
	}
}

// POST /goats
func CreateGoatHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateGoatRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Codigo = strings.TrimSpace(body.Codigo)
		if body.Codigo == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El código es obligatorio")
		}
		if body.Sex != models.SexHembra && body.Sex != models.SexMacho {
			return fiber.NewError(fiber.StatusBadRequest, "Sexo inválido (HEMBRA|MACHO)")
		}
		if body.Weight < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El peso no puede ser negativo")
		}

		var count int64
		database.DB.Model(&models.Goat{}).Where("codigo = ?", body.Codigo).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ya existe una cabra con ese código")
		}

		var birth *time.Time
		if body.BirthDate != nil && *body.BirthDate != "" {
			d, err := time.Parse("2006-01-02", *body.BirthDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La fecha debe tener formato 'YYYY-MM-DD'")
			}
			birth = &d
		}

		goat := models.Goat{
			Codigo:         body.Codigo,
			Breed:          strings.TrimSpace(body.Breed),
			Sex:            body.Sex,
			Category:       CategoryForWeight(body.Sex, body.Weight),
			Status:         models.GoatActiva,
			Weight:         body.Weight,
			MilkProduction: body.MilkProduction,
			BirthDate:      birth,
			Notes:          body.Notes,
		}

		if err := database.DB.Create(&goat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la cabra")
		}

		return c.Status(fiber.StatusCreated).JSON(toGoatResponse(&goat))
	}
}

// PUT /goats/:id
func UpdateGoatHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var goat models.Goat
		if err := database.DB.First(&goat, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La cabra no existe")
		}

		var body UpdateGoatRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Breed != nil {
			goat.Breed = strings.TrimSpace(*body.Breed)
		}
		if body.Weight != nil {
			if *body.Weight < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "El peso no puede ser negativo")
			}
			goat.Weight = *body.Weight
		}
		if body.MilkProduction != nil {
			goat.MilkProduction = *body.MilkProduction
		}
		if body.Notes != nil {
			goat.Notes = *body.Notes
		}

		if err := database.DB.Save(&goat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la cabra")
		}

		return c.JSON(toGoatResponse(&goat))
	}
}

// PATCH /goats/:id/update-category
// Recalcula la categoría según sexo y peso; solo persiste si cambió.
func UpdateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var goat models.Goat
		if err := database.DB.First(&goat, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La cabra no existe")
		}

		newCategory := CategoryForWeight(goat.Sex, goat.Weight)
		changed := newCategory != goat.Category
		if changed {
			goat.Category = newCategory
			if err := database.DB.Save(&goat).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la categoría")
			}
		}

		return c.JSON(fiber.Map{
			"message": "Categoría recalculada",
			"changed": changed,
			"data":    toGoatResponse(&goat),
		})
	}
}

// DELETE /goats/:id
// No elimina el registro: marca la cabra como FALLECIDA (estado terminal).
func DeleteGoatHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var goat models.Goat
		if err := database.DB.First(&goat, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La cabra no existe")
		}

		if goat.Status == models.GoatFallecida {
			return fiber.NewError(fiber.StatusBadRequest, "La cabra ya está registrada como fallecida")
		}

		goat.Status = models.GoatFallecida
		if err := database.DB.Save(&goat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo dar de baja la cabra")
		}

		return c.JSON(fiber.Map{"message": "Cabra registrada como fallecida"})
	}
}
