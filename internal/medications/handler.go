package medications

import (
	"strings"
	"time"

	"github.com/fabiiianac15/capri-system-sub000/internal/auth"
	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateApplicationRequest struct {
	GoatID          uint    `json:"goat_id"`
	MedicationName  string  `json:"medication_name"`
	Dose            string  `json:"dose"`
	Route           string  `json:"route"`
	ApplicationDate string  `json:"application_date"` // "2006-01-02", por defecto hoy
	NextDoseDate    *string `json:"next_dose_date"`
	Notes           string  `json:"notes"`
}

type UpdateApplicationRequest struct {
	Dose         *string `json:"dose"`
	Route        *string `json:"route"`
	NextDoseDate *string `json:"next_dose_date"`
	Notes        *string `json:"notes"`
}

type ApplicationResponse struct {
	ID              uint    `json:"id"`
	GoatID          uint    `json:"goat_id"`
	GoatCodigo      string  `json:"goat_codigo"`
	MedicationName  string  `json:"medication_name"`
	Dose            string  `json:"dose"`
	Route           string  `json:"route"`
	ApplicationDate string  `json:"application_date"`
	NextDoseDate    *string `json:"next_dose_date"`
	UserID          uint    `json:"user_id"`
	Notes           string  `json:"notes"`
}

func toApplicationResponse(a *models.MedicationApplication) ApplicationResponse {
	var next *string
	if a.NextDoseDate != nil {
		s := a.NextDoseDate.Format("2006-01-02")
		next = &s
	}
	return ApplicationResponse{
		ID:              a.ID,
		GoatID:          a.GoatID,
		GoatCodigo:      a.Goat.Codigo,
		MedicationName:  a.MedicationName,
		Dose:            a.Dose,
		Route:           a.Route,
		ApplicationDate: a.ApplicationDate.Format("2006-01-02"),
		NextDoseDate:    next,
		UserID:          a.UserID,
		Notes:           a.Notes,
	}
}

// GET /medications?goat_id=3
func ListApplicationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Preload("Goat").Model(&models.MedicationApplication{})
		if goatID := c.Query("goat_id"); goatID != "" {
			q = q.Where("goat_id = ?", goatID)
		}

		var apps []models.MedicationApplication
		if err := q.Order("application_date DESC, created_at DESC").Find(&apps).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las aplicaciones")
		}

		resp := make([]ApplicationResponse, 0, len(apps))
		for i := range apps {
			resp = append(resp, toApplicationResponse(&apps[i]))
		}
		return c.JSON(resp)
	}
}

// GET /medications/:id
func GetApplicationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var app models.MedicationApplication
		if err := database.DB.Preload("Goat").First(&app, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La aplicación no existe")
		}
		return c.JSON(toApplicationResponse(&app))
	}
}

// POST /medications
func CreateApplicationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateApplicationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.MedicationName = strings.TrimSpace(body.MedicationName)
		body.Dose = strings.TrimSpace(body.Dose)

		if body.GoatID == 0 || body.MedicationName == "" || body.Dose == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Cabra, medicamento y dosis son obligatorios")
		}

		var goat models.Goat
		if err := database.DB.First(&goat, "id = ?", body.GoatID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La cabra no existe")
		}
		if goat.Status == models.GoatFallecida {
			return fiber.NewError(fiber.StatusBadRequest, "No se pueden registrar aplicaciones a una cabra fallecida")
		}

		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		appDate := time.Now()
		if body.ApplicationDate != "" {
			d, err := time.Parse("2006-01-02", body.ApplicationDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La fecha debe tener formato 'YYYY-MM-DD'")
			}
			appDate = d
		}

		var nextDose *time.Time
		if body.NextDoseDate != nil && *body.NextDoseDate != "" {
			d, err := time.Parse("2006-01-02", *body.NextDoseDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La próxima dosis debe tener formato 'YYYY-MM-DD'")
			}
			nextDose = &d
		}

		app := models.MedicationApplication{
			GoatID:          body.GoatID,
			MedicationName:  body.MedicationName,
			Dose:            body.Dose,
			Route:           strings.TrimSpace(body.Route),
			ApplicationDate: appDate,
			NextDoseDate:    nextDose,
			UserID:          userID,
			Notes:           body.Notes,
		}

		if err := database.DB.Create(&app).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la aplicación")
		}

		app.Goat = goat
		return c.Status(fiber.StatusCreated).JSON(toApplicationResponse(&app))
	}
}

// PUT /medications/:id
func UpdateApplicationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var app models.MedicationApplication
		if err := database.DB.Preload("Goat").First(&app, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La aplicación no existe")
		}

		var body UpdateApplicationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Dose != nil {
			dose := strings.TrimSpace(*body.Dose)
			if dose == "" {
				return fiber.NewError(fiber.StatusBadRequest, "La dosis no puede quedar vacía")
			}
			app.Dose = dose
		}
		if body.Route != nil {
			app.Route = strings.TrimSpace(*body.Route)
		}
		if body.NextDoseDate != nil {
			if *body.NextDoseDate == "" {
				app.NextDoseDate = nil
			} else {
				d, err := time.Parse("2006-01-02", *body.NextDoseDate)
				if err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "La próxima dosis debe tener formato 'YYYY-MM-DD'")
				}
				app.NextDoseDate = &d
			}
		}
		if body.Notes != nil {
			app.Notes = *body.Notes
		}

		if err := database.DB.Save(&app).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la aplicación")
		}

		return c.JSON(toApplicationResponse(&app))
	}
}

// DELETE /medications/:id
func DeleteApplicationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var app models.MedicationApplication
		if err := database.DB.First(&app, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La aplicación no existe")
		}

		if err := database.DB.Delete(&app).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la aplicación")
		}

		return c.JSON(fiber.Map{"message": "Aplicación eliminada exitosamente"})
	}
}
