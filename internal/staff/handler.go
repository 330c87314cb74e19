package staff

import (
	"strings"
	"time"

	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateStaffRequest struct {
	Name     string  `json:"name"`
	Document string  `json:"document"`
	Position string  `json:"position"`
	Phone    string  `json:"phone"`
	Salary   float64 `json:"salary"`
	HireDate string  `json:"hire_date"` // "2006-01-02"
}

type UpdateStaffRequest struct {
	Name     *string  `json:"name"`
	Position *string  `json:"position"`
	Phone    *string  `json:"phone"`
	Salary   *float64 `json:"salary"`
	Active   *bool    `json:"active"`
}

type StaffResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Document string  `json:"document"`
	Position string  `json:"position"`
	Phone    string  `json:"phone"`
	Salary   float64 `json:"salary"`
	HireDate string  `json:"hire_date"`
	Active   bool    `json:"active"`
}

func toStaffResponse(s *models.Staff) StaffResponse {
	return StaffResponse{
		ID:       s.ID,
		Name:     s.Name,
		Document: s.Document,
		Position: s.Position,
		Phone:    s.Phone,
		Salary:   s.Salary,
		HireDate: s.HireDate.Format("2006-01-02"),
		Active:   s.Active,
	}
}

// GET /staff?active=true
func ListStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.Staff{})
		if active := c.Query("active"); active != "" {
			q = q.Where("active = ?", active == "true")
		}

		var list []models.Staff
		if err := q.Order("name asc").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar el personal")
		}

		resp := make([]StaffResponse, 0, len(list))
		for i := range list {
			resp = append(resp, toStaffResponse(&list[i]))
		}
		return c.JSON(resp)
	}
}

// GET /staff/:id
func GetStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var s models.Staff
		if err := database.DB.First(&s, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El empleado no existe")
		}
		return c.JSON(toStaffResponse(&s))
	}
}

// POST /staff
func CreateStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStaffRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Document = strings.TrimSpace(body.Document)
		body.Position = strings.TrimSpace(body.Position)

		if body.Name == "" || body.Document == "" || body.Position == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre, documento y cargo son obligatorios")
		}
		if body.Salary < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El salario no puede ser negativo")
		}

		hireDate := time.Now()
		if body.HireDate != "" {
			d, err := time.Parse("2006-01-02", body.HireDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La fecha debe tener formato 'YYYY-MM-DD'")
			}
			hireDate = d
		}

		var count int64
		database.DB.Model(&models.Staff{}).Where("document = ?", body.Document).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ya existe un empleado con ese documento")
		}

		s := models.Staff{
			Name:     body.Name,
			Document: body.Document,
			Position: body.Position,
			Phone:    strings.TrimSpace(body.Phone),
			Salary:   body.Salary,
			HireDate: hireDate,
			Active:   true,
		}

		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar el empleado")
		}

		return c.Status(fiber.StatusCreated).JSON(toStaffResponse(&s))
	}
}

// PUT /staff/:id
func UpdateStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var s models.Staff
		if err := database.DB.First(&s, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El empleado no existe")
		}

		var body UpdateStaffRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre no puede quedar vacío")
			}
			s.Name = name
		}
		if body.Position != nil {
			s.Position = strings.TrimSpace(*body.Position)
		}
		if body.Phone != nil {
			s.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.Salary != nil {
			if *body.Salary < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "El salario no puede ser negativo")
			}
			s.Salary = *body.Salary
		}
		if body.Active != nil {
			s.Active = *body.Active
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el empleado")
		}

		return c.JSON(toStaffResponse(&s))
	}
}

// DELETE /staff/:id
// Baja lógica: el empleado queda inactivo, el historial se conserva.
func DeleteStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var s models.Staff
		if err := database.DB.First(&s, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El empleado no existe")
		}

		s.Active = false
		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo dar de baja el empleado")
		}

		return c.JSON(fiber.Map{"message": "Empleado dado de baja exitosamente"})
	}
}
