package suppliers

import (
	"errors"
	"strings"

	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type CreateSupplierRequest struct {
	Name        string `json:"name"`
	NIT         string `json:"nit"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	CityID      *uint  `json:"city_id"`
}

type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	CityID      *uint   `json:"city_id"`
}

type SupplierResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	NIT         string `json:"nit"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	CityID      *uint  `json:"city_id"`
	CityName    string `json:"city_name,omitempty"`
}

func toSupplierResponse(s *models.Supplier) SupplierResponse {
	resp := SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		NIT:         s.NIT,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		CityID:      s.CityID,
	}
	if s.City != nil {
		resp.CityName = s.City.Name
	}
	return resp
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// GET /suppliers
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.Supplier
		if err := database.DB.Preload("City").Order("name asc").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los proveedores")
		}

		resp := make([]SupplierResponse, 0, len(list))
		for i := range list {
			resp = append(resp, toSupplierResponse(&list[i]))
		}
		return c.JSON(resp)
	}
}

// GET /suppliers/:id
func GetSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var supplier models.Supplier
		if err := database.DB.Preload("City").First(&supplier, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El proveedor no existe")
		}
		return c.JSON(toSupplierResponse(&supplier))
	}
}

// POST /suppliers
func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.NIT = strings.TrimSpace(body.NIT)

		if body.Name == "" || body.NIT == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre y NIT son obligatorios")
		}

		if body.CityID != nil {
			var city models.City
			if err := database.DB.First(&city, "id = ?", *body.CityID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La ciudad no existe")
			}
		}

		supplier := models.Supplier{
			Name:        body.Name,
			NIT:         body.NIT,
			ContactName: strings.TrimSpace(body.ContactName),
			Phone:       strings.TrimSpace(body.Phone),
			Email:       strings.TrimSpace(strings.ToLower(body.Email)),
			Address:     strings.TrimSpace(body.Address),
			CityID:      body.CityID,
		}

		if err := database.DB.Create(&supplier).Error; err != nil {
			if isDuplicateKey(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Ya existe un proveedor con ese NIT")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el proveedor")
		}

		return c.Status(fiber.StatusCreated).JSON(toSupplierResponse(&supplier))
	}
}

// PUT /suppliers/:id
// El NIT no se actualiza: identifica fiscalmente al proveedor.
func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var supplier models.Supplier
		if err := database.DB.First(&supplier, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El proveedor no existe")
		}

		var body UpdateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre no puede quedar vacío")
			}
			supplier.Name = name
		}
		if body.ContactName != nil {
			supplier.ContactName = strings.TrimSpace(*body.ContactName)
		}
		if body.Phone != nil {
			supplier.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.Email != nil {
			supplier.Email = strings.TrimSpace(strings.ToLower(*body.Email))
		}
		if body.Address != nil {
			supplier.Address = strings.TrimSpace(*body.Address)
		}
		if body.CityID != nil {
			var city models.City
			if err := database.DB.First(&city, "id = ?", *body.CityID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La ciudad no existe")
			}
			supplier.CityID = body.CityID
		}

		if err := database.DB.Save(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el proveedor")
		}

		return c.JSON(toSupplierResponse(&supplier))
	}
}

// DELETE /suppliers/:id
func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var supplier models.Supplier
		if err := database.DB.First(&supplier, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El proveedor no existe")
		}

		var productCount int64
		database.DB.Model(&models.Product{}).Where("supplier_id = ?", supplier.ID).Count(&productCount)
		if productCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El proveedor tiene productos asociados y no puede eliminarse")
		}

		if err := database.DB.Delete(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el proveedor")
		}

		return c.JSON(fiber.Map{"message": "Proveedor eliminado exitosamente"})
	}
}
