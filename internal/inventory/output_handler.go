package inventory

import (
	"fmt"

	"github.com/fabiiianac15/capri-system-sub000/internal/audit"
	"github.com/fabiiianac15/capri-system-sub000/internal/auth"
	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateOutputRequest struct {
	ProductID uint    `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Notes     string  `json:"notes"`
}

type OutputResponse struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	UserID      uint    `json:"user_id"`
	UserName    string  `json:"user_name,omitempty"`
	Quantity    float64 `json:"quantity"`
	Notes       string  `json:"notes"`
	CreatedAt   string  `json:"created_at"`
}

// POST /products/outputs
// Crea la salida y descuenta el stock del producto en una sola
// transacción. No hay piso de stock: el saldo puede quedar negativo.
func CreateOutputHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOutputRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El producto es obligatorio")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "La cantidad debe ser mayor a 0")
		}

		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", body.ProductID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El producto no existe")
		}

		output := models.InventoryOutput{
			ProductID: body.ProductID,
			UserID:    userID,
			Quantity:  body.Quantity,
			Notes:     body.Notes,
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&output).Error; err != nil {
				return err
			}
			return tx.Model(&models.Product{}).
				Where("id = ?", body.ProductID).
				Update("current_stock", gorm.Expr("current_stock - ?", body.Quantity)).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la salida")
		}

		if uid, userName, uerr := audit.RequestUser(c); uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      uid,
				UserName:    userName,
				EntityType:  "inventory_output",
				EntityID:    output.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Salida de inventario: %s - %.2f %s", product.Name, output.Quantity, product.Unit),
				After:       output,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(OutputResponse{
			ID:          output.ID,
			ProductID:   output.ProductID,
			ProductName: product.Name,
			UserID:      output.UserID,
			Quantity:    output.Quantity,
			Notes:       output.Notes,
			CreatedAt:   output.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

// GET /products/:productId/outputs
func ListOutputsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Params("productId")

		var product models.Product
		if err := database.DB.First(&product, "id = ?", productID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El producto no existe")
		}

		var outputs []models.InventoryOutput
		if err := database.DB.Preload("User").
			Where("product_id = ?", productID).
			Order("created_at DESC").
			Find(&outputs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las salidas")
		}

		resp := make([]OutputResponse, 0, len(outputs))
		for _, o := range outputs {
			resp = append(resp, OutputResponse{
				ID:          o.ID,
				ProductID:   o.ProductID,
				ProductName: product.Name,
				UserID:      o.UserID,
				UserName:    o.User.Name,
				Quantity:    o.Quantity,
				Notes:       o.Notes,
				CreatedAt:   o.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(resp)
	}
}
