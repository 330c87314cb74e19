package sales

import (
	"fmt"
	"strings"
	"time"

	"github.com/fabiiianac15/capri-system-sub000/internal/audit"
	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateSaleRequest struct {
	ProductType   models.SaleProductType `json:"product_type"`
	CustomerName  string                 `json:"customer_name"`
	Quantity      float64                `json:"quantity"`
	UnitPrice     float64                `json:"unit_price"`
	TotalPrice    float64                `json:"total_price"`
	PaymentMethod models.PaymentMethod   `json:"payment_method"`
	AmountPaid    float64                `json:"amount_paid"`
	GoatID        *uint                  `json:"goat_id"`
	SaleDate      *string                `json:"sale_date"` // "2006-01-02", por defecto hoy
}

type UpdateSaleRequest struct {
	CustomerName  *string               `json:"customer_name"`
	PaymentMethod *models.PaymentMethod `json:"payment_method"`
	AmountPaid    *float64              `json:"amount_paid"`
	TotalPrice    *float64              `json:"total_price"`
}

type SaleResponse struct {
	ID            uint                   `json:"id"`
	InvoiceCode   string                 `json:"invoice_code"`
	ProductType   models.SaleProductType `json:"product_type"`
	CustomerName  string                 `json:"customer_name"`
	Quantity      float64                `json:"quantity"`
	UnitPrice     float64                `json:"unit_price"`
	TotalPrice    float64                `json:"total_price"`
	PaymentMethod models.PaymentMethod   `json:"payment_method"`
	PaymentStatus models.PaymentStatus   `json:"payment_status"`
	AmountPaid    float64                `json:"amount_paid"`
	GoatID        *uint                  `json:"goat_id"`
	GoatCodigo    string                 `json:"goat_codigo,omitempty"`
	SaleDate      string                 `json:"sale_date"`
	CreatedAt     string                 `json:"created_at"`
}

func toSaleResponse(s *models.Sale) SaleResponse {
	resp := SaleResponse{
		ID:            s.ID,
		InvoiceCode:   s.InvoiceCode,
		ProductType:   s.ProductType,
		CustomerName:  s.CustomerName,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalPrice:    s.TotalPrice,
		PaymentMethod: s.PaymentMethod,
		PaymentStatus: s.PaymentStatus,
		AmountPaid:    s.AmountPaid,
		GoatID:        s.GoatID,
		SaleDate:      s.SaleDate.Format("2006-01-02"),
		CreatedAt:     s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if s.Goat != nil {
		resp.GoatCodigo = s.Goat.Codigo
	}
	return resp
}

func validProductType(t models.SaleProductType) bool {
	switch t {
	case models.SaleCarne, models.SaleLeche, models.SaleCabraViva, models.SaleProcesado:
		return true
	}
	return false
}

func validPaymentMethod(m models.PaymentMethod) bool {
	switch m {
	case models.PaymentEfectivo, models.PaymentTransferencia, models.PaymentCredito:
		return true
	}
	return false
}

// GET /sales?payment_status=PENDIENTE&product_type=CABRA_VIVA
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Preload("Goat").Model(&models.Sale{})

		if ps := c.Query("payment_status"); ps != "" {
			q = q.Where("payment_status = ?", ps)
		}
		if pt := c.Query("product_type"); pt != "" {
			q = q.Where("product_type = ?", pt)
		}

		var salesList []models.Sale
		if err := q.Order("sale_date DESC, created_at DESC").Find(&salesList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las ventas")
		}

		resp := make([]SaleResponse, 0, len(salesList))
		for i := range salesList {
			resp = append(resp, toSaleResponse(&salesList[i]))
		}
		return c.JSON(resp)
	}
}

// GET /sales/:id
func GetSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sale models.Sale
		if err := database.DB.Preload("Goat").First(&sale, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La venta no existe")
		}
		return c.JSON(toSaleResponse(&sale))
	}
}

// POST /sales
// Para CABRA_VIVA la cabra referenciada debe existir y estar ACTIVA; la
// venta la marca VENDIDA. Ambas escrituras van en la misma transacción.
func CreateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.CustomerName = strings.TrimSpace(body.CustomerName)

		if !validProductType(body.ProductType) {
			return fiber.NewError(fiber.StatusBadRequest, "Tipo de producto inválido (CARNE|LECHE|CABRA_VIVA|PROCESADO)")
		}
		if !validPaymentMethod(body.PaymentMethod) {
			return fiber.NewError(fiber.StatusBadRequest, "Método de pago inválido (EFECTIVO|TRANSFERENCIA|CREDITO)")
		}
		if body.CustomerName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El nombre del cliente es obligatorio")
		}
		if body.Quantity <= 0 || body.TotalPrice <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cantidad y precio total deben ser mayores a 0")
		}
		if body.AmountPaid < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El monto pagado no puede ser negativo")
		}
		if body.ProductType == models.SaleCabraViva && body.GoatID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Para venta de cabra viva debe indicar la cabra")
		}

		saleDate := time.Now()
		if body.SaleDate != nil && *body.SaleDate != "" {
			d, err := time.Parse("2006-01-02", *body.SaleDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La fecha debe tener formato 'YYYY-MM-DD'")
			}
			saleDate = d
		}

		sale := models.Sale{
			InvoiceCode:   fmt.Sprintf("VTA-%s", strings.ToUpper(uuid.NewString()[:8])),
			ProductType:   body.ProductType,
			CustomerName:  body.CustomerName,
			Quantity:      body.Quantity,
			UnitPrice:     body.UnitPrice,
			TotalPrice:    body.TotalPrice,
			PaymentMethod: body.PaymentMethod,
			PaymentStatus: DerivePaymentStatus(body.AmountPaid, body.TotalPrice),
			AmountPaid:    body.AmountPaid,
			GoatID:        body.GoatID,
			SaleDate:      saleDate,
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if sale.ProductType == models.SaleCabraViva {
				var goat models.Goat
				if err := tx.First(&goat, "id = ?", *sale.GoatID).Error; err != nil {
					return fiber.NewError(fiber.StatusNotFound, "La cabra no existe")
				}
				if goat.Status != models.GoatActiva {
					return fiber.NewError(fiber.StatusBadRequest, "La cabra no está activa")
				}
				if err := tx.Model(&goat).Update("status", models.GoatVendida).Error; err != nil {
					return err
				}
			}
			return tx.Create(&sale).Error
		})
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la venta")
		}

		if userID, userName, uerr := audit.RequestUser(c); uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "sale",
				EntityID:    sale.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Venta %s: %s x%.2f ($%.2f)", sale.InvoiceCode, sale.ProductType, sale.Quantity, sale.TotalPrice),
				After:       sale,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(toSaleResponse(&sale))
	}
}

// PUT /sales/:id
// Si cambian el monto pagado o el total se recalcula el estado de pago.
func UpdateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sale models.Sale
		if err := database.DB.First(&sale, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La venta no existe")
		}

		var body UpdateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.CustomerName != nil {
			name := strings.TrimSpace(*body.CustomerName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre del cliente no puede quedar vacío")
			}
			sale.CustomerName = name
		}
		if body.PaymentMethod != nil {
			if !validPaymentMethod(*body.PaymentMethod) {
				return fiber.NewError(fiber.StatusBadRequest, "Método de pago inválido")
			}
			sale.PaymentMethod = *body.PaymentMethod
		}

		recompute := false
		if body.TotalPrice != nil {
			if *body.TotalPrice <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "El precio total debe ser mayor a 0")
			}
			sale.TotalPrice = *body.TotalPrice
			recompute = true
		}
		if body.AmountPaid != nil {
			if *body.AmountPaid < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "El monto pagado no puede ser negativo")
			}
			sale.AmountPaid = *body.AmountPaid
			recompute = true
		}
		if recompute {
			sale.PaymentStatus = DerivePaymentStatus(sale.AmountPaid, sale.TotalPrice)
		}

		if err := database.DB.Save(&sale).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la venta")
		}

		return c.JSON(toSaleResponse(&sale))
	}
}

// DELETE /sales/:id
// Si la venta fue de cabra viva, la cabra vuelve a ACTIVA sin importar
// su estado actual (comportamiento heredado del sistema original).
func DeleteSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sale models.Sale
		if err := database.DB.First(&sale, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "La venta no existe")
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if sale.ProductType == models.SaleCabraViva && sale.GoatID != nil {
				if err := tx.Model(&models.Goat{}).
					Where("id = ?", *sale.GoatID).
					Update("status", models.GoatActiva).Error; err != nil {
					return err
				}
			}
			return tx.Delete(&sale).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la venta")
		}

		if userID, userName, uerr := audit.RequestUser(c); uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "sale",
				EntityID:    sale.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Venta %s eliminada", sale.InvoiceCode),
				Before:      sale,
			})
		}

		return c.JSON(fiber.Map{"message": "Venta eliminada exitosamente"})
	}
}
