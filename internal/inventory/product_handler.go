package inventory

import (
	"strings"

	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateProductRequest struct {
	Name         string                 `json:"name"`
	Category     models.ProductCategory `json:"category"`
	CurrentStock float64                `json:"current_stock"`
	MinimumStock float64                `json:"minimum_stock"`
	Unit         string                 `json:"unit"`
	Price        float64                `json:"price"`
	SupplierID   *uint                  `json:"supplier_id"`
}

type UpdateProductRequest struct {
	Name         *string                 `json:"name"`
	Category     *models.ProductCategory `json:"category"`
	MinimumStock *float64                `json:"minimum_stock"`
	Unit         *string                 `json:"unit"`
	Price        *float64                `json:"price"`
	SupplierID   *uint                   `json:"supplier_id"`
}

type ProductResponse struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Category     models.ProductCategory `json:"category"`
	CurrentStock float64                `json:"current_stock"`
	MinimumStock float64                `json:"minimum_stock"`
	Unit         string                 `json:"unit"`
	Price        float64                `json:"price"`
	SupplierID   *uint                  `json:"supplier_id"`
	SupplierName string                 `json:"supplier_name,omitempty"`
	LowStock     bool                   `json:"low_stock"`
}

// IsLowStock: el stock actual está en o por debajo del mínimo configurado.
func IsLowStock(currentStock, minimumStock float64) bool {
	return currentStock <= minimumStock
}

func validCategory(cat models.ProductCategory) bool {
	switch cat {
	case models.ProductAlimento, models.ProductMedicamento, models.ProductInsumo, models.ProductHerramienta:
		return true
	}
	return false
}

func toProductResponse(p *models.Product) ProductResponse {
	resp := ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		CurrentStock: p.CurrentStock,
		MinimumStock: p.MinimumStock,
		Unit:         p.Unit,
		Price:        p.Price,
		SupplierID:   p.SupplierID,
		LowStock:     IsLowStock(p.CurrentStock, p.MinimumStock),
	}
	if p.Supplier != nil {
		resp.SupplierName = p.Supplier.Name
	}
	return resp
}

// GET /products?category=ALIMENTO
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Preload("Supplier").Model(&models.Product{})

		if cat := c.Query("category"); cat != "" {
			q = q.Where("category = ?", cat)
		}

		var products []models.Product
		if err := q.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los productos")
		}

		resp := make([]ProductResponse, 0, len(products))
		for i := range products {
			resp = append(resp, toProductResponse(&products[i]))
		}
		return c.JSON(resp)
	}
}

// GET /products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var product models.Product
		if err := database.DB.Preload("Supplier").First(&product, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El producto no existe")
		}
		return c.JSON(toProductResponse(&product))
	}
}

// POST /products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Unit = strings.TrimSpace(body.Unit)

		if body.Name == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre y unidad son obligatorios")
		}
		if !validCategory(body.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "Categoría inválida (ALIMENTO|MEDICAMENTO|INSUMO|HERRAMIENTA)")
		}
		if body.MinimumStock < 0 || body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Stock mínimo y precio no pueden ser negativos")
		}

		if body.SupplierID != nil {
			var supplier models.Supplier
			if err := database.DB.First(&supplier, "id = ?", *body.SupplierID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "El proveedor no existe")
			}
		}

		product := models.Product{
			Name:         body.Name,
			Category:     body.Category,
			CurrentStock: body.CurrentStock,
			MinimumStock: body.MinimumStock,
			Unit:         body.Unit,
			Price:        body.Price,
			SupplierID:   body.SupplierID,
		}

		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el producto")
		}

		return c.Status(fiber.StatusCreated).JSON(toProductResponse(&product))
	}
}

// PUT /products/:id
// El stock actual no se edita por aquí: solo cambia vía salidas de inventario.
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var product models.Product
		if err := database.DB.First(&product, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El producto no existe")
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre no puede quedar vacío")
			}
			product.Name = name
		}
		if body.Category != nil {
			if !validCategory(*body.Category) {
				return fiber.NewError(fiber.StatusBadRequest, "Categoría inválida")
			}
			product.Category = *body.Category
		}
		if body.MinimumStock != nil {
			if *body.MinimumStock < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "El stock mínimo no puede ser negativo")
			}
			product.MinimumStock = *body.MinimumStock
		}
		if body.Unit != nil {
			unit := strings.TrimSpace(*body.Unit)
			if unit == "" {
				return fiber.NewError(fiber.StatusBadRequest, "La unidad no puede quedar vacía")
			}
			product.Unit = unit
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "El precio no puede ser negativo")
			}
			product.Price = *body.Price
		}
		if body.SupplierID != nil {
			var supplier models.Supplier
			if err := database.DB.First(&supplier, "id = ?", *body.SupplierID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "El proveedor no existe")
			}
			product.SupplierID = body.SupplierID
		}

		if err := database.DB.Save(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el producto")
		}

		return c.JSON(toProductResponse(&product))
	}
}

// DELETE /products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var product models.Product
		if err := database.DB.First(&product, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "El producto no existe")
		}

		var outputCount int64
		database.DB.Model(&models.InventoryOutput{}).Where("product_id = ?", product.ID).Count(&outputCount)
		if outputCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El producto tiene salidas registradas y no puede eliminarse")
		}

		if err := database.DB.Delete(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el producto")
		}

		return c.JSON(fiber.Map{"message": "Producto eliminado exitosamente"})
	}
}

// GET /products/low-stock
func LowStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Preload("Supplier").
			Where("current_stock <= minimum_stock").
			Order("name asc").
			Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron consultar los productos con stock bajo")
		}

		resp := make([]ProductResponse, 0, len(products))
		for i := range products {
			resp = append(resp, toProductResponse(&products[i]))
		}
		return c.JSON(resp)
	}
}
