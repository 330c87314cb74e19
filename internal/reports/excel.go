package reports

import (
	"fmt"
	"time"

	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

func sendWorkbook(c *fiber.Ctx, f *excelize.File, name string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el archivo")
	}

	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

// GET /reports/goats
// Exporta el hato completo a un libro de Excel.
func GoatsReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var goatsList []models.Goat
		if err := database.DB.Order("codigo asc").Find(&goatsList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron consultar las cabras")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Cabras"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Código", "Raza", "Sexo", "Categoría", "Estado", "Peso (kg)", "Leche (L/día)", "Nacimiento"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, g := range goatsList {
			birth := ""
			if g.BirthDate != nil {
				birth = g.BirthDate.Format("2006-01-02")
			}
			values := []interface{}{g.Codigo, g.Breed, string(g.Sex), string(g.Category), string(g.Status), g.Weight, g.MilkProduction, birth}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		return sendWorkbook(c, f, "cabras")
	}
}

// GET /reports/sales?from=2026-01-01&to=2026-12-31
// Exporta el libro de ventas, con filtro opcional de fechas.
func SalesReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Preload("Goat").Model(&models.Sale{})

		if from := c.Query("from"); from != "" {
			if d, err := time.Parse("2006-01-02", from); err == nil {
				q = q.Where("sale_date >= ?", d)
			}
		}
		if to := c.Query("to"); to != "" {
			if d, err := time.Parse("2006-01-02", to); err == nil {
				q = q.Where("sale_date <= ?", d.Add(24*time.Hour-time.Second))
			}
		}

		var salesList []models.Sale
		if err := q.Order("sale_date asc").Find(&salesList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron consultar las ventas")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Ventas"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Factura", "Fecha", "Tipo", "Cliente", "Cantidad", "Precio unitario", "Total", "Pagado", "Estado de pago", "Método", "Cabra"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		var grandTotal float64
		for row, s := range salesList {
			goatCodigo := ""
			if s.Goat != nil {
				goatCodigo = s.Goat.Codigo
			}
			values := []interface{}{
				s.InvoiceCode,
				s.SaleDate.Format("2006-01-02"),
				string(s.ProductType),
				s.CustomerName,
				s.Quantity,
				s.UnitPrice,
				s.TotalPrice,
				s.AmountPaid,
				string(s.PaymentStatus),
				string(s.PaymentMethod),
				goatCodigo,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
			grandTotal += s.TotalPrice
		}

		totalRow := len(salesList) + 2
		f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), "Total")
		f.SetCellValue(sheet, fmt.Sprintf("G%d", totalRow), grandTotal)

		return sendWorkbook(c, f, "ventas")
	}
}
