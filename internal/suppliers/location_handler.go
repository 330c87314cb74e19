package suppliers

import (
	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LocationResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GET /suppliers/locations/countries
func ListCountriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var countries []models.Country
		if err := database.DB.Order("name asc").Find(&countries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los países")
		}

		resp := make([]LocationResponse, 0, len(countries))
		for _, co := range countries {
			resp = append(resp, LocationResponse{ID: co.ID, Name: co.Name})
		}
		return c.JSON(resp)
	}
}

// GET /suppliers/locations/states/:countryId
func ListStatesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var states []models.State
		if err := database.DB.
			Where("country_id = ?", c.Params("countryId")).
			Order("name asc").
			Find(&states).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los departamentos")
		}

		resp := make([]LocationResponse, 0, len(states))
		for _, s := range states {
			resp = append(resp, LocationResponse{ID: s.ID, Name: s.Name})
		}
		return c.JSON(resp)
	}
}

// GET /suppliers/locations/cities/:stateId
func ListCitiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cities []models.City
		if err := database.DB.
			Where("state_id = ?", c.Params("stateId")).
			Order("name asc").
			Find(&cities).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las ciudades")
		}

		resp := make([]LocationResponse, 0, len(cities))
		for _, ci := range cities {
			resp = append(resp, LocationResponse{ID: ci.ID, Name: ci.Name})
		}
		return c.JSON(resp)
	}
}
