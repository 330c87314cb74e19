package goats

import "github.com/fabiiianac15/capri-system-sub000/internal/models"

// CategoryForWeight clasifica una cabra por sexo y peso. Los límites
// (18, 25, 35 kg) son inclusivos hacia la banda superior.
func CategoryForWeight(sex models.GoatSex, weight float64) models.GoatCategory {
	switch {
	case weight >= 35:
		if sex == models.SexHembra {
			return models.CategoryLechera
		}
		return models.CategoryReproductor
	case weight >= 25:
		return models.CategoryLevante2
	case weight >= 18:
		return models.CategoryLevante1
	default:
		return models.CategoryCria
	}
}
