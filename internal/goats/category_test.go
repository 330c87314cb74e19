package goats

import (
	"testing"

	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForWeightFemale(t *testing.T) {
	cases := []struct {
		weight float64
		want   models.GoatCategory
	}{
		{0, models.CategoryCria},
		{10, models.CategoryCria},
		{17.99, models.CategoryCria},
		{18, models.CategoryLevante1}, // límite inclusivo hacia arriba
		{24.99, models.CategoryLevante1},
		{25, models.CategoryLevante2},
		{34.99, models.CategoryLevante2},
		{35, models.CategoryLechera},
		{60, models.CategoryLechera},
	}

	for _, tc := range cases {
		got := CategoryForWeight(models.SexHembra, tc.weight)
		assert.Equal(t, tc.want, got, "hembra con peso %.2f", tc.weight)
	}
}

func TestCategoryForWeightMale(t *testing.T) {
	cases := []struct {
		weight float64
		want   models.GoatCategory
	}{
		{5, models.CategoryCria},
		{18, models.CategoryLevante1},
		{24.99, models.CategoryLevante1},
		{25, models.CategoryLevante2},
		{34.99, models.CategoryLevante2},
		{35, models.CategoryReproductor},
		{80, models.CategoryReproductor},
	}

	for _, tc := range cases {
		got := CategoryForWeight(models.SexMacho, tc.weight)
		assert.Equal(t, tc.want, got, "macho con peso %.2f", tc.weight)
	}
}

// La clasificación es una función total: todo par (sexo, peso) produce
// exactamente una categoría válida.
func TestCategoryForWeightIsTotal(t *testing.T) {
	valid := map[models.GoatCategory]bool{
		models.CategoryCria:        true,
		models.CategoryLevante1:    true,
		models.CategoryLevante2:    true,
		models.CategoryLechera:     true,
		models.CategoryReproductor: true,
	}

	for _, sex := range []models.GoatSex{models.SexHembra, models.SexMacho} {
		for w := -5.0; w <= 100; w += 0.5 {
			got := CategoryForWeight(sex, w)
			assert.True(t, valid[got], "sexo %s peso %.1f produjo %q", sex, w, got)
		}
	}
}

func TestCategoryForWeightIdempotent(t *testing.T) {
	first := CategoryForWeight(models.SexHembra, 27.3)
	second := CategoryForWeight(models.SexHembra, 27.3)
	assert.Equal(t, first, second)
}
