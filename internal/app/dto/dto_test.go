package dto

import (
	"testing"

	"carparts/internal/app/ds"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestUpdatePartRequestApply(t *testing.T) {
	base := func() ds.Part {
		return ds.Part{
			SKU:          "SKU-1",
			Translations: ds.Translations{"en": {Name: "Brake pads"}},
			InStock:      true,
			Price:        149.90,
			TrtCode:      "TRT-100",
			Brand:        "TRT",
			Model:        []string{"Delica"},
			OEM:          []string{"MB123456"},
		}
	}

	t.Run("explicit false and zero are persisted", func(t *testing.T) {
		part := base()
		patch := UpdatePartRequest{
			InStock: boolPtr(false),
			Price:   floatPtr(0),
		}
		patch.Apply(&part)

		// защита от truthy-мерджа: false и 0 не подменяются старыми значениями
		assert.False(t, part.InStock)
		assert.Zero(t, part.Price)
	})

	t.Run("nil fields keep previous values", func(t *testing.T) {
		part := base()
		UpdatePartRequest{}.Apply(&part)

		assert.True(t, part.InStock)
		assert.Equal(t, 149.90, part.Price)
		assert.Equal(t, "TRT-100", part.TrtCode)
		assert.Equal(t, []string{"MB123456"}, []string(part.OEM))
	})

	t.Run("supplied fields overwrite", func(t *testing.T) {
		part := base()
		oem := []string{"MB654321", "MB000001"}
		patch := UpdatePartRequest{
			SKU:     strPtr("SKU-2"),
			Brand:   strPtr("OEM-brand"),
			OEM:     &oem,
			TrtCode: strPtr("TRT-200"),
		}
		patch.Apply(&part)

		assert.Equal(t, "SKU-2", part.SKU)
		assert.Equal(t, "OEM-brand", part.Brand)
		assert.Equal(t, "TRT-200", part.TrtCode)
		assert.Equal(t, oem, []string(part.OEM))
	})

	t.Run("translations merge is partial", func(t *testing.T) {
		part := base()
		patch := UpdatePartRequest{
			Translations: ds.TranslationsPatch{
				"ru": {Name: strPtr("Тормозные колодки")},
			},
		}
		patch.Apply(&part)

		assert.Equal(t, "Brake pads", part.Translations["en"].Name)
		assert.Equal(t, "Тормозные колодки", part.Translations["ru"].Name)
	})
}

func TestUpdateCategoryRequestApply(t *testing.T) {
	category := ds.Category{
		Translations: ds.Translations{
			"en": {Name: "Brakes", Description: "Braking system"},
		},
	}

	patch := UpdateCategoryRequest{
		Translations: ds.TranslationsPatch{
			"en": {Name: strPtr("Brake system")},
		},
		ImageURL: strPtr("https://cdn.example.com/brakes.png"),
	}
	patch.Apply(&category)

	assert.Equal(t, "Brake system", category.Translations["en"].Name)
	assert.Equal(t, "Braking system", category.Translations["en"].Description)
	assert.Equal(t, "https://cdn.example.com/brakes.png", *category.ImageURL)
}

func TestNewPartResponseLocalizes(t *testing.T) {
	part := ds.Part{
		ID:      7,
		TrtCode: "TRT-7",
		Translations: ds.Translations{
			"en": {Name: "Oil filter", Description: "Engine oil filter"},
			"ru": {Name: "Масляный фильтр"},
		},
		Categories: []ds.Category{
			{ID: 1, Translations: ds.Translations{"en": {Name: "Filters"}}},
		},
	}

	response := NewPartResponse(part, "ru")

	assert.Equal(t, "Масляный фильтр", response.Name)
	// описание падает обратно на английский
	assert.Equal(t, "Engine oil filter", response.Description)
	assert.Len(t, response.Categories, 1)
	assert.Equal(t, "Filters", response.Categories[0].Name)
	// сырые переводы остаются в ответе
	assert.Equal(t, part.Translations, response.Translations)
}
