package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationsResolve(t *testing.T) {
	translations := Translations{
		"en": {Name: "Brake pads", ShortDescription: "Front axle", Description: "Ceramic brake pads"},
		"ru": {Name: "Тормозные колодки"},
	}

	t.Run("requested locale wins field by field", func(t *testing.T) {
		resolved := translations.Resolve("ru")
		assert.Equal(t, "Тормозные колодки", resolved.Name)
		// отсутствующие в ru поля берутся из en, без фолбэка всего объекта
		assert.Equal(t, "Front axle", resolved.ShortDescription)
		assert.Equal(t, "Ceramic brake pads", resolved.Description)
	})

	t.Run("default locale", func(t *testing.T) {
		resolved := translations.Resolve("en")
		assert.Equal(t, "Brake pads", resolved.Name)
	})

	t.Run("unknown locale falls back to english", func(t *testing.T) {
		resolved := translations.Resolve("de")
		assert.Equal(t, "Brake pads", resolved.Name)
		assert.Equal(t, "Front axle", resolved.ShortDescription)
	})

	t.Run("empty map", func(t *testing.T) {
		resolved := Translations{}.Resolve("ru")
		assert.Empty(t, resolved.Name)
	})
}

func TestTranslationsName(t *testing.T) {
	translations := Translations{
		"en": {Name: "Oil filter"},
		"ru": {Name: "Масляный фильтр"},
	}
	assert.Equal(t, "Масляный фильтр", translations.Name("ru"))
	assert.Equal(t, "Oil filter", translations.Name("uz"))
}

func TestTranslationsMerge(t *testing.T) {
	existing := Translations{
		"en": {Name: "Brakes", Description: "Braking system"},
		"ru": {Name: "Тормоза", Description: "Тормозная система"},
	}

	t.Run("only supplied fields change", func(t *testing.T) {
		newName := "Brake system"
		merged := existing.Merge(TranslationsPatch{
			"en": {Name: &newName},
		})

		assert.Equal(t, "Brake system", merged["en"].Name)
		assert.Equal(t, "Braking system", merged["en"].Description)
		// не тронутая локаль сохраняется полностью
		assert.Equal(t, "Тормоза", merged["ru"].Name)
	})

	t.Run("new locale is added", func(t *testing.T) {
		name := "Bremsen"
		merged := existing.Merge(TranslationsPatch{
			"de": {Name: &name},
		})
		assert.Equal(t, "Bremsen", merged["de"].Name)
	})

	t.Run("nil fields keep previous values", func(t *testing.T) {
		merged := existing.Merge(TranslationsPatch{
			"ru": {},
		})
		assert.Equal(t, existing["ru"], merged["ru"])
	})

	t.Run("original map is not mutated", func(t *testing.T) {
		name := "Changed"
		_ = existing.Merge(TranslationsPatch{"en": {Name: &name}})
		assert.Equal(t, "Brakes", existing["en"].Name)
	})
}
