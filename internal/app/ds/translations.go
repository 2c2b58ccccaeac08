package ds

// DefaultLocale — базовая локаль каталога. Английское название обязательно
// для каждой сущности, остальные локали опциональны.
const DefaultLocale = "en"

// Translation — перевод сущности каталога для одной локали
type Translation struct {
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription,omitempty"`
	Description      string `json:"description,omitempty"`
}

// Translations — карта переводов {локаль -> перевод}, хранится в jsonb
type Translations map[string]Translation

// Resolve возвращает перевод для запрошенной локали с пофилевым фолбэком
// на английский. Неизвестная локаль эквивалентна отсутствующей.
func (t Translations) Resolve(locale string) Translation {
	resolved := t[DefaultLocale]

	loc, ok := t[locale]
	if !ok {
		return resolved
	}
	if loc.Name != "" {
		resolved.Name = loc.Name
	}
	if loc.ShortDescription != "" {
		resolved.ShortDescription = loc.ShortDescription
	}
	if loc.Description != "" {
		resolved.Description = loc.Description
	}
	return resolved
}

// Name возвращает название для локали с фолбэком на английский
func (t Translations) Name(locale string) string {
	return t.Resolve(locale).Name
}

// TranslationPatch — частичное обновление перевода одной локали.
// nil-поле означает "не трогать", в отличие от пустой строки.
type TranslationPatch struct {
	Name             *string `json:"name"`
	ShortDescription *string `json:"shortDescription"`
	Description      *string `json:"description"`
}

// TranslationsPatch — частичное обновление карты переводов
type TranslationsPatch map[string]TranslationPatch

// Merge накладывает патч на существующие переводы и возвращает новую карту.
// Не указанные в патче локали и поля сохраняют прежние значения.
func (t Translations) Merge(patch TranslationsPatch) Translations {
	merged := make(Translations, len(t))
	for locale, tr := range t {
		merged[locale] = tr
	}

	for locale, p := range patch {
		tr := merged[locale]
		if p.Name != nil {
			tr.Name = *p.Name
		}
		if p.ShortDescription != nil {
			tr.ShortDescription = *p.ShortDescription
		}
		if p.Description != nil {
			tr.Description = *p.Description
		}
		merged[locale] = tr
	}
	return merged
}
