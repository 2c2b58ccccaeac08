package repository

import (
	"strings"

	"carparts/internal/app/ds"

	"gorm.io/gorm/clause"
)

// Методы для запчастей (ORM)

// PartExistsByTrtCode проверяет занятость TRT-кода.
// excludeID исключает обновляемую запись из проверки.
func (r *Repository) PartExistsByTrtCode(trtCode string, excludeID uint) (bool, error) {
	query := r.db.Model(&ds.Part{}).Where("trt_code = ?", trtCode)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreatePart(part *ds.Part) error {
	return r.db.Create(part).Error
}

func (r *Repository) GetParts() ([]ds.Part, error) {
	var parts []ds.Part
	err := r.db.Preload("Categories").Order("id ASC").Find(&parts).Error
	if err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *Repository) GetPartByID(id uint) (*ds.Part, error) {
	var part ds.Part
	err := r.db.Preload("Categories").First(&part, id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetPartsByIDs возвращает существующие запчасти по списку идентификаторов;
// отсутствующие идентификаторы молча пропускаются
func (r *Repository) GetPartsByIDs(ids []uint) ([]ds.Part, error) {
	if len(ids) == 0 {
		return []ds.Part{}, nil
	}
	var parts []ds.Part
	err := r.db.Where("id IN ?", ids).Find(&parts).Error
	if err != nil {
		return nil, err
	}
	return parts, nil
}

// GetCategoriesByIDs — то же для категорий
func (r *Repository) GetCategoriesByIDs(ids []uint) ([]ds.Category, error) {
	if len(ids) == 0 {
		return []ds.Category{}, nil
	}
	var categories []ds.Category
	err := r.db.Where("id IN ?", ids).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdatePart сохраняет скалярные поля запчасти; связями с категориями
// занимается ReplacePartCategories
func (r *Repository) UpdatePart(part *ds.Part) error {
	return r.db.Omit("Categories").Save(part).Error
}

// ReplacePartCategories целиком заменяет список категорий запчасти
func (r *Repository) ReplacePartCategories(part *ds.Part, categories []ds.Category) error {
	return r.db.Model(part).Association("Categories").Replace(categories)
}

// DeletePart удаляет запчасть вместе с записями связи в part_categories
func (r *Repository) DeletePart(part *ds.Part) error {
	return r.db.Select(clause.Associations).Delete(part).Error
}

// GetAllOEM возвращает различные непустые OEM-коды по всем запчастям
func (r *Repository) GetAllOEM() ([]string, error) {
	var values []string
	err := r.db.Raw("SELECT DISTINCT unnest(oem) FROM parts WHERE oem IS NOT NULL").Scan(&values).Error
	if err != nil {
		return nil, err
	}

	oems := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			oems = append(oems, v)
		}
	}
	return oems, nil
}

// GetTrtCodesByOEM возвращает различные TRT-коды запчастей с данным OEM-кодом
func (r *Repository) GetTrtCodesByOEM(oem string) ([]string, error) {
	var trtCodes []string
	err := r.db.Model(&ds.Part{}).
		Where("? = ANY(oem)", oem).
		Distinct().
		Pluck("trt_code", &trtCodes).Error
	if err != nil {
		return nil, err
	}
	return trtCodes, nil
}

// GetBrandsByTrtCode возвращает различные бренды запчастей с данным TRT-кодом
func (r *Repository) GetBrandsByTrtCode(trtCode string) ([]string, error) {
	var brands []string
	err := r.db.Model(&ds.Part{}).
		Where("trt_code = ?", trtCode).
		Distinct().
		Pluck("brand", &brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

// GetModelsByBrand возвращает различные непустые модели запчастей бренда
func (r *Repository) GetModelsByBrand(brand string) ([]string, error) {
	var values []string
	err := r.db.Raw("SELECT DISTINCT unnest(model) FROM parts WHERE brand = ? AND model IS NOT NULL", brand).
		Scan(&values).Error
	if err != nil {
		return nil, err
	}

	models := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			models = append(models, v)
		}
	}
	return models, nil
}

// SearchParts — точный поиск без учёта регистра по любой комбинации
// oem/trt/brand/model; непустые условия объединяются через AND
func (r *Repository) SearchParts(oem, trtCode, brand, model string) ([]ds.Part, error) {
	query := r.db.Model(&ds.Part{}).Preload("Categories")

	if oem != "" {
		query = query.Where("EXISTS (SELECT 1 FROM unnest(oem) AS o WHERE LOWER(o) = LOWER(?))", oem)
	}
	if trtCode != "" {
		query = query.Where("LOWER(trt_code) = LOWER(?)", trtCode)
	}
	if brand != "" {
		query = query.Where("LOWER(brand) = LOWER(?)", brand)
	}
	if model != "" {
		query = query.Where("EXISTS (SELECT 1 FROM unnest(model) AS m WHERE LOWER(m) = LOWER(?))", model)
	}

	var parts []ds.Part
	err := query.Find(&parts).Error
	if err != nil {
		return nil, err
	}
	return parts, nil
}

// SearchPartsByName — подстрочный поиск без учёта регистра по локализованным
// названиям (en и ru)
func (r *Repository) SearchPartsByName(name string) ([]ds.Part, error) {
	pattern := "%" + strings.ToLower(name) + "%"

	var parts []ds.Part
	err := r.db.Preload("Categories").
		Where("LOWER(translations -> 'en' ->> 'name') LIKE ? OR LOWER(translations -> 'ru' ->> 'name') LIKE ?",
			pattern, pattern).
		Find(&parts).Error
	if err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *Repository) CountParts() (int64, error) {
	var count int64
	err := r.db.Model(&ds.Part{}).Count(&count).Error
	return count, err
}
