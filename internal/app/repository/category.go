package repository

import (
	"carparts/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для категорий (ORM)

// CategoryNameExists проверяет коллизию названия по сырым переводам:
// сравнивает и английское, и русское название, с учётом регистра.
// excludeID исключает обновляемую запись из проверки.
func (r *Repository) CategoryNameExists(name string, excludeID uint) (bool, error) {
	query := r.db.Model(&ds.Category{}).
		Where("translations -> 'en' ->> 'name' = ? OR translations -> 'ru' ->> 'name' = ?", name, name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateCategory(category *ds.Category) error {
	return r.db.Create(category).Error
}

func (r *Repository) GetCategories() ([]ds.Category, error) {
	var categories []ds.Category
	err := r.db.Preload("Parts").Order("id ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Repository) GetCategoryByID(id uint) (*ds.Category, error) {
	var category ds.Category
	err := r.db.Preload("Parts").First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory сохраняет скалярные поля категории; связями с запчастями
// занимается ReplaceCategoryParts
func (r *Repository) UpdateCategory(category *ds.Category) error {
	return r.db.Omit("Parts").Save(category).Error
}

// ReplaceCategoryParts целиком заменяет список запчастей категории
func (r *Repository) ReplaceCategoryParts(category *ds.Category, parts []ds.Part) error {
	return r.db.Model(category).Association("Parts").Replace(parts)
}

// DeleteCategory отвязывает категорию от каждой связанной запчасти и удаляет
// саму запись. Каскад выполняется в одной транзакции, чтобы падение на
// середине не оставляло запчасти в полусостоянии.
func (r *Repository) DeleteCategory(category *ds.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range category.Parts {
			err := tx.Model(&category.Parts[i]).Association("Categories").Delete(category)
			if err != nil {
				return err
			}
		}
		return tx.Delete(category).Error
	})
}
