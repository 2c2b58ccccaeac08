package ds

// Таблица категорий каталога. Переводы лежат в jsonb,
// связь с запчастями — многие-ко-многим через part_categories.
type Category struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Translations Translations `gorm:"type:jsonb;serializer:json;not null;default:'{}'" json:"translations"`
	ImageURL     *string      `gorm:"type:varchar(255)" json:"imageUrl,omitempty"`
	Parts        []Part       `gorm:"many2many:part_categories" json:"parts,omitempty"`
}
