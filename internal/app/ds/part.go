package ds

import "github.com/lib/pq"

// Таблица запчастей. TrtCode — внешний каталожный идентификатор,
// уникален на всю таблицу. Массивы строк хранятся как text[].
type Part struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	SKU                 string         `gorm:"type:varchar(100);not null" json:"sku"`
	Translations        Translations   `gorm:"type:jsonb;serializer:json;not null;default:'{}'" json:"translations"`
	VisibilityInCatalog string         `gorm:"type:varchar(50)" json:"visibilityInCatalog"`
	TranslationGroup    *string        `gorm:"type:varchar(100)" json:"translationGroup,omitempty"` // тег региональных вариантов
	InStock             bool           `gorm:"default:true;not null" json:"inStock"`
	Images              pq.StringArray `gorm:"type:text[]" json:"images"`
	CarName             *string        `gorm:"type:varchar(100)" json:"carName,omitempty"`
	Model               pq.StringArray `gorm:"type:text[]" json:"model"`
	OEM                 pq.StringArray `gorm:"type:text[];column:oem" json:"oem"`
	Years               *string        `gorm:"type:varchar(50)" json:"years,omitempty"`
	Price               float64        `gorm:"type:decimal(12,2);default:0;not null" json:"price"`
	ImageURL            *string        `gorm:"type:varchar(255)" json:"imageUrl,omitempty"`
	TrtCode             string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"trtCode"`
	Brand               string         `gorm:"type:varchar(100);not null" json:"brand"`
	Categories          []Category     `gorm:"many2many:part_categories" json:"categories"`
}
