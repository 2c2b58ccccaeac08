package dto

import (
	"carparts/internal/app/ds"
	"carparts/internal/app/role"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Пользователи ============

type RegisterRequest struct {
	Username string    `json:"username" binding:"required,min=3,max=50"`
	Password string    `json:"password" binding:"required,min=6"`
	Email    string    `json:"email" binding:"required,email"`
	Role     role.Role `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID       uint      `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     role.Role `json:"role"`
}

func NewUserResponse(u *ds.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// ============ Категории ============

type CreateCategoryRequest struct {
	Translations ds.Translations `json:"translations" binding:"required"`
	ImageURL     *string         `json:"imageUrl"`
	Parts        []uint          `json:"parts"`
}

// UpdateCategoryRequest — частичное обновление. nil-поле означает
// "оставить как было"; явные проверки на nil вместо сравнения с нулевым
// значением, чтобы не терять осознанно выставленные falsy-значения.
type UpdateCategoryRequest struct {
	Translations ds.TranslationsPatch `json:"translations"`
	ImageURL     *string              `json:"imageUrl"`
	Parts        *[]uint              `json:"parts"`
}

// Apply накладывает патч на категорию (без связей — ими занимается репозиторий)
func (r UpdateCategoryRequest) Apply(c *ds.Category) {
	if r.Translations != nil {
		c.Translations = c.Translations.Merge(r.Translations)
	}
	if r.ImageURL != nil {
		c.ImageURL = r.ImageURL
	}
}

type CategorySummary struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Translations ds.Translations `json:"translations"`
	ImageURL     *string         `json:"imageUrl,omitempty"`
}

type CategoryResponse struct {
	CategorySummary
	Parts []PartSummary `json:"parts"`
}

func NewCategorySummary(c ds.Category, lang string) CategorySummary {
	resolved := c.Translations.Resolve(lang)
	return CategorySummary{
		ID:           c.ID,
		Name:         resolved.Name,
		Description:  resolved.Description,
		Translations: c.Translations,
		ImageURL:     c.ImageURL,
	}
}

func NewCategoryResponse(c ds.Category, lang string) CategoryResponse {
	parts := make([]PartSummary, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = NewPartSummary(p, lang)
	}
	return CategoryResponse{
		CategorySummary: NewCategorySummary(c, lang),
		Parts:           parts,
	}
}

// ============ Запчасти ============

type CreatePartRequest struct {
	SKU                 string          `json:"sku" binding:"required"`
	Translations        ds.Translations `json:"translations" binding:"required"`
	VisibilityInCatalog string          `json:"visibilityInCatalog"`
	TranslationGroup    *string         `json:"translationGroup"`
	InStock             *bool           `json:"inStock"`
	Images              []string        `json:"images"`
	CarName             *string         `json:"carName"`
	Model               []string        `json:"model"`
	OEM                 []string        `json:"oem"`
	Years               *string         `json:"years"`
	Price               float64         `json:"price" binding:"gte=0"`
	ImageURL            *string         `json:"imageUrl"`
	TrtCode             string          `json:"trtCode" binding:"required"`
	Brand               string          `json:"brand" binding:"required"`
	Categories          []uint          `json:"categories"`
}

// UpdatePartRequest — частичное обновление запчасти. Указатели нужны,
// чтобы inStock=false и price=0 доходили до базы, а не подменялись старыми
// значениями.
type UpdatePartRequest struct {
	SKU                 *string              `json:"sku"`
	Translations        ds.TranslationsPatch `json:"translations"`
	VisibilityInCatalog *string              `json:"visibilityInCatalog"`
	TranslationGroup    *string              `json:"translationGroup"`
	InStock             *bool                `json:"inStock"`
	Images              *[]string            `json:"images"`
	CarName             *string              `json:"carName"`
	Model               *[]string            `json:"model"`
	OEM                 *[]string            `json:"oem"`
	Years               *string              `json:"years"`
	Price               *float64             `json:"price" binding:"omitempty,gte=0"`
	ImageURL            *string              `json:"imageUrl"`
	TrtCode             *string              `json:"trtCode"`
	Brand               *string              `json:"brand"`
	Categories          *[]uint              `json:"categories"`
}

// Apply накладывает патч на запчасть (без связей)
func (r UpdatePartRequest) Apply(p *ds.Part) {
	if r.SKU != nil {
		p.SKU = *r.SKU
	}
	if r.Translations != nil {
		p.Translations = p.Translations.Merge(r.Translations)
	}
	if r.VisibilityInCatalog != nil {
		p.VisibilityInCatalog = *r.VisibilityInCatalog
	}
	if r.TranslationGroup != nil {
		p.TranslationGroup = r.TranslationGroup
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if r.Images != nil {
		p.Images = *r.Images
	}
	if r.CarName != nil {
		p.CarName = r.CarName
	}
	if r.Model != nil {
		p.Model = *r.Model
	}
	if r.OEM != nil {
		p.OEM = *r.OEM
	}
	if r.Years != nil {
		p.Years = r.Years
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.ImageURL != nil {
		p.ImageURL = r.ImageURL
	}
	if r.TrtCode != nil {
		p.TrtCode = *r.TrtCode
	}
	if r.Brand != nil {
		p.Brand = *r.Brand
	}
}

// PartSummary — запчасть без списка категорий (для вложенных ответов)
type PartSummary struct {
	ID                  uint            `json:"id"`
	SKU                 string          `json:"sku"`
	Name                string          `json:"name"`
	ShortDescription    string          `json:"shortDescription,omitempty"`
	Description         string          `json:"description,omitempty"`
	Translations        ds.Translations `json:"translations"`
	VisibilityInCatalog string          `json:"visibilityInCatalog"`
	TranslationGroup    *string         `json:"translationGroup,omitempty"`
	InStock             bool            `json:"inStock"`
	Images              []string        `json:"images"`
	CarName             *string         `json:"carName,omitempty"`
	Model               []string        `json:"model"`
	OEM                 []string        `json:"oem"`
	Years               *string         `json:"years,omitempty"`
	Price               float64         `json:"price"`
	ImageURL            *string         `json:"imageUrl,omitempty"`
	TrtCode             string          `json:"trtCode"`
	Brand               string          `json:"brand"`
}

type PartResponse struct {
	PartSummary
	Categories []CategorySummary `json:"categories"`
}

func NewPartSummary(p ds.Part, lang string) PartSummary {
	resolved := p.Translations.Resolve(lang)
	return PartSummary{
		ID:                  p.ID,
		SKU:                 p.SKU,
		Name:                resolved.Name,
		ShortDescription:    resolved.ShortDescription,
		Description:         resolved.Description,
		Translations:        p.Translations,
		VisibilityInCatalog: p.VisibilityInCatalog,
		TranslationGroup:    p.TranslationGroup,
		InStock:             p.InStock,
		Images:              p.Images,
		CarName:             p.CarName,
		Model:               p.Model,
		OEM:                 p.OEM,
		Years:               p.Years,
		Price:               p.Price,
		ImageURL:            p.ImageURL,
		TrtCode:             p.TrtCode,
		Brand:               p.Brand,
	}
}

func NewPartResponse(p ds.Part, lang string) PartResponse {
	categories := make([]CategorySummary, len(p.Categories))
	for i, c := range p.Categories {
		categories[i] = NewCategorySummary(c, lang)
	}
	return PartResponse{
		PartSummary: NewPartSummary(p, lang),
		Categories:  categories,
	}
}

type PartsByCategoryResponse struct {
	Category CategorySummary `json:"category"`
	Parts    []PartSummary   `json:"parts"`
}

type TotalCountResponse struct {
	Total int64 `json:"total"`
}

type UploadResponse struct {
	Message string `json:"message"`
	FileURL string `json:"fileUrl"`
}

// ============ Обратная связь ============

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Comment string `json:"comment"`
}

type ContactInfoResponse struct {
	Title                 string `json:"title"`
	Contacts              string `json:"contacts"`
	Description           string `json:"description"`
	PhoneLabel            string `json:"phone_label"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	Address               string `json:"address"`
	FormTitle             string `json:"form_title"`
	NameLabel             string `json:"name_label"`
	PhoneLabelForm        string `json:"phone_label_form"`
	CommentLabel          string `json:"comment_label"`
	SubmitButton          string `json:"submit_button"`
	DataProcessingConsent string `json:"data_processing_consent"`
}
