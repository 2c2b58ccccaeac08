package handler

import (
	"carparts/internal/app/config"
	"carparts/internal/app/ds"
	"carparts/internal/app/dto"
	"carparts/internal/app/locale"
	"carparts/internal/app/mailer"
	"carparts/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CatalogRepository — доступ обработчиков к данным каталога.
// Реализуется repository.Repository.
type CatalogRepository interface {
	CategoryNameExists(name string, excludeID uint) (bool, error)
	CreateCategory(category *ds.Category) error
	GetCategories() ([]ds.Category, error)
	GetCategoryByID(id uint) (*ds.Category, error)
	UpdateCategory(category *ds.Category) error
	ReplaceCategoryParts(category *ds.Category, parts []ds.Part) error
	DeleteCategory(category *ds.Category) error
	GetPartsByIDs(ids []uint) ([]ds.Part, error)
	GetCategoriesByIDs(ids []uint) ([]ds.Category, error)

	PartExistsByTrtCode(trtCode string, excludeID uint) (bool, error)
	CreatePart(part *ds.Part) error
	GetParts() ([]ds.Part, error)
	GetPartByID(id uint) (*ds.Part, error)
	UpdatePart(part *ds.Part) error
	ReplacePartCategories(part *ds.Part, categories []ds.Category) error
	DeletePart(part *ds.Part) error
	GetAllOEM() ([]string, error)
	GetTrtCodesByOEM(oem string) ([]string, error)
	GetBrandsByTrtCode(trtCode string) ([]string, error)
	GetModelsByBrand(brand string) ([]string, error)
	SearchParts(oem, trtCode, brand, model string) ([]ds.Part, error)
	SearchPartsByName(name string) ([]ds.Part, error)
	CountParts() (int64, error)
}

// Handler содержит обработчики REST API каталога
type Handler struct {
	Repository  CatalogRepository
	Config      *config.Config
	Storage     *storage.Storage
	Mailer      *mailer.Mailer
	AuthHandler *AuthHandler
}

func NewHandler(r CatalogRepository, cfg *config.Config, st *storage.Storage, m *mailer.Mailer, authHandler *AuthHandler) *Handler {
	return &Handler{
		Repository:  r,
		Config:      cfg,
		Storage:     st,
		Mailer:      m,
		AuthHandler: authHandler,
	}
}

// Централизованная обработка ошибок: лог + локализованный ответ
func (h *Handler) errorResponse(c *gin.Context, statusCode int, messageID string, data map[string]any) {
	message := locale.Localize(c, messageID, data)
	logrus.Error(message)
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

// errorHandler — ответ с текстом ошибки валидации как есть
func (h *Handler) errorHandler(c *gin.Context, statusCode int, err error) {
	logrus.Error(err.Error())
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: err.Error(),
	})
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}
