package handler

import (
	"errors"
	"net/http"
	"strconv"

	"carparts/internal/app/ds"
	"carparts/internal/app/dto"
	"carparts/internal/app/locale"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateCategory создаёт категорию
// @Summary Создание категории
// @Description Создаёт категорию с проверкой коллизии названия по en и ru переводам
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Данные категории"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var request dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorHandler(c, http.StatusBadRequest, err)
		return
	}

	// Английское название — обязательный минимум
	englishName := request.Translations[ds.DefaultLocale].Name
	if englishName == "" {
		h.errorResponse(c, http.StatusBadRequest, "part.english_name_required", nil)
		return
	}

	exists, err := h.Repository.CategoryNameExists(englishName, 0)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	if exists {
		h.errorResponse(c, http.StatusConflict, "category.exists", map[string]any{"Name": englishName})
		return
	}

	// Отсутствующие id запчастей молча пропускаются
	parts, err := h.Repository.GetPartsByIDs(request.Parts)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	category := &ds.Category{
		Translations: request.Translations,
		ImageURL:     request.ImageURL,
		Parts:        parts,
	}
	if err := h.Repository.CreateCategory(category); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCategoryResponse(*category, locale.Lang(c)))
}

// GetCategories возвращает все категории
// @Summary Список категорий
// @Description Возвращает все категории; пустой каталог считается ошибкой NotFound
// @Tags Categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.Repository.GetCategories()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	if len(categories) == 0 {
		h.errorResponse(c, http.StatusNotFound, "category.none_found", nil)
		return
	}

	lang := locale.Lang(c)
	response := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = dto.NewCategoryResponse(category, lang)
	}
	c.JSON(http.StatusOK, response)
}

// GetCategory возвращает одну категорию
// @Summary Категория по ID
// @Tags Categories
// @Produce json
// @Param id path int true "ID категории"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (h *Handler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "common.bad_request", nil)
		return
	}

	category, err := h.Repository.GetCategoryByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "category.not_found", map[string]any{"ID": id})
			return
		}
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryResponse(*category, locale.Lang(c)))
}

// UpdateCategory частично обновляет категорию
// @Summary Обновление категории
// @Description Накладывает патч на переводы и поля; не указанные поля сохраняют значения
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "ID категории"
// @Param request body dto.UpdateCategoryRequest true "Патч категории"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categories/{id} [patch]
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "common.bad_request", nil)
		return
	}

	var request dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorHandler(c, http.StatusBadRequest, err)
		return
	}

	category, err := h.Repository.GetCategoryByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "category.not_found", map[string]any{"ID": id})
			return
		}
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	// Коллизия проверяется по итоговому английскому названию,
	// исключая обновляемую запись
	if request.Translations != nil {
		mergedName := category.Translations.Merge(request.Translations)[ds.DefaultLocale].Name
		exists, err := h.Repository.CategoryNameExists(mergedName, category.ID)
		if err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
			return
		}
		if exists {
			h.errorResponse(c, http.StatusConflict, "category.exists", map[string]any{"Name": mergedName})
			return
		}
	}

	request.Apply(category)
	if err := h.Repository.UpdateCategory(category); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	// Список запчастей заменяется целиком, если он передан
	if request.Parts != nil {
		parts, err := h.Repository.GetPartsByIDs(*request.Parts)
		if err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
			return
		}
		if err := h.Repository.ReplaceCategoryParts(category, parts); err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
			return
		}
		category.Parts = parts
	}

	c.JSON(http.StatusOK, dto.NewCategoryResponse(*category, locale.Lang(c)))
}

// DeleteCategory удаляет категорию
// @Summary Удаление категории
// @Description Отвязывает категорию от всех запчастей и удаляет её одной транзакцией
// @Tags Categories
// @Produce json
// @Param id path int true "ID категории"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "common.bad_request", nil)
		return
	}

	category, err := h.Repository.GetCategoryByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "category.not_found", map[string]any{"ID": id})
			return
		}
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	if err := h.Repository.DeleteCategory(category); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: locale.Localize(c, "category.deleted", nil),
	})
}
