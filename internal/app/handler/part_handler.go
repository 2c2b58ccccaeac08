package handler

import (
	"errors"
	"net/http"
	"strconv"

	"carparts/internal/app/ds"
	"carparts/internal/app/dto"
	"carparts/internal/app/locale"
	"carparts/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Имя поля формы с файлом изображения
const uploadFieldName = "image"

// CreatePart создаёт запчасть
// @Summary Создание запчасти
// @Description Создаёт запчасть после проверки уникальности TRT-кода и существования категорий
// @Tags Parts
// @Accept json
// @Produce json
// @Param request body dto.CreatePartRequest true "Данные запчасти"
// @Success 201 {object} dto.PartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /products [post]
func (h *Handler) CreatePart(c *gin.Context) {
	var request dto.CreatePartRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorHandler(c, http.StatusBadRequest, err)
		return
	}

	if request.Translations[ds.DefaultLocale].Name == "" {
		h.errorResponse(c, http.StatusBadRequest, "part.english_name_required", nil)
		return
	}

	exists, err := h.Repository.PartExistsByTrtCode(request.TrtCode, 0)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	if exists {
		h.errorResponse(c, http.StatusConflict, "part.exists", map[string]any{"TrtCode": request.TrtCode})
		return
	}

	// Категории запрошены, но ни одна не нашлась — это ошибка,
	// в отличие от пустого списка в запросе
	categories, err := h.Repository.GetCategoriesByIDs(request.Categories)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	if len(request.Categories) > 0 && len(categories) == 0 {
		h.errorResponse(c, http.StatusNotFound, "part.category_not_found", nil)
		return
	}

	inStock := true
	if request.InStock != nil {
		inStock = *request.InStock
	}

	part := &ds.Part{
		SKU:                 request.SKU,
		Translations:        request.Translations,
		VisibilityInCatalog: request.VisibilityInCatalog,
		TranslationGroup:    request.TranslationGroup,
		InStock:             inStock,
		Images:              request.Images,
		CarName:             request.CarName,
		Model:               request.Model,
		OEM:                 request.OEM,
		Years:               request.Years,
		Price:               request.Price,
		ImageURL:            request.ImageURL,
		TrtCode:             request.TrtCode,
		Brand:               request.Brand,
		Categories:          categories,
	}
	if err := h.Repository.CreatePart(part); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPartResponse(*part, locale.Lang(c)))
}

// GetParts возвращает все запчасти
// @Summary Список запчастей
// @Description Возвращает все запчасти с категориями; пустой каталог считается ошибкой NotFound
// @Tags Parts
// @Produce json
// @Success 200 {array} dto.PartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/all [get]
func (h *Handler) GetParts(c *gin.Context) {
	parts, err := h.Repository.GetParts()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	if len(parts) == 0 {
		h.errorResponse(c, http.StatusNotFound, "part.none_found", nil)
		return
	}

	c.JSON(http.StatusOK, h.partListResponse(c, parts))
}

// GetPart возвращает одну запчасть
// @Summary Запчасть по ID
// @Tags Parts
// @Produce json
// @Param id path int true "ID запчасти"
// @Success 200 {object} dto.PartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (h *Handler) GetPart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "common.bad_request", nil)
		return
	}

	part, err := h.Repository.GetPartByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "part.not_found", map[string]any{"ID": id})
			return
		}
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewPartResponse(*part, locale.Lang(c)))
}

// UpdatePart частично обновляет запчасть
// @Summary Обновление запчасти
// @Description Накладывает патч; отсутствующие поля сохраняют значения, inStock=false и price=0 не теряются
// @Tags Parts
// @Accept json
// @Produce json
// @Param id path int true "ID запчасти"
// @Param request body dto.UpdatePartRequest true "Патч запчасти"
// @Success 200 {object} dto.PartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (h *Handler) UpdatePart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "common.bad_request", nil)
		return
	}

	var request dto.UpdatePartRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorHandler(c, http.StatusBadRequest, err)
		return
	}

	part, err := h.Repository.GetPartByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "part.not_found", map[string]any{"ID": id})
			return
		}
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	// Новый TRT-код не должен быть занят другой запчастью
	if request.TrtCode != nil && *request.TrtCode != part.TrtCode {
		taken, err := h.Repository.PartExistsByTrtCode(*request.TrtCode, part.ID)
		if err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
			return
		}
		if taken {
			h.errorResponse(c, http.StatusConflict, "part.exists", map[string]any{"TrtCode": *request.TrtCode})
			return
		}
	}

	request.Apply(part)
	if err := h.Repository.UpdatePart(part); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	// Список категорий заменяется целиком, если он передан
	if request.Categories != nil {
		categories, err := h.Repository.GetCategoriesByIDs(*request.Categories)
		if err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
			return
		}
		if err := h.Repository.ReplacePartCategories(part, categories); err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
			return
		}
		part.Categories = categories
	}

	c.JSON(http.StatusOK, dto.NewPartResponse(*part, locale.Lang(c)))
}

// DeletePart удаляет запчасть
// @Summary Удаление запчасти
// @Tags Parts
// @Produce json
// @Param id path int true "ID запчасти"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (h *Handler) DeletePart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "common.bad_request", nil)
		return
	}

	part, err := h.Repository.GetPartByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "part.not_found", map[string]any{"ID": id})
			return
		}
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	if err := h.Repository.DeletePart(part); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: locale.Localize(c, "part.deleted", nil),
	})
}

// GetAllOEM возвращает все различные OEM-коды
// @Summary Все OEM-коды
// @Tags Parts
// @Produce json
// @Success 200 {array} string
// @Router /products/oem/all [get]
func (h *Handler) GetAllOEM(c *gin.Context) {
	oems, err := h.Repository.GetAllOEM()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	c.JSON(http.StatusOK, oems)
}

// GetTrtCodesByOEM возвращает TRT-коды запчастей с данным OEM-кодом
// @Summary TRT-коды по OEM-коду
// @Tags Parts
// @Produce json
// @Param oem path string true "OEM-код"
// @Success 200 {array} string
// @Router /products/oem/{oem} [get]
func (h *Handler) GetTrtCodesByOEM(c *gin.Context) {
	trtCodes, err := h.Repository.GetTrtCodesByOEM(c.Param("oem"))
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	c.JSON(http.StatusOK, trtCodes)
}

// GetBrandsByTrtCode возвращает бренды запчастей с данным TRT-кодом
// @Summary Бренды по TRT-коду
// @Tags Parts
// @Produce json
// @Param trt path string true "TRT-код"
// @Success 200 {array} string
// @Router /products/trt/{trt} [get]
func (h *Handler) GetBrandsByTrtCode(c *gin.Context) {
	brands, err := h.Repository.GetBrandsByTrtCode(c.Param("trt"))
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	c.JSON(http.StatusOK, brands)
}

// GetModelsByBrand возвращает модели запчастей бренда
// @Summary Модели по бренду
// @Tags Parts
// @Produce json
// @Param brand path string true "Бренд"
// @Success 200 {array} string
// @Router /products/brand/{brand} [get]
func (h *Handler) GetModelsByBrand(c *gin.Context) {
	models, err := h.Repository.GetModelsByBrand(c.Param("brand"))
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	c.JSON(http.StatusOK, models)
}

// SearchParts — точный поиск по кодам и бренду
// @Summary Поиск запчастей по кодам
// @Description Точный поиск без учёта регистра по комбинации oem/trt/brand/model (AND)
// @Tags Parts
// @Produce json
// @Param oem query string false "OEM-код"
// @Param trt query string false "TRT-код"
// @Param brand query string false "Бренд"
// @Param model query string false "Модель"
// @Success 200 {array} dto.PartResponse
// @Router /products/part/search [get]
func (h *Handler) SearchParts(c *gin.Context) {
	parts, err := h.Repository.SearchParts(
		c.Query("oem"),
		c.Query("trt"),
		c.Query("brand"),
		c.Query("model"),
	)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	c.JSON(http.StatusOK, h.partListResponse(c, parts))
}

// GetPartsByCategory возвращает запчасти категории
// @Summary Запчасти по категории
// @Tags Parts
// @Produce json
// @Param categoryId path int true "ID категории"
// @Success 200 {object} dto.PartsByCategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/part/category/{categoryId} [get]
func (h *Handler) GetPartsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "common.bad_request", nil)
		return
	}

	category, err := h.Repository.GetCategoryByID(uint(categoryID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "part.category_not_found", nil)
			return
		}
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	lang := locale.Lang(c)
	parts := make([]dto.PartSummary, len(category.Parts))
	for i, part := range category.Parts {
		parts[i] = dto.NewPartSummary(part, lang)
	}

	c.JSON(http.StatusOK, dto.PartsByCategoryResponse{
		Category: dto.NewCategorySummary(*category, lang),
		Parts:    parts,
	})
}

// GetCategorySummaries возвращает категории без запчастей
// @Summary Краткий список категорий
// @Tags Parts
// @Produce json
// @Success 200 {array} dto.CategorySummary
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/parts/categories [get]
func (h *Handler) GetCategorySummaries(c *gin.Context) {
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
	response := make([]dto.CategorySummary, len(categories))
	for i, category := range categories {
		response[i] = dto.NewCategorySummary(category, lang)
	}
	c.JSON(http.StatusOK, response)
}

// SearchPartsByName — подстрочный поиск по названию
// @Summary Поиск запчастей по названию
// @Description Подстрочный поиск без учёта регистра по en и ru названиям
// @Tags Parts
// @Produce json
// @Param value query string true "Подстрока названия"
// @Success 200 {array} dto.PartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products [get]
func (h *Handler) SearchPartsByName(c *gin.Context) {
	name := c.Query("value")

	parts, err := h.Repository.SearchPartsByName(name)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	if len(parts) == 0 {
		h.errorResponse(c, http.StatusNotFound, "part.name_not_found", map[string]any{"Name": name})
		return
	}

	c.JSON(http.StatusOK, h.partListResponse(c, parts))
}

// GetPartsCount возвращает общее количество запчастей
// @Summary Количество запчастей
// @Tags Parts
// @Produce json
// @Success 200 {object} dto.TotalCountResponse
// @Router /products/all/count [get]
func (h *Handler) GetPartsCount(c *gin.Context) {
	count, err := h.Repository.CountParts()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	c.JSON(http.StatusOK, dto.TotalCountResponse{Total: count})
}

// UploadImage принимает изображение и сохраняет его на диск
// @Summary Загрузка изображения
// @Tags Parts
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Файл изображения"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /products/upload [post]
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile(uploadFieldName)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "upload.no_file", nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "upload.failed", nil)
		return
	}
	defer src.Close()

	filename, err := h.Storage.Save(uploadFieldName, file.Filename, src)
	if err != nil {
		logrus.Error("error storing upload: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "upload.failed", nil)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		Message: locale.Localize(c, "upload.success", nil),
		FileURL: h.Storage.FileURL(filename),
	})
}

// GetUploadedImage отдаёт ранее загруженное изображение
// @Summary Получение изображения
// @Tags Parts
// @Produce octet-stream
// @Param imageName path string true "Имя файла"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/uploads/{imageName} [get]
func (h *Handler) GetUploadedImage(c *gin.Context) {
	path, err := h.Storage.Resolve(c.Param("imageName"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.errorResponse(c, http.StatusNotFound, "upload.not_found", nil)
			return
		}
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	c.File(path)
}

// partListResponse строит локализованный список запчастей
func (h *Handler) partListResponse(c *gin.Context, parts []ds.Part) []dto.PartResponse {
	lang := locale.Lang(c)
	response := make([]dto.PartResponse, len(parts))
	for i, part := range parts {
		response[i] = dto.NewPartResponse(part, lang)
	}
	return response
}
