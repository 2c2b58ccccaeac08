package handler

import (
	"carparts/internal/app/middleware"
	"carparts/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все REST API маршруты с авторизацией
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// ============ Аутентификация ============
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)

		// Добавление администратора — только для администраторов
		auth.POST("/add-admin", authMiddleware.WithAuthCheck(role.Admin), h.AuthHandler.AddAdmin)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.User, role.Admin), h.AuthHandler.Logout)
	}

	// ============ Категории ============
	categories := router.Group("/categories")
	{
		categories.GET("", h.GetCategories)
		categories.GET("/:id", h.GetCategory)
		categories.POST("", h.CreateCategory)
		categories.PATCH("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	// ============ Запчасти ============
	products := router.Group("/products")
	{
		products.GET("", h.SearchPartsByName) // ?value= подстрочный поиск
		products.GET("/all", h.GetParts)
		products.GET("/all/count", h.GetPartsCount)
		products.GET("/:id", h.GetPart)
		products.POST("", h.CreatePart)
		products.PUT("/:id", h.UpdatePart)
		products.DELETE("/:id", h.DeletePart)

		// Изображения
		products.POST("/upload", h.UploadImage)
		products.GET("/uploads/:imageName", h.GetUploadedImage)

		// Справочные выборки по кодам
		products.GET("/oem/all", h.GetAllOEM)
		products.GET("/oem/:oem", h.GetTrtCodesByOEM)
		products.GET("/trt/:trt", h.GetBrandsByTrtCode)
		products.GET("/brand/:brand", h.GetModelsByBrand)
		products.GET("/part/search", h.SearchParts)
		products.GET("/part/category/:categoryId", h.GetPartsByCategory)
		products.GET("/parts/categories", h.GetCategorySummaries)
	}

	// ============ Обратная связь ============
	router.POST("/contact", h.SendContactMessage)
	router.GET("/contact", h.GetContactInfo)

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}
