package handler

import (
	"net/http"
	"time"

	"carparts/internal/app/config"
	"carparts/internal/app/ds"
	"carparts/internal/app/dto"
	"carparts/internal/app/locale"
	"carparts/internal/app/middleware"
	"carparts/internal/app/redis"
	"carparts/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository — доступ обработчиков авторизации к пользователям.
// Реализуется repository.Repository.
type UserRepository interface {
	GetUserByUsername(username string) (*ds.User, error)
	UserExistsByUsername(username string) (bool, error)
	AdminExistsByUsername(username string) (bool, error)
	CreateUser(user *ds.User) error
}

type AuthHandler struct {
	Repository  UserRepository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r UserRepository, redisClient *redis.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      cfg,
	}
}

// issueToken подписывает JWT с данными пользователя
func (h *AuthHandler) issueToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "carparts",
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	return token.SignedString([]byte(h.Config.JWT.Secret))
}

// Register регистрирует нового пользователя
// @Summary Регистрация пользователя
// @Description Создаёт пользователя и сразу возвращает JWT токен
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorHandler(c, http.StatusBadRequest, err)
		return
	}

	exists, err := h.Repository.UserExistsByUsername(request.Username)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	if exists {
		h.errorResponse(c, http.StatusConflict, "auth.user_exists", nil)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "auth.registration_failed", nil)
		return
	}

	userRole := request.Role
	if userRole == "" {
		userRole = role.User
	}
	if !userRole.Valid() {
		h.errorResponse(c, http.StatusBadRequest, "auth.invalid_role", nil)
		return
	}

	user := &ds.User{
		Username: request.Username,
		Password: string(hashedPassword),
		Email:    request.Email,
		Role:     userRole,
	}
	if err := h.Repository.CreateUser(user); err != nil {
		logrus.Error("error creating user: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "auth.registration_failed", nil)
		return
	}

	accessToken, err := h.issueToken(user)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": locale.Localize(c, "auth.registered", nil),
		"token":   accessToken,
		"user":    dto.NewUserResponse(user),
	})
}

// Login выполняет вход пользователя
// @Summary Вход в систему
// @Description Аутентификация по имени пользователя и паролю, возвращает JWT токен
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorHandler(c, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByUsername(request.Username)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "auth.invalid_credentials", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "auth.invalid_credentials", nil)
		return
	}

	accessToken, err := h.issueToken(user)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": locale.Localize(c, "auth.logged_in", nil),
		"token":   accessToken,
		"user":    dto.NewUserResponse(user),
	})
}

// AddAdmin добавляет администратора
// @Summary Добавление администратора
// @Description Создаёт пользователя с ролью admin; доступно только администраторам
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterRequest true "Данные администратора"
// @Success 201 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/add-admin [post]
func (h *AuthHandler) AddAdmin(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorHandler(c, http.StatusBadRequest, err)
		return
	}

	exists, err := h.Repository.AdminExistsByUsername(request.Username)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
		return
	}
	if exists {
		h.errorResponse(c, http.StatusConflict, "auth.admin_exists", nil)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "auth.registration_failed", nil)
		return
	}

	admin := &ds.User{
		Username: request.Username,
		Password: string(hashedPassword),
		Email:    request.Email,
		Role:     role.Admin,
	}
	if err := h.Repository.CreateUser(admin); err != nil {
		logrus.Error("error creating admin: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "auth.registration_failed", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": locale.Localize(c, "auth.admin_added", nil),
		"user":    dto.NewUserResponse(admin),
	})
}

// Logout отзывает текущий токен
// @Summary Выход из системы
// @Description Помещает токен в blacklist до истечения его срока жизни
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString, ok := middleware.ExtractBearerToken(c)
	if !ok {
		h.errorResponse(c, http.StatusUnauthorized, "auth.token_missing", nil)
		return
	}

	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Secret), nil
	})
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "auth.invalid_token", nil)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorResponse(c, http.StatusUnauthorized, "auth.invalid_token", nil)
		return
	}

	// Остаток срока жизни токена
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 && h.RedisClient != nil {
		err = h.RedisClient.WriteJWTToBlacklist(c.Request.Context(), tokenString, ttl)
		if err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "common.internal_error", nil)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": locale.Localize(c, "auth.logged_out", nil),
	})
}

// errorResponse — локализованный ответ об ошибке по идентификатору сообщения
func (h *AuthHandler) errorResponse(c *gin.Context, statusCode int, messageID string, data map[string]any) {
	message := locale.Localize(c, messageID, data)
	logrus.Error(message)
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

// errorHandler — ответ с текстом ошибки валидации как есть
func (h *AuthHandler) errorHandler(c *gin.Context, statusCode int, err error) {
	logrus.Error(err.Error())
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: err.Error(),
	})
}
