package middleware

import (
	"net/http"
	"strings"

	"carparts/internal/app/config"
	"carparts/internal/app/ds"
	"carparts/internal/app/dto"
	"carparts/internal/app/locale"
	"carparts/internal/app/redis"
	"carparts/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type AuthMiddleware struct {
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthMiddleware(redisClient *redis.Client, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		RedisClient: redisClient,
		Config:      cfg,
	}
}

// WithAuthCheck проверяет bearer-токен и то, что роль пользователя входит в
// список допустимых. Списки ролей объявляются статически при регистрации
// маршрута.
func (am *AuthMiddleware) WithAuthCheck(allowedRoles ...role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtStr, ok := ExtractBearerToken(c)
		if !ok {
			am.abort(c, http.StatusUnauthorized, "auth.token_missing")
			return
		}

		// Отозванные токены (logout) лежат в blacklist Redis
		if am.RedisClient != nil {
			if err := am.RedisClient.CheckJWTInBlacklist(c.Request.Context(), jwtStr); err == nil {
				am.abort(c, http.StatusUnauthorized, "auth.invalid_token")
				return
			}
		}

		token, err := am.parseJWTToken(jwtStr)
		if err != nil {
			am.abort(c, http.StatusUnauthorized, "auth.invalid_token")
			return
		}

		claims, ok := token.Claims.(*ds.JWTClaims)
		if !ok || !token.Valid {
			am.abort(c, http.StatusUnauthorized, "auth.invalid_token")
			return
		}

		if len(allowedRoles) > 0 && !hasRequiredRole(claims.Role, allowedRoles) {
			am.abort(c, http.StatusForbidden, "auth.forbidden")
			return
		}

		// Данные пользователя для обработчиков ниже по цепочке
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}

// ExtractBearerToken достаёт токен из заголовка Authorization
func ExtractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	return token, token != ""
}

func (am *AuthMiddleware) abort(c *gin.Context, statusCode int, messageID string) {
	c.AbortWithStatusJSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: locale.Localize(c, messageID, nil),
	})
}

func (am *AuthMiddleware) parseJWTToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(am.Config.JWT.Secret), nil
	})
}

func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, required := range requiredRoles {
		if userRole == required {
			return true
		}
	}
	return false
}
