package ds

import (
	"carparts/internal/app/role"

	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	jwt.StandardClaims
	UserID   uint      `json:"id"`
	Username string    `json:"username"`
	Role     role.Role `json:"role"`
}
