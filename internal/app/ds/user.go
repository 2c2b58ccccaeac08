package ds

import "carparts/internal/app/role"

// Таблица пользователей
type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password string    `gorm:"type:varchar(255);not null" json:"-"` // bcrypt-хеш
	Email    string    `gorm:"type:varchar(100)" json:"email"`
	Role     role.Role `gorm:"type:varchar(20);default:'user';not null" json:"role"`
}
