package repository

import (
	"carparts/internal/app/ds"
	"carparts/internal/app/role"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByUsername(username string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *Repository) AdminExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).
		Where("username = ? AND role = ?", username, role.Admin).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(user *ds.User) error {
	return r.db.Create(user).Error
}
