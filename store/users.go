package store

import (
	"errors"

	"gorm.io/gorm"

	"laundry-service-api/models"
)

// CreateUser inserts a new user. A username or email collision comes back
// as ErrDuplicateUser.
func CreateUser(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// UserByEmail looks a user up for login.
func UserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UserByID fetches a user by primary key.
func UserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Customers returns all non-admin users, newest first.
func Customers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Where("is_admin = ?", false).
		Order("created_at desc").
		Find(&users).Error
	return users, err
}
