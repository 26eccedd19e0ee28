package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"exercise-tracker/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

// DeleteAll removes every user and reports how many were removed. Deleting
// from an empty table is not an error.
func (r *UserRepository) DeleteAll() (int64, error) {
	res := r.db.Where("1 = 1").Delete(&model.User{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete all users failed: %w", res.Error)
	}
	return res.RowsAffected, nil
}
