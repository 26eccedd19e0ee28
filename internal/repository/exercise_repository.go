package repository

import (
	"fmt"

	"gorm.io/gorm"

	"exercise-tracker/internal/model"
)

type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(exercise *model.Exercise) error {
	if err := r.db.Create(exercise).Error; err != nil {
		return fmt.Errorf("create exercise failed: %w", err)
	}
	return nil
}

// ListByUserInRange returns a user's exercises with dates inside the
// inclusive [from, to] range. ISO dates compare correctly as strings, so the
// filter runs on the raw column. A limit of zero or less means unlimited.
// Results come back in insertion order.
func (r *ExerciseRepository) ListByUserInRange(userID uint, from, to string, limit int) ([]model.Exercise, error) {
	query := r.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var exercises []model.Exercise
	if err := query.Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("list exercises failed: %w", err)
	}
	return exercises, nil
}

func (r *ExerciseRepository) DeleteAll() (int64, error) {
	res := r.db.Where("1 = 1").Delete(&model.Exercise{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete all exercises failed: %w", res.Error)
	}
	return res.RowsAffected, nil
}
