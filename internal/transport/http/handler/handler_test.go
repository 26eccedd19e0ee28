package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"exercise-tracker/internal/app"
	"exercise-tracker/internal/model"
)

var errStoreOffline = errors.New("store offline")

type userStore struct {
	users  []model.User
	nextID uint
	fail   bool
}

func (s *userStore) Create(user *model.User) error {
	if s.fail {
		return errStoreOffline
	}
	s.nextID++
	user.ID = s.nextID
	s.users = append(s.users, *user)
	return nil
}

func (s *userStore) List() ([]model.User, error) {
	if s.fail {
		return nil, errStoreOffline
	}
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *userStore) GetByID(id uint) (*model.User, error) {
	if s.fail {
		return nil, errStoreOffline
	}
	for _, user := range s.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (s *userStore) DeleteAll() (int64, error) {
	if s.fail {
		return 0, errStoreOffline
	}
	count := int64(len(s.users))
	s.users = nil
	return count, nil
}

type exerciseStore struct {
	exercises []model.Exercise
	nextID    uint
	fail      bool
}

func (s *exerciseStore) Create(exercise *model.Exercise) error {
	if s.fail {
		return errStoreOffline
	}
	s.nextID++
	exercise.ID = s.nextID
	s.exercises = append(s.exercises, *exercise)
	return nil
}

func (s *exerciseStore) ListByUserInRange(userID uint, from, to string, limit int) ([]model.Exercise, error) {
	if s.fail {
		return nil, errStoreOffline
	}
	var out []model.Exercise
	for _, exercise := range s.exercises {
		if exercise.UserID != userID || exercise.Date < from || exercise.Date > to {
			continue
		}
		out = append(out, exercise)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *exerciseStore) DeleteAll() (int64, error) {
	if s.fail {
		return 0, errStoreOffline
	}
	count := int64(len(s.exercises))
	s.exercises = nil
	return count, nil
}

type fixture struct {
	users     *userStore
	exercises *exerciseStore
	service   *app.TrackerService
	router    *gin.Engine
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)

	users := &userStore{}
	exercises := &exerciseStore{}
	service := app.NewTrackerService(users, exercises, nil, nil)

	userHandler := NewUserHandler(service)
	exerciseHandler := NewExerciseHandler(service)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/users", userHandler.List)
	api.POST("/users", userHandler.Create)
	api.GET("/users/delete", userHandler.DeleteAll)
	api.POST("/users/:id/exercises", exerciseHandler.Create)
	api.GET("/users/:id/logs", exerciseHandler.Log)
	api.GET("/exercises/delete", exerciseHandler.DeleteAll)

	return &fixture{
		users:     users,
		exercises: exercises,
		service:   service,
		router:    router,
	}
}
