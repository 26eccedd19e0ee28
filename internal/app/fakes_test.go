package app

import (
	"context"
	"errors"

	"exercise-tracker/internal/model"
)

var errStoreOffline = errors.New("store offline")

type memUserStore struct {
	users      []model.User
	nextID     uint
	failCreate bool
	failList   bool
	failGet    bool
	failDelete bool
}

func (s *memUserStore) Create(user *model.User) error {
	if s.failCreate {
		return errStoreOffline
	}
	s.nextID++
	user.ID = s.nextID
	s.users = append(s.users, *user)
	return nil
}

func (s *memUserStore) List() ([]model.User, error) {
	if s.failList {
		return nil, errStoreOffline
	}
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *memUserStore) GetByID(id uint) (*model.User, error) {
	if s.failGet {
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

func (s *memUserStore) DeleteAll() (int64, error) {
	if s.failDelete {
		return 0, errStoreOffline
	}
	count := int64(len(s.users))
	s.users = nil
	return count, nil
}

type memExerciseStore struct {
	exercises  []model.Exercise
	nextID     uint
	failCreate bool
	failList   bool
	failDelete bool
}

func (s *memExerciseStore) Create(exercise *model.Exercise) error {
	if s.failCreate {
		return errStoreOffline
	}
	s.nextID++
	exercise.ID = s.nextID
	s.exercises = append(s.exercises, *exercise)
	return nil
}

func (s *memExerciseStore) ListByUserInRange(userID uint, from, to string, limit int) ([]model.Exercise, error) {
	if s.failList {
		return nil, errStoreOffline
	}
	var out []model.Exercise
	for _, exercise := range s.exercises {
		if exercise.UserID != userID {
			continue
		}
		if exercise.Date < from || exercise.Date > to {
			continue
		}
		out = append(out, exercise)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *memExerciseStore) DeleteAll() (int64, error) {
	if s.failDelete {
		return 0, errStoreOffline
	}
	count := int64(len(s.exercises))
	s.exercises = nil
	return count, nil
}

type memEventSink struct {
	events []model.Event
	fail   bool
}

func (s *memEventSink) Publish(_ context.Context, event model.Event) error {
	if s.fail {
		return errStoreOffline
	}
	s.events = append(s.events, event)
	return nil
}

type memLogCache struct {
	entries map[string]*model.Log
	dirty   map[uint]bool
	epoch   int64

	gets int
	hits int
	sets int
}

func newMemLogCache() *memLogCache {
	return &memLogCache{
		entries: make(map[string]*model.Log),
		dirty:   make(map[uint]bool),
	}
}

func (c *memLogCache) Get(_ context.Context, key string) (*model.Log, bool, error) {
	c.gets++
	logView, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return logView, ok, nil
}

func (c *memLogCache) Set(_ context.Context, key string, logView *model.Log) error {
	c.sets++
	c.entries[key] = logView
	return nil
}

func (c *memLogCache) MarkDirty(_ context.Context, userID uint) error {
	c.dirty[userID] = true
	return nil
}

func (c *memLogCache) IsDirty(_ context.Context, userID uint) (bool, error) {
	return c.dirty[userID], nil
}

func (c *memLogCache) Epoch(_ context.Context) (int64, error) {
	return c.epoch, nil
}

func (c *memLogCache) BumpEpoch(_ context.Context) error {
	c.epoch++
	return nil
}
