package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"exercise-tracker/internal/model"
	"exercise-tracker/internal/pkg/dateutil"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUserNotFound = errors.New("user not found")
)

// UserStore and ExerciseStore are the slices of the store adapter the service
// needs. The gorm repositories satisfy them in production; tests use
// in-memory fakes.
type UserStore interface {
	Create(user *model.User) error
	List() ([]model.User, error)
	GetByID(id uint) (*model.User, error)
	DeleteAll() (int64, error)
}

type ExerciseStore interface {
	Create(exercise *model.Exercise) error
	ListByUserInRange(userID uint, from, to string, limit int) ([]model.Exercise, error)
	DeleteAll() (int64, error)
}

// EventSink receives audit events. Publishing is best-effort: a sink failure
// never fails the operation that produced the event.
type EventSink interface {
	Publish(ctx context.Context, event model.Event) error
}

// LogCache holds rendered log responses. Entries carry a short TTL; a
// per-user dirty marker suppresses reads right after a write, and the epoch
// counter fences off everything cached before a bulk delete. Entries cached
// before a write may be served once the marker lapses, stale by at most the
// entry TTL.
type LogCache interface {
	Get(ctx context.Context, key string) (*model.Log, bool, error)
	Set(ctx context.Context, key string, logView *model.Log) error
	MarkDirty(ctx context.Context, userID uint) error
	IsDirty(ctx context.Context, userID uint) (bool, error)
	Epoch(ctx context.Context) (int64, error)
	BumpEpoch(ctx context.Context) error
}

type TrackerService struct {
	users     UserStore
	exercises ExerciseStore
	events    EventSink
	logCache  LogCache
}

func NewTrackerService(users UserStore, exercises ExerciseStore, events EventSink, logCache LogCache) *TrackerService {
	return &TrackerService{
		users:     users,
		exercises: exercises,
		events:    events,
		logCache:  logCache,
	}
}

func (s *TrackerService) CreateUser(ctx context.Context, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidInput
	}

	user := &model.User{Username: username}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.publish(ctx, model.Event{
		Action:   model.EventUserCreated,
		EntityID: user.ID,
		Detail:   user.Username,
	})
	return user, nil
}

func (s *TrackerService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List()
}

type AddExerciseInput struct {
	UserID      uint
	Description string
	Duration    int
	Date        string
}

// AddExercise looks the owner up first and only then writes the exercise;
// the two store calls stay sequential within the request. The owner's
// username is copied onto the record at this point and never synced again.
func (s *TrackerService) AddExercise(ctx context.Context, input AddExerciseInput) (*model.Exercise, error) {
	if input.UserID == 0 {
		return nil, ErrUserNotFound
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrInvalidInput
	}
	if input.Duration == 0 {
		return nil, ErrInvalidInput
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = dateutil.Today()
	}
	if !dateutil.Valid(date) {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	exercise := &model.Exercise{
		UserID:      user.ID,
		Username:    user.Username,
		Description: description,
		Duration:    input.Duration,
		Date:        date,
	}
	if err := s.exercises.Create(exercise); err != nil {
		return nil, err
	}

	if s.logCache != nil {
		_ = s.logCache.MarkDirty(ctx, user.ID)
	}
	s.publish(ctx, model.Event{
		Action:   model.EventExerciseCreated,
		EntityID: exercise.ID,
		Detail:   fmt.Sprintf("user=%d %s", user.ID, description),
	})
	return exercise, nil
}

type LogQuery struct {
	UserID uint
	From   string
	To     string
	Limit  int
}

// GetLog returns the user's exercises inside the inclusive date range,
// projected and rendered for the response. From defaults to the epoch day
// and To to today, so an unqualified query covers everything.
func (s *TrackerService) GetLog(ctx context.Context, query LogQuery) (*model.Log, error) {
	if query.UserID == 0 {
		return nil, ErrUserNotFound
	}

	user, err := s.users.GetByID(query.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	from := query.From
	if from == "" {
		from = dateutil.EpochDay
	}
	to := query.To
	if to == "" {
		to = dateutil.Today()
	}

	var (
		cacheKey string
		dirty    bool
	)
	if s.logCache != nil {
		epoch, epochErr := s.logCache.Epoch(ctx)
		if epochErr == nil {
			cacheKey = logCacheKey(epoch, user.ID, from, to, query.Limit)
			if dirty, err = s.logCache.IsDirty(ctx, user.ID); err == nil && !dirty {
				if cached, hit, cacheErr := s.logCache.Get(ctx, cacheKey); cacheErr == nil && hit {
					return cached, nil
				}
			}
		}
	}

	exercises, err := s.exercises.ListByUserInRange(user.ID, from, to, query.Limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LogEntry, 0, len(exercises))
	for _, exercise := range exercises {
		entries = append(entries, model.LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        dateutil.Human(exercise.Date),
		})
	}

	logView := &model.Log{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(entries),
		Entries:  entries,
	}
	if s.logCache != nil && cacheKey != "" && !dirty {
		_ = s.logCache.Set(ctx, cacheKey, logView)
	}
	return logView, nil
}

func (s *TrackerService) PurgeUsers(ctx context.Context) (int64, error) {
	count, err := s.users.DeleteAll()
	if err != nil {
		return 0, err
	}

	if s.logCache != nil {
		_ = s.logCache.BumpEpoch(ctx)
	}
	s.publish(ctx, model.Event{
		Action: model.EventUsersPurged,
		Detail: fmt.Sprintf("deleted=%d", count),
	})
	return count, nil
}

func (s *TrackerService) PurgeExercises(ctx context.Context) (int64, error) {
	count, err := s.exercises.DeleteAll()
	if err != nil {
		return 0, err
	}

	if s.logCache != nil {
		_ = s.logCache.BumpEpoch(ctx)
	}
	s.publish(ctx, model.Event{
		Action: model.EventExercisesPurged,
		Detail: fmt.Sprintf("deleted=%d", count),
	})
	return count, nil
}

func (s *TrackerService) publish(ctx context.Context, event model.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("publish audit event failed: %v", err)
	}
}

func logCacheKey(epoch int64, userID uint, from, to string, limit int) string {
	return fmt.Sprintf("tracker:log:%d:%d:%s:%s:%d", epoch, userID, from, to, limit)
}
