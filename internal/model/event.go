package model

import "time"

const (
	EventUserCreated     = "user.created"
	EventExerciseCreated = "exercise.created"
	EventUsersPurged     = "users.purged"
	EventExercisesPurged = "exercises.purged"
)

// Event is an audit record of a write against the store. Events are published
// to the broker on the request path and persisted asynchronously by the
// persist worker.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"size:32;not null;index" json:"action"`
	EntityID  uint      `gorm:"index" json:"entity_id"`
	Detail    string    `gorm:"size:255" json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
