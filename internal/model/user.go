package model

import "time"

// User is a tracked account. Usernames are not unique: the tracker accepts
// duplicates and identifies users by id only.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	Username  string    `gorm:"size:64;not null;index" json:"username"`
	CreatedAt time.Time `json:"-"`
}
