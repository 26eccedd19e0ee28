package model

import "time"

// Exercise is a single logged activity. Username is a denormalized copy of
// the owner's name at creation time; it is never synced afterwards, and
// deleting the owner does not cascade.
type Exercise struct {
	ID          uint      `gorm:"primaryKey" json:"_id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Username    string    `gorm:"size:64;not null" json:"username"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Duration    int       `gorm:"not null" json:"duration"`
	Date        string    `gorm:"size:10;not null;index" json:"date"`
	CreatedAt   time.Time `json:"-"`
}
