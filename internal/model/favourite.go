package model

import "time"

// Favourite marks a school bookmarked by a user. Only the aggregate count is
// read in this service; rows are written by the companion frontend.
type Favourite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_fav_user_school"`
	SchoolID  uint      `json:"school_id" gorm:"not null;uniqueIndex:idx_fav_user_school"`
	CreatedAt time.Time `json:"created_at"`
}
