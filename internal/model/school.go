package model

import "time"

// School represents one directory entry. Image holds either a public path
// under /schoolImages or an absolute object-storage URL, depending on the
// configured image store.
type School struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Address   string    `json:"address" gorm:"size:512;not null"`
	City      string    `json:"city" gorm:"size:255;not null;index"`
	State     string    `json:"state" gorm:"size:255;not null"`
	Contact   string    `json:"contact" gorm:"size:64;not null"`
	Image     string    `json:"image" gorm:"size:512;not null"`
	EmailID   string    `json:"email_id" gorm:"column:email_id;size:255;not null"`
	Views     uint      `json:"views" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SchoolSummary is the projection returned by the public listing.
type SchoolSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Image   string `json:"image"`
}
