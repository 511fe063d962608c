package models

import "time"

type Comment struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	AuthorID     uint      `json:"author_id" gorm:"not null"`
	Author       User      `json:"author" gorm:"foreignKey:AuthorID"`
	DiscussionID *uint     `json:"discussion_id" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
