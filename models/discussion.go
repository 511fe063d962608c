package models

import (
	"strings"
	"time"
)

type Discussion struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	AuthorID    uint      `json:"author_id" gorm:"not null"`
	Author      User      `json:"author" gorm:"foreignKey:AuthorID"`
	Category    string    `json:"category" gorm:"index"`
	Tags        []Tag     `json:"tags" gorm:"many2many:discussion_tags;"`
	Views       int       `json:"views" gorm:"not null;default:0"`
	Comments    []Comment `json:"comments,omitempty" gorm:"foreignKey:DiscussionID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TagNames returns the tag names in stored order.
func (d Discussion) TagNames() []string {
	names := make([]string, 0, len(d.Tags))
	for _, t := range d.Tags {
		names = append(names, t.Name)
	}
	return names
}

// DiscussionForm is the submitted form payload. A nil field was not submitted.
type DiscussionForm struct {
	Title       *string  `form:"title" json:"title"`
	Description *string  `form:"description" json:"description"`
	Category    *string  `form:"category" json:"category"`
	Tags        []string `form:"tags" json:"tags"`
}

// DiscussionFields is the whitelisted field set written by create and update.
// AuthorID is always the acting user.
type DiscussionFields struct {
	Title       *string
	Description *string
	AuthorID    uint
	Category    *string
	Tags        []string
}

// DiscussionParams maps a submitted form and the current user onto the
// whitelisted discussion fields. It does no validation.
func DiscussionParams(form DiscussionForm, user User) DiscussionFields {
	return DiscussionFields{
		Title:       form.Title,
		Description: form.Description,
		AuthorID:    user.ID,
		Category:    form.Category,
		Tags:        normalizeTags(form.Tags),
	}
}

// normalizeTags splits comma separated entries, trims them and drops empty
// and repeated names. A nil input stays nil so "not submitted" survives.
func normalizeTags(raw []string) []string {
	if raw == nil {
		return nil
	}
	tags := make([]string, 0, len(raw))
	seen := make(map[string]bool)
	for _, entry := range raw {
		for _, name := range strings.Split(entry, ",") {
			name = strings.TrimSpace(name)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			tags = append(tags, name)
		}
	}
	return tags
}
