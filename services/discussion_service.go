package services

import (
	"discussion-board/models"
	"discussion-board/repositories"
)

type DiscussionService interface {
	CreateDiscussion(fields models.DiscussionFields) (*models.Discussion, error)
	GetDiscussions() ([]models.Discussion, error)
	GetDiscussion(id uint) (*models.Discussion, error)
	SaveDiscussion(discussion *models.Discussion) error
	UpdateDiscussion(id uint, fields models.DiscussionFields) (*models.Discussion, error)
	DeleteDiscussion(id uint) error
}

type discussionService struct {
	discussionRepo repositories.DiscussionRepository
}

func NewDiscussionService(discussionRepo repositories.DiscussionRepository) DiscussionService {
	return &discussionService{discussionRepo: discussionRepo}
}

func (s *discussionService) CreateDiscussion(fields models.DiscussionFields) (*models.Discussion, error) {
	discussion := &models.Discussion{
		Title:       valueOf(fields.Title),
		Description: valueOf(fields.Description),
		AuthorID:    fields.AuthorID,
		Category:    valueOf(fields.Category),
	}

	if err := s.discussionRepo.Create(discussion, fields.Tags); err != nil {
		return nil, models.NewStoreError("create", err)
	}

	return discussion, nil
}

func (s *discussionService) GetDiscussions() ([]models.Discussion, error) {
	discussions, err := s.discussionRepo.Find()
	if err != nil {
		return nil, models.NewStoreError("find", err)
	}
	return discussions, nil
}

func (s *discussionService) GetDiscussion(id uint) (*models.Discussion, error) {
	discussion, err := s.discussionRepo.FindByID(id)
	if err != nil {
		return nil, models.NewStoreError("findById", err)
	}
	return discussion, nil
}

func (s *discussionService) SaveDiscussion(discussion *models.Discussion) error {
	return models.NewStoreError("save", s.discussionRepo.Save(discussion))
}

// UpdateDiscussion overwrites the submitted fields and the author. It returns
// the discussion as stored before the update, or nil when id does not exist.
func (s *discussionService) UpdateDiscussion(id uint, fields models.DiscussionFields) (*models.Discussion, error) {
	update := repositories.DiscussionUpdate{
		Columns: map[string]interface{}{"author_id": fields.AuthorID},
	}
	if fields.Title != nil {
		update.Columns["title"] = *fields.Title
	}
	if fields.Description != nil {
		update.Columns["description"] = *fields.Description
	}
	if fields.Category != nil {
		update.Columns["category"] = *fields.Category
	}
	if fields.Tags != nil {
		update.TagNames = fields.Tags
		update.SetTags = true
	}

	discussion, err := s.discussionRepo.FindByIDAndUpdate(id, update)
	if err != nil {
		return nil, models.NewStoreError("findByIdAndUpdate", err)
	}
	return discussion, nil
}

func (s *discussionService) DeleteDiscussion(id uint) error {
	return models.NewStoreError("findByIdAndRemove", s.discussionRepo.FindByIDAndRemove(id))
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
