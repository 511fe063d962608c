package services

import (
	"discussion-board/models"
	"discussion-board/repositories"
)

type CommentService interface {
	CreateComment(discussionID uint, req models.CreateCommentRequest, authorID uint) (*models.Comment, error)
}

type commentService struct {
	commentRepo    repositories.CommentRepository
	discussionRepo repositories.DiscussionRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, discussionRepo repositories.DiscussionRepository) CommentService {
	return &commentService{
		commentRepo:    commentRepo,
		discussionRepo: discussionRepo,
	}
}

func (s *commentService) CreateComment(discussionID uint, req models.CreateCommentRequest, authorID uint) (*models.Comment, error) {
	// the discussion must exist
	if _, err := s.discussionRepo.FindByID(discussionID); err != nil {
		return nil, models.NewStoreError("findById", err)
	}

	comment := &models.Comment{
		Content:      req.Content,
		AuthorID:     authorID,
		DiscussionID: &discussionID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, models.NewStoreError("create", err)
	}
	return comment, nil
}
