package repositories

import (
	"errors"

	"discussion-board/models"

	"gorm.io/gorm"
)

// DiscussionUpdate is a set-only partial update. Columns holds the columns to
// overwrite; TagNames replaces the tag set only when SetTags is true.
type DiscussionUpdate struct {
	Columns  map[string]interface{}
	TagNames []string
	SetTags  bool
}

type DiscussionRepository interface {
	Create(discussion *models.Discussion, tagNames []string) error
	Find() ([]models.Discussion, error)
	FindByID(id uint) (*models.Discussion, error)
	FindByIDAndUpdate(id uint, update DiscussionUpdate) (*models.Discussion, error)
	FindByIDAndRemove(id uint) error
	Save(discussion *models.Discussion) error
}

type discussionRepository struct {
	db *gorm.DB
}

func NewDiscussionRepository(db *gorm.DB) DiscussionRepository {
	return &discussionRepository{db: db}
}

// Create inserts the discussion with its tags, creating missing tags in the
// same transaction.
func (r *discussionRepository) Create(discussion *models.Discussion, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(tagNames) > 0 {
			tags, err := firstOrCreateTags(tx, tagNames)
			if err != nil {
				return err
			}
			discussion.Tags = tags
		}
		return tx.Create(discussion).Error
	})
}

func (r *discussionRepository) Find() ([]models.Discussion, error) {
	var discussions []models.Discussion
	err := r.db.Preload("Author").
		Preload("Tags").
		Order("created_at desc, id desc").
		Find(&discussions).Error
	return discussions, err
}

func (r *discussionRepository) FindByID(id uint) (*models.Discussion, error) {
	var discussion models.Discussion
	err := r.db.Preload("Author").
		Preload("Tags").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at asc, comments.id asc")
		}).
		Preload("Comments.Author").
		First(&discussion, id).Error
	if err != nil {
		return nil, err
	}
	return &discussion, nil
}

// FindByIDAndUpdate applies update and returns the discussion as it was
// before the write. The returned value is not re-read. A missing id returns
// nil and no error.
func (r *discussionRepository) FindByIDAndUpdate(id uint, update DiscussionUpdate) (*models.Discussion, error) {
	var before models.Discussion
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Tags").First(&before, id).Error; err != nil {
			return err
		}

		target := &models.Discussion{ID: id}
		if len(update.Columns) > 0 {
			if err := tx.Model(target).Updates(update.Columns).Error; err != nil {
				return err
			}
		}
		if update.SetTags {
			tags, err := firstOrCreateTags(tx, update.TagNames)
			if err != nil {
				return err
			}
			if err := tx.Model(target).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &before, nil
}

// FindByIDAndRemove hard deletes the discussion. Removing an id that does not
// exist is not an error. Comments are detached, not deleted.
func (r *discussionRepository) FindByIDAndRemove(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		target := &models.Discussion{ID: id}
		if err := tx.Model(target).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&models.Comment{}).
			Where("discussion_id = ?", id).
			Update("discussion_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(target).Error
	})
}

// Save writes the discussion's own columns back; associations are left
// untouched and a row that no longer exists is not recreated.
func (r *discussionRepository) Save(discussion *models.Discussion) error {
	return r.db.Model(discussion).
		Select("title", "description", "author_id", "category", "views").
		Updates(discussion).Error
}
