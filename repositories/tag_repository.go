package repositories

import (
	"discussion-board/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByName(name string) (*models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	FirstOrCreateByNames(names []string) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name asc").Find(&tags).Error
	return tags, err
}

// FirstOrCreateByNames returns one tag per name, in the order given, creating
// the ones that do not exist yet.
func (r *tagRepository) FirstOrCreateByNames(names []string) ([]models.Tag, error) {
	return firstOrCreateTags(r.db, names)
}

// firstOrCreateTags runs on db so callers holding a transaction can resolve
// tags inside it.
func firstOrCreateTags(db *gorm.DB, names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return []models.Tag{}, nil
	}

	missing := make([]models.Tag, 0, len(names))
	for _, name := range names {
		missing = append(missing, models.Tag{Name: name})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&missing).Error; err != nil {
		return nil, err
	}

	var found []models.Tag
	if err := db.Where("name IN ?", names).Find(&found).Error; err != nil {
		return nil, err
	}

	byName := make(map[string]models.Tag, len(found))
	for _, t := range found {
		byName[t.Name] = t
	}
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		if t, ok := byName[name]; ok {
			tags = append(tags, t)
		}
	}
	return tags, nil
}
