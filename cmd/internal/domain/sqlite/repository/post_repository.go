package repository

import (
	"blogapi/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *DefaultPostRepository {
	return &DefaultPostRepository{db: db}
}

func orderedCategories(db *gorm.DB) *gorm.DB {
	return db.Order("tag")
}

// FindPage returns one window of posts ordered by id, plus the total count.
func (p *DefaultPostRepository) FindPage(offset, limit int) ([]*entity.Post, int64, error) {
	var count int64
	if err := p.db.Model(&entity.Post{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var posts []*entity.Post
	err := p.db.
		Preload("Categories", orderedCategories).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, count, nil
}

func (p *DefaultPostRepository) FindByID(id int64) (*entity.Post, error) {
	var post entity.Post
	err := p.db.Preload("Categories", orderedCategories).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts the post and its category links. Categories must already exist.
func (p *DefaultPostRepository) Create(post *entity.Post) error {
	return p.db.Omit("Owner", "Categories.*").Create(post).Error
}

// Update writes every column and replaces the category links in one transaction.
func (p *DefaultPostRepository) Update(post *entity.Post) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}

		assoc := tx.Model(post).Association("Categories")
		if len(post.Categories) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(post.Categories)
	})
}

func (p *DefaultPostRepository) Delete(post *entity.Post) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(post).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}
