package repository

import (
	"blogapi/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultCategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *DefaultCategoryRepository {
	return &DefaultCategoryRepository{db: db}
}

// FindPage returns one window of categories ordered by tag, plus the total count.
func (c *DefaultCategoryRepository) FindPage(offset, limit int) ([]*entity.Category, int64, error) {
	var count int64
	if err := c.db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var categories []*entity.Category
	err := c.db.Order("tag").Offset(offset).Limit(limit).Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, count, nil
}

func (c *DefaultCategoryRepository) FindByTag(tag string) (*entity.Category, error) {
	var category entity.Category
	err := c.db.Where("tag = ?", tag).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *DefaultCategoryRepository) FindAllInTags(tags []string) ([]*entity.Category, error) {
	if len(tags) == 0 {
		return []*entity.Category{}, nil
	}

	var categories []*entity.Category
	err := c.db.Where("tag IN ?", tags).Order("tag").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Create inserts a new category, failing with gorm.ErrDuplicatedKey when the tag is taken.
func (c *DefaultCategoryRepository) Create(category *entity.Category) error {
	return c.db.Create(category).Error
}

func (c *DefaultCategoryRepository) Save(category *entity.Category) error {
	return c.db.Save(category).Error
}

// Delete removes the category and untags every post carrying it.
func (c *DefaultCategoryRepository) Delete(category *entity.Category) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec("DELETE FROM post_categories WHERE category_tag = ?", category.Tag).Error
		if err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
}
