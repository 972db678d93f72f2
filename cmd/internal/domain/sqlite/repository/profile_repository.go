package repository

import (
	"blogapi/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *DefaultProfileRepository {
	return &DefaultProfileRepository{db: db}
}

func (r *DefaultProfileRepository) FindByOwnerID(ownerID int64) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.Where("owner_id = ?", ownerID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *DefaultProfileRepository) ExistsByOwnerID(ownerID int64) (bool, error) {
	var exists int
	err := r.db.
		Raw("SELECT EXISTS(SELECT 1 FROM profiles WHERE owner_id = ?)", ownerID).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

// Create fails with gorm.ErrDuplicatedKey if the owner already has a profile.
func (r *DefaultProfileRepository) Create(profile *entity.Profile) error {
	return r.db.Create(profile).Error
}

func (r *DefaultProfileRepository) Save(profile *entity.Profile) error {
	return r.db.Save(profile).Error
}

func (r *DefaultProfileRepository) Delete(profile *entity.Profile) error {
	return r.db.Delete(profile).Error
}
