package repository

import (
	"errors"

	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) ByExternalID(tx *gorm.DB, externalID string) (*entity.User, error) {
	var u entity.User
	err := tx.Where("external_id = ?", externalID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetOrCreate looks the user up by external identity and creates an empty
// record on first contact. User creation always goes through here, so the
// "implicit" creation on a first order or reservation stays explicit in code.
func (r *UserRepository) GetOrCreate(tx *gorm.DB, externalID string) (*entity.User, error) {
	u, err := r.ByExternalID(tx, externalID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	created := entity.User{ExternalID: externalID}
	if err := tx.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}
