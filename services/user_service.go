package services

import (
	"errors"

	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"github.com/akhilgolj/plantopiawebsite-final/repository"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	DB   *gorm.DB
	Repo *repository.UserRepository
}

func NewUserService(db *gorm.DB, repo *repository.UserRepository) *UserService {
	return &UserService{DB: db, Repo: repo}
}

type UpsertProfileIn struct {
	ExternalID string `json:"externalId" binding:"required"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Picture    string `json:"picture"`
}

// UpsertProfile stores the profile on first sign-in and returns the stored
// row unchanged on every later one. A changed name on a repeat sign-in is
// deliberately ignored.
func (s *UserService) UpsertProfile(in *UpsertProfileIn) (*entity.User, error) {
	var out *entity.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.Repo.ByExternalID(tx, in.ExternalID)
		if err == nil {
			out = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		created := entity.User{
			ExternalID: in.ExternalID,
			Name:       in.Name,
			Email:      in.Email,
			Picture:    in.Picture,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		out = &created
		return nil
	})
	return out, err
}
