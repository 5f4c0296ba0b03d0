package repository

import (
	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"gorm.io/gorm"
)

type BranchRepository struct{ DB *gorm.DB }

func NewBranchRepository(db *gorm.DB) *BranchRepository { return &BranchRepository{DB: db} }

func (r *BranchRepository) List() ([]entity.Branch, error) {
	var branches []entity.Branch
	err := r.DB.Order("id").Find(&branches).Error
	return branches, err
}

func (r *BranchRepository) ByCode(code string) (*entity.Branch, error) {
	var b entity.Branch
	if err := r.DB.Where("code = ?", code).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}
