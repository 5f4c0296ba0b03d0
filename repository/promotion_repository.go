package repository

import (
	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"gorm.io/gorm"
)

type PromotionRepository struct{ DB *gorm.DB }

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

func (r *PromotionRepository) List() ([]entity.Promotion, error) {
	var promos []entity.Promotion
	err := r.DB.Order("id").Find(&promos).Error
	return promos, err
}

func (r *PromotionRepository) ByCode(code string) (*entity.Promotion, error) {
	var p entity.Promotion
	if err := r.DB.Where("code = ?", code).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
