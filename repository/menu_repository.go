package repository

import (
	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) List(typeName string) ([]entity.Menu, error) {
	q := r.DB.Model(&entity.Menu{})
	if typeName != "" {
		q = q.Joins("JOIN menu_types ON menu_types.id = menus.menu_type_id").
			Where("menu_types.type_name = ?", typeName)
	}
	var menus []entity.Menu
	err := q.Order("menus.id").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) ByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
