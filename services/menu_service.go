package services

import (
	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"github.com/akhilgolj/plantopiawebsite-final/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(typeName string) ([]entity.Menu, error) {
	return s.Repo.List(typeName)
}
