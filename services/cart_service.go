package services

import (
	"errors"

	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"github.com/akhilgolj/plantopiawebsite-final/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, ur *repository.UserRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, UserRepo: ur}
}

type AddToCartIn struct {
	MenuID uint `json:"menuId" binding:"required"`
	Qty    int  `json:"qty" binding:"min=0"`
}

type ChangeQtyIn struct {
	Name  string `json:"name" binding:"required"`
	Delta int    `json:"delta" binding:"required"`
}

// Get returns the user's cart (empty if they have none yet) plus its
// subtotal. Unknown users get an empty cart rather than a 404, so the
// storefront can render before first sign-in activity. Storage failures
// still come back as errors.
func (s *CartService) Get(externalID string) (*entity.Cart, decimal.Decimal, error) {
	u, err := s.UserRepo.ByExternalID(s.DB, externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Cart{}, decimal.Zero, nil
		}
		return nil, decimal.Zero, err
	}
	c, err := s.CartRepo.GetCartWithItems(s.DB, u.ID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return c, Subtotal(c.Items), nil
}

// Add puts a menu item in the cart, merging with an existing line of the
// same name. Price and image are snapshotted from the menu at add time.
func (s *CartService) Add(externalID string, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	m, err := s.MenuRepo.ByID(in.MenuID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.UserRepo.GetOrCreate(tx, externalID)
		if err != nil {
			return err
		}
		c, err := s.CartRepo.GetOrCreateCart(tx, u.ID)
		if err != nil {
			return err
		}
		line := &entity.CartItem{
			Name:      m.MenuName,
			UnitPrice: m.Price,
			Qty:       in.Qty,
			Image:     m.Picture,
		}
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// ChangeQty applies the +/- stepper. The repo removes the line when the
// quantity lands at or below zero.
func (s *CartService) ChangeQty(externalID string, in *ChangeQtyIn) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.UserRepo.ByExternalID(tx, externalID)
		if err != nil {
			return err
		}
		c, err := s.CartRepo.GetOrCreateCart(tx, u.ID)
		if err != nil {
			return err
		}
		return s.CartRepo.ChangeQty(tx, c.ID, in.Name, in.Delta)
	})
}

func (s *CartService) RemoveItem(externalID, name string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.UserRepo.ByExternalID(tx, externalID)
		if err != nil {
			return err
		}
		c, err := s.CartRepo.GetOrCreateCart(tx, u.ID)
		if err != nil {
			return err
		}
		return s.CartRepo.RemoveItem(tx, c.ID, name)
	})
}

func (s *CartService) Clear(externalID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.UserRepo.ByExternalID(tx, externalID)
		if err != nil {
			return err
		}
		return s.CartRepo.ClearCart(tx, u.ID)
	})
}
