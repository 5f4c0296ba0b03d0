package repository

import (
	"errors"

	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// คืน Cart เดิมของ user (ถ้าไม่มีก็คืน Cart ว่าง ๆ โดยไม่ error เพื่อให้ FE แสดงได้)
// Runs on the given handle so checkout can snapshot and clear in one
// transaction.
func (r *CartRepository) GetCartWithItems(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges into an existing line with the same name, otherwise
// creates one. Lines are keyed by name within a cart.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND name = ?", cartID, row.Name).First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// ChangeQty applies a +/- delta to a line. A resulting qty <= 0 removes
// the line entirely.
func (r *CartRepository) ChangeQty(tx *gorm.DB, cartID uint, name string, delta int) error {
	var item entity.CartItem
	if err := tx.Where("cart_id = ? AND name = ?", cartID, name).First(&item).Error; err != nil {
		return err
	}
	item.Qty += delta
	if item.Qty <= 0 {
		return tx.Unscoped().Delete(&item).Error
	}
	return tx.Save(&item).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID uint, name string) error {
	// hard delete — ไม่งั้น unique (cart_id, name) จะชนตอนหยิบซ้ำ
	return tx.Unscoped().
		Where("cart_id = ? AND name = ?", cartID, name).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Unscoped().Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
