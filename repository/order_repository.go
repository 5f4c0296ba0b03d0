package repository

import (
	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ListByUser returns the user's orders in insertion order. closed filters
// on the active/history flag when non-nil; the split itself is a view
// concern, storage keeps one sequence.
func (r *OrderRepository) ListByUser(userID uint, closed *bool) ([]entity.Order, error) {
	q := r.DB.Where("user_id = ?", userID).Preload("Items").Order("id")
	if closed != nil {
		q = q.Where("closed = ?", *closed)
	}
	var orders []entity.Order
	err := q.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ByOrderID(tx *gorm.DB, userID uint, orderID string) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where("user_id = ? AND order_id = ?", userID, orderID).
		Preload("Items").First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// SetClosed flips the flag unconditionally — closing a closed order is
// not an error.
func (r *OrderRepository) SetClosed(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", id).Update("closed", true).Error
}
