package repository

import (
	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"gorm.io/gorm"
)

type ReservationRepository struct{ DB *gorm.DB }

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) ListByUser(userID uint) ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

// ReservedTables returns the table numbers with a live reservation for the
// slot, across all users.
func (r *ReservationRepository) ReservedTables(branch, date, slotTime string) ([]int, error) {
	var tables []int
	err := r.DB.Model(&entity.Reservation{}).
		Where("branch = ? AND date = ? AND time = ? AND cancelled = ?", branch, date, slotTime, false).
		Order("table_no").
		Pluck("table_no", &tables).Error
	return tables, err
}

// SlotTaken reports whether a live reservation already holds the table.
// Callers must run it in the same transaction as the insert; the partial
// unique index backs it up against a writer we cannot see yet.
func (r *ReservationRepository) SlotTaken(tx *gorm.DB, branch, date, slotTime string, tableNo int) (bool, error) {
	var count int64
	err := tx.Model(&entity.Reservation{}).
		Where("branch = ? AND date = ? AND time = ? AND table_no = ? AND cancelled = ?",
			branch, date, slotTime, tableNo, false).
		Count(&count).Error
	return count > 0, err
}

func (r *ReservationRepository) Create(tx *gorm.DB, res *entity.Reservation) error {
	return tx.Create(res).Error
}

func (r *ReservationRepository) ByReservationID(tx *gorm.DB, userID uint, reservationID string) (*entity.Reservation, error) {
	var res entity.Reservation
	err := tx.Where("user_id = ? AND reservation_id = ?", userID, reservationID).First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SetCancelled flips the flag unconditionally, matching the close-order
// transition: cancelling twice succeeds and stays cancelled.
func (r *ReservationRepository) SetCancelled(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.Reservation{}).Where("id = ?", id).Update("cancelled", true).Error
}
