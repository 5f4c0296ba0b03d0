package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"github.com/akhilgolj/plantopiawebsite-final/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTableAlreadyReserved = errors.New("table is already reserved for this time slot")
	ErrInvalidPartySize     = errors.New("party size must be between 1 and 12")
	ErrUnknownBranch        = errors.New("unknown branch")
	ErrInvalidTable         = errors.New("table number outside branch blueprint")
	ErrInvalidSlotTime      = errors.New("time slot must not contain underscores")
	ErrReservationNotFound  = errors.New("reservation not found")
)

type ReservationService struct {
	DB         *gorm.DB
	Repo       *repository.ReservationRepository
	UserRepo   *repository.UserRepository
	BranchRepo *repository.BranchRepository
}

func NewReservationService(
	db *gorm.DB,
	repo *repository.ReservationRepository,
	userRepo *repository.UserRepository,
	branchRepo *repository.BranchRepository,
) *ReservationService {
	return &ReservationService{DB: db, Repo: repo, UserRepo: userRepo, BranchRepo: branchRepo}
}

type CreateReservationIn struct {
	Table  int    `json:"table" binding:"required"`
	Name   string `json:"name" binding:"required"`
	People int    `json:"people" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Branch string `json:"branch" binding:"required"`
}

func (s *ReservationService) ListForUser(externalID string) ([]entity.Reservation, error) {
	u, err := s.UserRepo.ByExternalID(s.DB, externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Repo.ListByUser(u.ID)
}

func (s *ReservationService) Branches() ([]entity.Branch, error) {
	return s.BranchRepo.List()
}

// ReservedTables lists table numbers held for a slot. This feeds the floor
// blueprint; it is advisory only — Create re-checks at write time.
func (s *ReservationService) ReservedTables(branch, date, slotTime string) ([]int, error) {
	return s.Repo.ReservedTables(branch, date, slotTime)
}

// Create books a table. Validation happens before any write; the conflict
// check and the insert share one transaction, and the live-slot unique
// index turns a concurrent double-book into a constraint error we map to
// ErrTableAlreadyReserved. Either the whole reservation lands or nothing.
func (s *ReservationService) Create(externalID string, in *CreateReservationIn) (*entity.Reservation, error) {
	if in.People < 1 || in.People > 12 {
		return nil, ErrInvalidPartySize
	}
	// an underscore in the stored time would not survive the path-segment
	// round trip
	if strings.Contains(in.Time, "_") {
		return nil, ErrInvalidSlotTime
	}
	branch, err := s.BranchRepo.ByCode(in.Branch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownBranch
		}
		return nil, err
	}
	if in.Table < 1 || in.Table > branch.Tables {
		return nil, ErrInvalidTable
	}

	res := &entity.Reservation{
		ReservationID: fmt.Sprintf("RES-%s", uuid.NewString()),
		TableNo:       in.Table,
		Name:          in.Name,
		People:        in.People,
		Date:          in.Date,
		Time:          in.Time,
		Branch:        in.Branch,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := s.Repo.SlotTaken(tx, in.Branch, in.Date, in.Time, in.Table)
		if err != nil {
			return err
		}
		if taken {
			return ErrTableAlreadyReserved
		}
		u, err := s.UserRepo.GetOrCreate(tx, externalID)
		if err != nil {
			return err
		}
		res.UserID = u.ID
		return s.Repo.Create(tx, res)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTableAlreadyReserved
		}
		return nil, err
	}
	return res, nil
}

// Cancel frees the slot. Like Close on orders, the flag is written without
// re-reading it, so a repeat cancel succeeds.
func (s *ReservationService) Cancel(externalID, reservationID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.UserRepo.ByExternalID(tx, externalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		res, err := s.Repo.ByReservationID(tx, u.ID, reservationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		return s.Repo.SetCancelled(tx, res.ID)
	})
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite driver reports the partial index hit as a plain constraint
	// message
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
