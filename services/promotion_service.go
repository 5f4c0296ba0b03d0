package services

import (
	"errors"

	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"github.com/akhilgolj/plantopiawebsite-final/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidPromoCode = errors.New("invalid promo code")
	ErrBelowMinimum     = errors.New("order below promo minimum")
)

type PromotionService struct {
	Repo *repository.PromotionRepository
}

func NewPromotionService(repo *repository.PromotionRepository) *PromotionService {
	return &PromotionService{Repo: repo}
}

func (s *PromotionService) List() ([]entity.Promotion, error) {
	return s.Repo.List()
}

// Apply resolves a promo code against the subtotal. Only one promo is ever
// active on an order; callers replace any prior discount with the result.
func (s *PromotionService) Apply(code string, subtotal decimal.Decimal) (decimal.Decimal, error) {
	promo, err := s.Repo.ByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, ErrInvalidPromoCode
		}
		return decimal.Zero, err
	}

	if subtotal.LessThan(promo.MinOrder) {
		return decimal.Zero, ErrBelowMinimum
	}

	switch promo.Kind {
	case entity.PromoKindRate:
		return subtotal.Mul(promo.Value).Round(2), nil
	case entity.PromoKindFlat:
		return promo.Value, nil
	default:
		return decimal.Zero, ErrInvalidPromoCode
	}
}
