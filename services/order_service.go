package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"github.com/akhilgolj/plantopiawebsite-final/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidPhone   = errors.New("phone must be 10 digits")
	ErrAddressMissing = errors.New("delivery address is required")
	ErrBranchMissing  = errors.New("pickup branch is required")
)

var phoneRe = regexp.MustCompile(`^\d{10}$`)

// OrderNotifier receives the order after a create or close so connected
// clients can refresh without polling. Nil disables pushes.
type OrderNotifier interface {
	NotifyOrderUpdate(externalID string, order *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	Promos   *PromotionService
	Notifier OrderNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	promos *PromotionService,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo, Promos: promos}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" binding:"min=1"`
	Image    string          `json:"image"`
}

// RecordOrderIn is the raw order payload the storefront posts after it has
// priced the cart itself.
type RecordOrderIn struct {
	OrderID       string          `json:"orderId"`
	Date          string          `json:"date"`
	Items         []OrderItemIn   `json:"items" binding:"required,min=1"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Status        string          `json:"status"`
	Method        string          `json:"method" binding:"required,oneof=pickup delivery"`
	Address       string          `json:"address"`
	PickupTime    string          `json:"pickupTime"`
	PaymentMethod string          `json:"paymentMethod"`
	Discount      decimal.Decimal `json:"discount"`
}

// CheckoutIn prices the server-side cart instead of trusting the client.
type CheckoutIn struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Method        string `json:"method" binding:"required,oneof=pickup delivery"`
	Address       string `json:"address"`
	Branch        string `json:"branch"`
	PickupTime    string `json:"pickupTime"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	PromoCode     string `json:"promoCode"`
}

func (s *OrderService) ListForUser(externalID string, closed *bool) ([]entity.Order, error) {
	u, err := s.UserRepo.ByExternalID(s.DB, externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Repo.ListByUser(u.ID, closed)
}

// Record persists a client-assembled order, creating the user on first
// contact. The all-or-nothing write is the transaction.
func (s *OrderService) Record(externalID string, in *RecordOrderIn) (*entity.Order, error) {
	order := &entity.Order{
		OrderID:       in.OrderID,
		Date:          in.Date,
		Status:        in.Status,
		Method:        in.Method,
		Address:       in.Address,
		PickupTime:    in.PickupTime,
		PaymentMethod: in.PaymentMethod,
		Discount:      in.Discount,
		TotalCost:     in.TotalCost,
	}
	if order.OrderID == "" {
		order.OrderID = fmt.Sprintf("ORD-%s", uuid.NewString())
	}
	if order.Date == "" {
		order.Date = time.Now().Format(time.RFC3339)
	}
	if order.Status == "" {
		order.Status = "Processed"
	}
	for _, it := range in.Items {
		order.Items = append(order.Items, entity.OrderItem{
			Name:      it.Name,
			UnitPrice: it.Price,
			Qty:       it.Quantity,
			Image:     it.Image,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.UserRepo.GetOrCreate(tx, externalID)
		if err != nil {
			return err
		}
		order.UserID = u.ID
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyOrderUpdate(externalID, order)
	}
	return order, nil
}

// Checkout prices the user's cart (tax, delivery fee, promo), snapshots it
// into an order and clears the cart, all in one transaction.
func (s *OrderService) Checkout(externalID string, in *CheckoutIn) (*entity.Order, error) {
	if !phoneRe.MatchString(in.Phone) {
		return nil, ErrInvalidPhone
	}
	if in.Method == string(MethodDelivery) && in.Address == "" {
		return nil, ErrAddressMissing
	}
	if in.Method == string(MethodPickup) && in.Branch == "" {
		return nil, ErrBranchMissing
	}

	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.UserRepo.GetOrCreate(tx, externalID)
		if err != nil {
			return err
		}
		cart, err := s.CartRepo.GetCartWithItems(tx, u.ID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		discount := decimal.Zero
		if in.PromoCode != "" {
			discount, err = s.Promos.Apply(in.PromoCode, Subtotal(cart.Items))
			if err != nil {
				return err
			}
		}
		summary := ComputeSummary(cart.Items, DeliveryMethod(in.Method), discount)

		order = &entity.Order{
			OrderID:       fmt.Sprintf("ORD-%s", uuid.NewString()),
			Date:          time.Now().Format(time.RFC3339),
			Status:        "Processed",
			Method:        in.Method,
			Address:       in.Address,
			PickupTime:    in.PickupTime,
			PaymentMethod: in.PaymentMethod,
			Subtotal:      summary.Subtotal,
			Tax:           summary.Tax,
			DeliveryFee:   summary.DeliveryFee,
			Discount:      summary.Discount,
			TotalCost:     summary.Total,
			UserID:        u.ID,
		}
		for _, it := range cart.Items {
			order.Items = append(order.Items, entity.OrderItem{
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Qty:       it.Qty,
				Image:     it.Image,
			})
		}
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		return s.CartRepo.ClearCart(tx, u.ID)
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyOrderUpdate(externalID, order)
	}
	return order, nil
}

// Close moves an order to history. The flag is set without reading its
// current value, so closing twice succeeds and stays closed.
func (s *OrderService) Close(externalID, orderID string) error {
	var closed *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.UserRepo.ByExternalID(tx, externalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		o, err := s.Repo.ByOrderID(tx, u.ID, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if err := s.Repo.SetClosed(tx, o.ID); err != nil {
			return err
		}
		o.Closed = true
		closed = o
		return nil
	})
	if err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyOrderUpdate(externalID, closed)
	}
	return nil
}
