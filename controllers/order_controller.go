package controllers

import (
	"errors"
	"net/http"

	"github.com/akhilgolj/plantopiawebsite-final/pkg/resp"
	"github.com/akhilgolj/plantopiawebsite-final/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /api/users/:externalId/orders?closed=true|false
func (h *OrderController) List(c *gin.Context) {
	var closed *bool
	switch c.Query("closed") {
	case "true":
		v := true
		closed = &v
	case "false":
		v := false
		closed = &v
	}

	orders, err := h.Svc.ListForUser(c.Param("externalId"), closed)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.NotFound(c, "User not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// POST /api/users/:externalId/orders
func (h *OrderController) Create(c *gin.Context) {
	var req services.RecordOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Record(c.Param("externalId"), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// POST /api/users/:externalId/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Checkout(c.Param("externalId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrInvalidPhone),
			errors.Is(err, services.ErrAddressMissing),
			errors.Is(err, services.ErrBranchMissing),
			errors.Is(err, services.ErrInvalidPromoCode),
			errors.Is(err, services.ErrBelowMinimum):
			// caught before any write
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// PUT /api/users/:externalId/orders/:orderId/close
func (h *OrderController) Close(c *gin.Context) {
	err := h.Svc.Close(c.Param("externalId"), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order closed"})
}
