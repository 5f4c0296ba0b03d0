package controllers

import (
	"errors"
	"net/http"

	"github.com/akhilgolj/plantopiawebsite-final/pkg/resp"
	"github.com/akhilgolj/plantopiawebsite-final/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/users/:externalId/cart
func (h *CartController) Get(c *gin.Context) {
	cart, subtotal, err := h.Svc.Get(c.Param("externalId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /api/users/:externalId/cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(c.Param("externalId"), &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// PATCH /api/users/:externalId/cart/items/qty
func (h *CartController) ChangeQty(c *gin.Context) {
	var req services.ChangeQtyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ChangeQty(c.Param("externalId"), &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/users/:externalId/cart/items/:name
func (h *CartController) RemoveItem(c *gin.Context) {
	if err := h.Svc.RemoveItem(c.Param("externalId"), c.Param("name")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/users/:externalId/cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Param("externalId")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
