package controllers

import (
	"net/http"

	"github.com/akhilgolj/plantopiawebsite-final/pkg/resp"
	"github.com/akhilgolj/plantopiawebsite-final/services"
	"github.com/gin-gonic/gin"
)

type PromotionController struct{ Svc *services.PromotionService }

func NewPromotionController(s *services.PromotionService) *PromotionController {
	return &PromotionController{Svc: s}
}

// GET /api/promotions
func (h *PromotionController) List(c *gin.Context) {
	promos, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, promos)
}
