package controllers

import (
	"net/http"

	"github.com/akhilgolj/plantopiawebsite-final/pkg/resp"
	"github.com/akhilgolj/plantopiawebsite-final/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /api/menu?type=
func (h *MenuController) List(c *gin.Context) {
	menus, err := h.Svc.List(c.Query("type"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}
