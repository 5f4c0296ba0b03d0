package controllers

import (
	"errors"
	"net/http"

	"github.com/akhilgolj/plantopiawebsite-final/pkg/resp"
	"github.com/akhilgolj/plantopiawebsite-final/services"
	"github.com/akhilgolj/plantopiawebsite-final/utils"
	"github.com/gin-gonic/gin"
)

type ReservationController struct{ Svc *services.ReservationService }

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: s}
}

// GET /api/branches
func (h *ReservationController) Branches(c *gin.Context) {
	branches, err := h.Svc.Branches()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

// GET /api/reservations/:branch/:date/:time
// The time segment arrives underscore-encoded ("6:00PM_-_6:30PM").
func (h *ReservationController) ReservedTables(c *gin.Context) {
	slotTime := utils.DecodeSlotTime(c.Param("time"))
	tables, err := h.Svc.ReservedTables(c.Param("branch"), c.Param("date"), slotTime)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

// GET /api/users/:externalId/reservations
func (h *ReservationController) List(c *gin.Context) {
	reservations, err := h.Svc.ListForUser(c.Param("externalId"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.NotFound(c, "User not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// POST /api/users/:externalId/reservations
func (h *ReservationController) Create(c *gin.Context) {
	var req services.CreateReservationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := h.Svc.Create(c.Param("externalId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableAlreadyReserved):
			// 400 with this exact message is what the storefront matches on
			resp.BadRequest(c, "Table is already reserved for this time slot")
		case errors.Is(err, services.ErrInvalidPartySize),
			errors.Is(err, services.ErrUnknownBranch),
			errors.Is(err, services.ErrInvalidTable),
			errors.Is(err, services.ErrInvalidSlotTime):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, res)
}

// PUT /api/users/:externalId/reservations/:reservationId/cancel
func (h *ReservationController) Cancel(c *gin.Context) {
	err := h.Svc.Cancel(c.Param("externalId"), c.Param("reservationId"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrReservationNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled"})
}
