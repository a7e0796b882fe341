package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-sharing/internal/application"
	"github.com/shareit-platform/service-sharing/internal/metrics"
	"github.com/shareit-platform/service-sharing/internal/response"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes mounts the booking endpoints.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.create)
		bookings.PATCH("/:id", h.updateStatus)
		bookings.GET("/owner", h.listByOwner)
		bookings.GET("/:id", h.get)
		bookings.GET("", h.listByBooker)
	}
}

func (h *BookingHandler) create(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	metrics.BookingCreated()
	response.Created(c, dto)
}

func (h *BookingHandler) updateStatus(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.BadRequest(c, "invalid approved")
		return
	}

	dto, err := h.service.UpdateStatus(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}
	metrics.BookingDecided(dto.Status)
	response.Success(c, dto)
}

func (h *BookingHandler) get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	dto, err := h.service.GetBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

func (h *BookingHandler) listByBooker(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	from, size, ok := pageParams(c)
	if !ok {
		return
	}
	state := c.DefaultQuery("state", "ALL")

	dtos, err := h.service.GetBookerBookings(c.Request.Context(), userID, state, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dtos)
}

func (h *BookingHandler) listByOwner(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	from, size, ok := pageParams(c)
	if !ok {
		return
	}
	state := c.DefaultQuery("state", "ALL")

	dtos, err := h.service.GetOwnerBookings(c.Request.Context(), userID, state, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dtos)
}
