package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-sharing/internal/application"
	"github.com/shareit-platform/service-sharing/internal/response"
)

// RequestHandler exposes the item-request endpoints.
type RequestHandler struct {
	service *application.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *application.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes mounts the item-request endpoints.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	{
		requests.POST("", h.create)
		requests.GET("", h.listOwn)
		requests.GET("/all", h.listAll)
		requests.GET("/:id", h.get)
	}
}

func (h *RequestHandler) create(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req application.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.CreateRequest(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto)
}

func (h *RequestHandler) listOwn(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	dtos, err := h.service.GetOwnRequests(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dtos)
}

func (h *RequestHandler) listAll(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	from, size, ok := pageParams(c)
	if !ok {
		return
	}

	dtos, err := h.service.GetAllRequests(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dtos)
}

func (h *RequestHandler) get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	dto, err := h.service.GetRequest(c.Request.Context(), userID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}
