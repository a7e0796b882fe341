package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-sharing/internal/application"
	"github.com/shareit-platform/service-sharing/internal/response"
)

// ItemHandler exposes the item catalog endpoints.
type ItemHandler struct {
	service *application.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *application.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes mounts the item endpoints.
func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/items")
	{
		items.POST("", h.create)
		items.PATCH("/:id", h.update)
		items.GET("", h.listOwn)
		items.GET("/search", h.search)
		items.GET("/:id", h.get)
		items.POST("/:id/comment", h.addComment)
	}
}

func (h *ItemHandler) create(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req application.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.CreateItem(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto)
}

func (h *ItemHandler) update(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req application.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.UpdateItem(c.Request.Context(), userID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

func (h *ItemHandler) listOwn(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	from, size, ok := pageParams(c)
	if !ok {
		return
	}

	dtos, err := h.service.GetUserItems(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dtos)
}

// get serves the item card. The actor header is optional here: anonymous
// readers see the item and its comments, the owner additionally sees the
// last and next approved booking.
func (h *ItemHandler) get(c *gin.Context) {
	userID, ok := optionalActorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	dto, err := h.service.GetItem(c.Request.Context(), userID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

func (h *ItemHandler) search(c *gin.Context) {
	from, size, ok := pageParams(c)
	if !ok {
		return
	}

	dtos, err := h.service.SearchItems(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dtos)
}

func (h *ItemHandler) addComment(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req application.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.AddComment(c.Request.Context(), userID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}
