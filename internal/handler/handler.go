// Package handler exposes the HTTP API. Every mutating or personalized route
// reads the acting user's id from the X-Sharer-User-Id header.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-sharing/internal/response"
)

// HeaderUserID carries the acting user's id on every authenticated route.
const HeaderUserID = "X-Sharer-User-Id"

// actorID extracts the acting user's id, answering 400 when the header is
// missing or malformed. The caller must return when ok is false.
func actorID(c *gin.Context) (int64, bool) {
	raw := c.GetHeader(HeaderUserID)
	if raw == "" {
		response.BadRequest(c, "missing X-Sharer-User-Id header")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid X-Sharer-User-Id header")
		return 0, false
	}
	return id, true
}

// optionalActorID extracts the acting user's id when the header is present,
// returning zero when it is absent. A present but malformed header is still
// a 400.
func optionalActorID(c *gin.Context) (int64, bool) {
	raw := c.GetHeader(HeaderUserID)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid X-Sharer-User-Id header")
		return 0, false
	}
	return id, true
}

// pathID extracts a numeric path parameter, answering 400 on garbage.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// pageParams extracts from/size query parameters with their defaults.
// Non-numeric values are a 400; negative or zero values are left for the
// service layer to reject so the unknown-state check can fire first.
func pageParams(c *gin.Context) (int, int, bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		response.BadRequest(c, "invalid from")
		return 0, 0, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		response.BadRequest(c, "invalid size")
		return 0, 0, false
	}
	return from, size, true
}
