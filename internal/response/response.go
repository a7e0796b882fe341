// Package response maps application results and errors to HTTP responses.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-sharing/internal/apperr"
)

// Success writes a 200 response with the payload.
func Success(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 response with the payload.
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// BadRequest writes a 400 response with the message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// Error classifies the error and writes the matching status. Authorization
// failures on reads surface as NotFound, so they land on 404 like any other
// missing resource.
func Error(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperr.KindNotAvailable,
		apperr.KindInvalidInterval,
		apperr.KindStatusConflict,
		apperr.KindUnknownState,
		apperr.KindPagination:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
