package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

// pageLimit lê o limite da query string, com teto para proteger o banco
func pageLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultPageLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}

// stringCursor lê o cursor uuid da query string
func stringCursor(c *gin.Context) *string {
	raw := c.Query("cursor")
	if raw == "" {
		return nil
	}
	return &raw
}

// intCursor lê o cursor inteiro da query string; valor inválido é ignorado
func intCursor(c *gin.Context) *int64 {
	raw := c.Query("cursor")
	if raw == "" {
		return nil
	}

	cursor, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &cursor
}
