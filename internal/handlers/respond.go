package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"isms-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// writeError maps repository errors to client-facing status codes without
// leaking internals.
func writeError(c *gin.Context, err error) {
	var (
		validationErr *repository.ValidationError
		fkErr         *repository.ForeignKeyError
		uniqueErr     *repository.UniquenessError
	)

	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &validationErr), errors.As(err, &fkErr), errors.As(err, &uniqueErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// idParam parses a numeric path parameter; on failure it writes a 400 and
// returns false.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
