package http

import (
	"net/http"

	"gomoku/internal/patterns"

	"github.com/gin-gonic/gin"
)

type PatternHandler struct {
	repo patterns.Repository
}

func NewPatternHandler(repo patterns.Repository) *PatternHandler {
	return &PatternHandler{repo: repo}
}

// List serves GET /patterns.
func (h *PatternHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": list})
}

// Get serves GET /patterns/:name.
func (h *PatternHandler) Get(c *gin.Context) {
	p, err := h.repo.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pattern": p})
}

// Save serves POST /patterns. Saving an existing name overwrites it.
func (h *PatternHandler) Save(c *gin.Context) {
	var req SavePatternRequest
	if !bindJSON(c, &req) {
		return
	}
	b, ok := parseBoard(c, req.Rows)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := h.repo.Save(ctx, patterns.Pattern{Name: req.Name, Board: b}); err != nil {
		handleError(c, err)
		return
	}
	p, err := h.repo.FindByName(ctx, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pattern": p})
}

// Delete serves DELETE /patterns/:name.
func (h *PatternHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("name")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
