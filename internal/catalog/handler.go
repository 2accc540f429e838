package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skincare-backend/internal/shared/server/respond"
)

// Handler exposes read-only catalog browsing.
type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.listProducts)
}

func (h *Handler) listProducts(c *gin.Context) {
	category := c.Query("type")
	if category == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "type query parameter is required", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	products, err := h.Repo.ListByType(c.Request.Context(), category, limit, offset)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown product type", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list products", nil)
		return
	}
	if products == nil {
		products = []Product{}
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"type":     category,
		"products": products,
	})
}
