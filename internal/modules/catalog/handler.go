package catalog

import (
	"net/http"

	"railticket/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/trains", h.Search)
	rg.GET("/trains/:code", h.Get)
}

func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	trains := h.service.Search(q.Origin, q.Dest, q.HighSpeed)
	response.Success(c, http.StatusOK, gin.H{"trains": trains})
}

func (h *Handler) Get(c *gin.Context) {
	t, ok := h.service.Get(c.Param("code"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Train not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"train": t})
}
