package points

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
	rg.GET("/points", h.Balance)
	rg.GET("/points/transactions", h.Transactions)
}

func (h *Handler) Balance(c *gin.Context) {
	w, err := h.service.Balance(c.Request.Context(), c.GetString("username"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load points balance")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"wallet": w})
}

func (h *Handler) Transactions(c *gin.Context) {
	txns, err := h.service.ListTransactions(c.Request.Context(), c.GetString("username"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load points transactions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"transactions": txns})
}
