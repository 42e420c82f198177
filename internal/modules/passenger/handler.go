package passenger

import (
	"errors"
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
	rg.GET("/passengers", h.List)
	rg.POST("/passengers", h.Add)
	rg.PUT("/passengers/:id", h.Update)
	rg.DELETE("/passengers/:id", h.DeleteOne)
	rg.DELETE("/passengers", h.DeleteMany)
}

func (h *Handler) List(c *gin.Context) {
	passengers, err := h.service.List(c.Request.Context(), c.GetString("username"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list passengers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"passengers": passengers})
}

func (h *Handler) Add(c *gin.Context) {
	var req AddPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Add(c.Request.Context(), c.GetString("username"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid passenger")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add passenger")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"passenger": p})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.GetString("username"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Passenger not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update passenger")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"passenger": p})
}

func (h *Handler) DeleteOne(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("username"), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete passenger")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) DeleteMany(c *gin.Context) {
	var req DeletePassengersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetString("username"), req.IDs...); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No ids given")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete passengers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
