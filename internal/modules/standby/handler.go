package standby

import (
	"errors"
	"net/http"

	"railticket/internal/pkg/response"
	"railticket/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/standbys", h.Create)
	rg.GET("/standbys", h.List)
	rg.GET("/standbys/:id", h.Get)
	rg.POST("/standbys/:id/pay", h.Pay)
	rg.POST("/standbys/:id/cancel", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateStandbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid standby request")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create standby request")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"standby": r})
}

func (h *Handler) List(c *gin.Context) {
	standbys, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list standby requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"standbys": standbys})
}

// Get doubles as the polling endpoint: reading a matching request
// resolves it against the clock before responding.
func (h *Handler) Get(c *gin.Context) {
	r, err := h.service.CheckStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to load standby request")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"standby": r})
}

func (h *Handler) Pay(c *gin.Context) {
	r, err := h.service.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to pay standby request")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"standby": r})
}

func (h *Handler) Cancel(c *gin.Context) {
	r, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to cancel standby request")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"standby": r})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Standby request not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
