package beneficiary

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
	rg.GET("/beneficiaries", h.List)
	rg.POST("/beneficiaries", h.Add)
	rg.PUT("/beneficiaries/:id", h.Update)
	rg.DELETE("/beneficiaries/:id", h.Delete)
	rg.POST("/beneficiaries/from-passengers", h.FromPassengers)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), c.GetString("username"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list beneficiaries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"beneficiaries": list})
}

func (h *Handler) Add(c *gin.Context) {
	var req AddBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Add(c.Request.Context(), c.GetString("username"), req)
	if err != nil {
		h.respondError(c, err, "Failed to add beneficiary")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"beneficiary": b})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.GetString("username"), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to update beneficiary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"beneficiary": b})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("username"), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete beneficiary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) FromPassengers(c *gin.Context) {
	var req FromPassengersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	added, err := h.service.FromPassengers(c.Request.Context(), c.GetString("username"), req.IDs)
	if err != nil {
		h.respondError(c, err, "Failed to convert passengers")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"beneficiaries": added})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var dup *DuplicateNameError
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrLimit):
		response.Error(c, http.StatusConflict, "LIMIT_REACHED", err.Error())
	case errors.As(err, &dup):
		response.Error(c, http.StatusConflict, "DUPLICATE_NAME", dup.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
