package order

import (
	"errors"
	"net/http"

	"railticket/internal/pkg/response"
	"railticket/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	points  PointsCreditor
}

func NewHandler(service *Service, points PointsCreditor) *Handler {
	return &Handler{service: service, points: points}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.Create)
	rg.GET("/orders", h.List)
	rg.GET("/orders/:id", h.Get)
	rg.POST("/orders/:id/pay", h.Pay)
	rg.POST("/orders/:id/cancel", h.Cancel)
	rg.POST("/orders/:id/refund", h.Refund)
	rg.POST("/orders/:id/destination", h.ChangeDestination)
	rg.POST("/orders/:id/reschedule", h.Reschedule)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": o})
}

func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order": o})
}

func (h *Handler) Pay(c *gin.Context) {
	o, err := h.service.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondTransitionError(c, err, "Failed to pay order")
		return
	}

	// member points: whole yuan of the fare per passenger
	if h.points != nil {
		if username := c.GetString("username"); username != "" {
			amount := int64(o.Item.Price) * int64(len(o.Passengers))
			_ = h.points.Credit(c.Request.Context(), username, amount)
		}
	}

	response.Success(c, http.StatusOK, gin.H{"order": o})
}

func (h *Handler) Cancel(c *gin.Context) {
	o, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondTransitionError(c, err, "Failed to cancel order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order": o})
}

func (h *Handler) Refund(c *gin.Context) {
	o, err := h.service.Refund(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondTransitionError(c, err, "Failed to refund order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order": o})
}

func (h *Handler) ChangeDestination(c *gin.Context) {
	var req ChangeDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	o, err := h.service.ChangeDestination(c.Request.Context(), c.Param("id"), req.Dest)
	if err != nil {
		h.respondTransitionError(c, err, "Failed to change destination")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order": o})
}

func (h *Handler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	o, err := h.service.RescheduleDate(c.Request.Context(), c.Param("id"), req.Date)
	if err != nil {
		h.respondTransitionError(c, err, "Failed to reschedule order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order": o})
}

func (h *Handler) respondTransitionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusConflict, "INVALID_STATUS", err.Error())
	case errors.Is(err, ErrRefundWindowClosed):
		response.Error(c, http.StatusConflict, "REFUND_WINDOW_CLOSED", err.Error())
	case errors.Is(err, ErrDateInPast):
		response.Error(c, http.StatusBadRequest, "DATE_IN_PAST", err.Error())
	case errors.Is(err, ErrRescheduleUsed):
		response.Error(c, http.StatusConflict, "RESCHEDULE_USED", err.Error())
	case errors.Is(err, ErrRescheduleBlocked):
		response.Error(c, http.StatusConflict, "RESCHEDULE_BLOCKED", err.Error())
	case errors.Is(err, ErrRescheduleWindow):
		response.Error(c, http.StatusConflict, "RESCHEDULE_WINDOW", err.Error())
	case errors.Is(err, ErrAlreadyDeparted):
		response.Error(c, http.StatusConflict, "ALREADY_DEPARTED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
