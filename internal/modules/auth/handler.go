package auth

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

// RegisterPublicRoutes mounts everything reachable without a token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/reset/request", h.ResetRequest)
	rg.POST("/auth/reset/verify", h.ResetVerify)
	rg.POST("/auth/reset/confirm", h.ResetConfirm)
	rg.POST("/auth/qr", h.QrCreate)
	rg.GET("/auth/qr/:id", h.QrStatus)
	rg.POST("/auth/qr/:id/scan", h.QrScan)
	rg.POST("/auth/qr/:id/confirm", h.QrConfirm)
	rg.GET("/auth/session", h.Session)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/logout", h.Logout)
	rg.GET("/users/me", h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountExists):
			response.Error(c, http.StatusConflict, "ACCOUNT_EXISTS", err.Error())
		case errors.Is(err, ErrInvalidUsername), errors.Is(err, ErrInvalidEmail),
			errors.Is(err, ErrInvalidPhone), errors.Is(err, ErrInvalidIDNo),
			errors.Is(err, ErrPasswordTooShort), errors.Is(err, ErrPasswordMismatch):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": u})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, u, err := h.service.Login(c.Request.Context(), req.Account, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrWrongPassword):
			response.Error(c, http.StatusUnauthorized, "AUTH_FAILED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token, "user": u})
}

func (h *Handler) ResetRequest(c *gin.Context) {
	var req ResetRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	// no mail/SMS channel: the code goes straight back to the page
	code, err := h.service.RequestReset(c.Request.Context(), req.Account)
	if err != nil {
		h.respondResetError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"code": code})
}

func (h *Handler) ResetVerify(c *gin.Context) {
	var req ResetVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.VerifyResetCode(c.Request.Context(), req.Account, req.Code); err != nil {
		h.respondResetError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"verified": true})
}

func (h *Handler) ResetConfirm(c *gin.Context) {
	var req ResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req.Account, req.Code, req.NewPassword); err != nil {
		h.respondResetError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reset": true})
}

func (h *Handler) respondResetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrResetAccountNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrCodeNotSent), errors.Is(err, ErrCodeExpired), errors.Is(err, ErrCodeMismatch):
		response.Error(c, http.StatusBadRequest, "CODE_INVALID", err.Error())
	case errors.Is(err, ErrWeakPassword):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Password reset failed")
	}
}

func (h *Handler) QrCreate(c *gin.Context) {
	q, content, err := h.service.CreateQrSession(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create qr session")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"qr": q, "content": content})
}

func (h *Handler) QrStatus(c *gin.Context) {
	q, err := h.service.QrSessionStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load qr session")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"qr": q})
}

func (h *Handler) QrScan(c *gin.Context) {
	q, err := h.service.MarkQrScanned(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrQrSessionExpired) {
			response.Error(c, http.StatusGone, "QR_EXPIRED", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update qr session")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"qr": q})
}

func (h *Handler) QrConfirm(c *gin.Context) {
	var req QrConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, q, err := h.service.MarkQrConfirmed(c.Request.Context(), c.Param("id"), req.Account)
	if err != nil {
		switch {
		case errors.Is(err, ErrQrSessionExpired):
			response.Error(c, http.StatusGone, "QR_EXPIRED", err.Error())
		case errors.Is(err, ErrAccountNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to confirm qr session")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"token": token, "qr": q})
}

func (h *Handler) Session(c *gin.Context) {
	sess, err := h.service.GetSession(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load session")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log out")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.service.Me(c.Request.Context(), c.GetString("username"))
	if err != nil {
		if errors.Is(err, ErrResetAccountNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}
