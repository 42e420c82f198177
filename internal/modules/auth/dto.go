package auth

import "railticket/internal/domain"

type RegisterRequest struct {
	Username        string             `json:"username" binding:"required"`
	Password        string             `json:"password" binding:"required"`
	ConfirmPassword string             `json:"confirmPassword" binding:"required"`
	IDType          domain.IDType      `json:"idType" binding:"required"`
	FullName        string             `json:"fullName" binding:"required"`
	IDNo            string             `json:"idNo" binding:"required"`
	Benefit         domain.BenefitType `json:"benefit"`
	Email           string             `json:"email"`
	PhoneCode       string             `json:"phoneCode" binding:"required"`
	PhoneNumber     string             `json:"phoneNumber" binding:"required"`
}

type LoginRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetRequestRequest struct {
	Account string `json:"account" binding:"required"`
}

type ResetVerifyRequest struct {
	Account string `json:"account" binding:"required"`
	Code    string `json:"code" binding:"required"`
}

type ResetConfirmRequest struct {
	Account     string `json:"account" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type QrConfirmRequest struct {
	Account string `json:"account" binding:"required"`
}
