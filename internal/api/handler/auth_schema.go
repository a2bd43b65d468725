package handler

import "github.com/pixelforge/agency-api/internal/core/domain"

type registerRequest struct {
	Username    string `json:"username"     validate:"required,min=3,max=32"`
	Password    string `json:"password"     validate:"required,min=8"`
	Email       string `json:"email"        validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required"`
	Company     string `json:"company"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"` // username or email
	Password string `json:"password" validate:"required"`
}

type federatedLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type resendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type createClientRequest struct {
	Username    string `json:"username"     validate:"required,min=3,max=32"`
	Password    string `json:"password"     validate:"required,min=8"`
	Email       string `json:"email"        validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required"`
	Company     string `json:"company"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
