package adminusers

import "github.com/encodersih/alumni-connect/internal/domain/models"

type listResponse struct {
	Users      []models.User `json:"users"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

type createUserInput struct {
	Email     string `json:"email" validate:"required,email,max=254" label:"Email"`
	FirstName string `json:"first_name" validate:"required,max=100" label:"First name"`
	LastName  string `json:"last_name" validate:"required,max=100" label:"Last name"`
	UserType  string `json:"user_type" validate:"required,usertype" label:"User type"`
}

type setActiveInput struct {
	UserID   string `json:"user_id" validate:"required,objectid" label:"User"`
	IsActive *bool  `json:"is_active" validate:"required" label:"Active"`
}

type userResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
	Message string      `json:"message"`
}
