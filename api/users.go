package api

import "time"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AlreadyLoggedInResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Email     string    `json:"email"`
	RoleId    int       `json:"roleId"`
	IsAdmin   bool      `json:"isAdmin"`
	AccountId int       `json:"accountId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Role struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	IsAdmin bool   `json:"isAdmin"`
}

type CreateRoleRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Type    string `json:"type" validate:"required,min=1,max=50"`
	IsAdmin bool   `json:"isAdmin"`
}

type UpdateRoleRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Type    *string `json:"type" validate:"omitempty,min=1,max=50"`
	IsAdmin *bool   `json:"isAdmin"`
}

type RoleResponse struct {
	Role Role `json:"role"`
}

type RoleListResponse struct {
	Roles []Role `json:"roles"`
}
