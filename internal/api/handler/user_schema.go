package handler

import (
	"time"

	"github.com/nimbusid/identity-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type signupRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"omitempty,max=120"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateProfileRequest is the self-service patch: profile fields only,
// all optional.
type updateProfileRequest struct {
	Email    *string `json:"email,omitempty"     validate:"omitempty,email"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=120"`
	Password *string `json:"password,omitempty"  validate:"omitempty,min=8"`
}

// updateUserRequest is the admin patch; it may additionally reassign
// the role set.
type updateUserRequest struct {
	Email    *string  `json:"email,omitempty"     validate:"omitempty,email"`
	FullName *string  `json:"full_name,omitempty" validate:"omitempty,max=120"`
	Password *string  `json:"password,omitempty"  validate:"omitempty,min=8"`
	Roles    []string `json:"roles,omitempty"     validate:"omitempty,min=1,dive,oneof=user admin super-admin"`
}

// --- Response types ---

type listUsersResponse struct {
	Data []*domain.User `json:"data"`
}

type auditEntryResponse struct {
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type auditTrailResponse struct {
	UserID string               `json:"user_id"`
	Data   []auditEntryResponse `json:"data"`
}
