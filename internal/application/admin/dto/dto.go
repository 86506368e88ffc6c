package dto

import (
	"time"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/mapper"
)

// AdminUserDTO never carries the password hash.
type AdminUserDTO struct {
	ID        string     `json:"_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Aadhaar   string     `json:"aadhaar"`
	Mobile    string     `json:"mobile"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
	Active    bool       `json:"active"`
}

type SignupRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Aadhaar   string `json:"aadhaar"`
	Mobile    string `json:"mobile"`
	Role      string `json:"role" binding:"omitempty,oneof=admin staff"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Message   string        `json:"message"`
	Admin     *AdminUserDTO `json:"admin"`
}

type PrincipalDTO struct {
	AdminID   string `json:"admin_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
}

func ToAdminUserDTO(u *admin.User) *AdminUserDTO {
	if u == nil {
		return nil
	}
	return &AdminUserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Aadhaar:   u.Aadhaar(),
		Mobile:    u.Mobile(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
		LastLogin: u.LastLogin(),
		Active:    u.IsActive(),
	}
}

func ToAdminUserDTOList(users []*admin.User) []*AdminUserDTO {
	return mapper.MapSlice(users, ToAdminUserDTO)
}

func ToPrincipalDTO(p *admin.Principal) *PrincipalDTO {
	if p == nil {
		return nil
	}
	return &PrincipalDTO{
		AdminID:   p.AdminID,
		Username:  p.Username,
		Role:      p.Role.String(),
		SessionID: p.SessionID,
	}
}
