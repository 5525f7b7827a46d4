package response

import (
	"time"

	"bp_analytics/internal/domain/entities"
)

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSession(s entities.Session) LoginResponse {
	return LoginResponse{
		Token:     s.Token,
		Username:  s.Username,
		Name:      s.Name,
		Role:      s.Role,
		ExpiresAt: s.ExpiresAt,
	}
}
