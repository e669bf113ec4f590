package dto

import "time"

// LoginRequest credenciais de login. Duas formas aceitas: email+password ou
// username+company_slug+password. Qualquer outra combinação é rejeitada antes
// de tocar o banco.
type LoginRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	CompanySlug string `json:"company_slug"`
	Password    string `json:"password"`
}

// SessionResponse sessão criada no login. O token também é entregue via cookie.
type SessionResponse struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CompanyID string    `json:"company_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LogoutResponse resultado do encerramento de sessão.
type LogoutResponse struct {
	RevokedSessions int64 `json:"revoked_sessions"`
}
