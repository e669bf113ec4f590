package entity

import "time"

// SessionTTL validade de uma sessão. Deslizante: renovada para agora+30d a cada
// leitura de /user, não acumulativa.
const SessionTTL = 30 * 24 * time.Hour

// Session sessão opaca de login. O token (48 bytes aleatórios em hex, 96
// caracteres) é a única credencial; é globalmente único.
type Session struct {
	ID        string
	Token     string
	UserID    string
	CompanyID string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveSession sessão válida com o contexto de usuário e empresa resolvido em
// uma única consulta (token confere, não expirada, usuário ativo, empresa ativa).
type ActiveSession struct {
	Session
	Username           string
	Email              string
	Role               string
	CompanyName        string
	CompanySlug        string
	SubscriptionPlan   string
	SubscriptionStatus string
}
