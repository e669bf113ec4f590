package dto

import "time"

// CreateUserRequest criação de usuário na empresa do chamador.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest patch parcial de usuário. Ponteiro nil = campo não enviado.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// UserResponse usuário sem o hash de senha.
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentUserResponse usuário autenticado com o contexto da empresa, devolvido
// por GET /user.
type CurrentUserResponse struct {
	UserResponse
	CompanyName        string    `json:"company_name"`
	CompanySlug        string    `json:"company_slug"`
	SubscriptionPlan   string    `json:"subscription_plan"`
	SubscriptionStatus string    `json:"subscription_status"`
	SessionExpiresAt   time.Time `json:"session_expires_at"`
}
