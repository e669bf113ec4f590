package entity

import "time"

// Papéis válidos para User, em ordem hierárquica.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// roleLevels hierarquia total: admin(4) > manager(3) > operator(2) > viewer(1).
// Papéis desconhecidos valem 0 e nunca passam em nenhuma barreira.
var roleLevels = map[string]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleManager:  3,
	RoleAdmin:    4,
}

// RoleLevel devolve o nível hierárquico de um papel (0 para desconhecido).
func RoleLevel(role string) int {
	return roleLevels[role]
}

// User representa um usuário do back office (pertence a exatamente uma Company).
// Username é único por empresa (case-insensitive); email é único global.
type User struct {
	ID        string
	CompanyID string
	Username  string
	Email     string
	Password  string // hash bcrypt, nunca texto plano após persistir
	Role      string // admin, manager, operator, viewer
	Status    bool   // soft-active
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserWithCompany usuário com os dados da empresa resolvidos via JOIN.
type UserWithCompany struct {
	User
	CompanyName        string
	CompanySlug        string
	CompanyIsActive    bool
	SubscriptionPlan   string
	SubscriptionStatus string
}

// UserPatch campos atualizáveis de User. Password aqui é texto plano; o caso de
// uso faz o hash antes de persistir.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
	Role     *string
}

// Apply devolve uma cópia de u com os campos do patch aplicados.
// O hash da senha já deve ter sido calculado pelo chamador.
func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}
