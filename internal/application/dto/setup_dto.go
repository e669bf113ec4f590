package dto

// SetupRequest bootstrap de uma instalação vazia: primeira empresa + primeiro
// admin, na mesma transação.
type SetupRequest struct {
	CompanyName string `json:"company_name"`
	CompanySlug string `json:"company_slug"`
	CNPJ        string `json:"cnpj"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// SetupResponse resultado do bootstrap.
type SetupResponse struct {
	Company CompanyResponse `json:"company"`
	User    UserResponse    `json:"user"`
}
