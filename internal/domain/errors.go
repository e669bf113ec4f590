package domain

// Error é o erro de aplicação exposto pela API. O envelope JSON devolvido ao
// cliente é sempre {name, message, action, status_code}; Cause fica apenas no
// log do servidor.
type Error struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	Action     string `json:"action"`
	StatusCode int    `json:"status_code"`
	Cause      error  `json:"-"`
}

// Nomes dos tipos de erro expostos no campo "name" do envelope.
const (
	NameValidationError     = "ValidationError"
	NameNotFoundError       = "NotFoundError"
	NameUnauthorizedError   = "UnauthorizedError"
	NameForbiddenError      = "ForbiddenError"
	NameInternalServerError = "InternalServerError"
)

func (e *Error) Error() string {
	return e.Message
}

// Unwrap expõe a causa original para errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewValidationError erro 400: entrada malformada, duplicada ou violando restrição.
func NewValidationError(message, action string) *Error {
	return &Error{
		Name:       NameValidationError,
		Message:    message,
		Action:     action,
		StatusCode: 400,
	}
}

// NewNotFoundError erro 404: nenhuma linha no escopo do tenant (cobre também linhas de outro tenant).
func NewNotFoundError(message, action string) *Error {
	return &Error{
		Name:       NameNotFoundError,
		Message:    message,
		Action:     action,
		StatusCode: 404,
	}
}

// NewUnauthorizedError erro 401: credenciais/sessão ausentes ou inválidas, ou tenant inativo.
func NewUnauthorizedError(message, action string) *Error {
	return &Error{
		Name:       NameUnauthorizedError,
		Message:    message,
		Action:     action,
		StatusCode: 401,
	}
}

// NewForbiddenError erro 403: autenticado mas sem papel/plano suficiente.
func NewForbiddenError(message, action string) *Error {
	return &Error{
		Name:       NameForbiddenError,
		Message:    message,
		Action:     action,
		StatusCode: 403,
	}
}

// NewInternalServerError erro 500 genérico; a causa nunca é ecoada ao cliente.
func NewInternalServerError(cause error) *Error {
	return &Error{
		Name:       NameInternalServerError,
		Message:    "Um erro interno não esperado aconteceu.",
		Action:     "Entre em contato com o suporte.",
		StatusCode: 500,
		Cause:      cause,
	}
}

// IsNotFound informa se err é um *Error com status 404.
func IsNotFound(err error) bool {
	e, ok := err.(*Error)
	return ok && e.StatusCode == 404
}

// IsUnauthorized informa se err é um *Error com status 401.
func IsUnauthorized(err error) bool {
	e, ok := err.(*Error)
	return ok && e.StatusCode == 401
}
