package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost custo fixo de hashing. Subir o custo invalida a comparação de
// tempos com hashes antigos, não os hashes em si.
const bcryptCost = 14

// HashPassword gera o hash bcrypt da senha em texto plano.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compara a senha em texto plano com o hash persistido.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
