package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes tamanho do token de sessão antes da codificação hex (96 caracteres
// no final).
const tokenBytes = 48

// NewSessionToken gera um token de sessão opaco com aleatoriedade criptográfica.
func NewSessionToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
