package usecase

import (
	"regexp"
	"strings"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
	digitsOnly      = regexp.MustCompile(`\D`)
)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

func validRole(role string) bool {
	return entity.RoleLevel(role) > 0
}

func validPlan(plan string) bool {
	switch plan {
	case entity.PlanFree, entity.PlanPremium, entity.PlanEnterprise:
		return true
	}
	return false
}

func validSubscriptionStatus(status string) bool {
	switch status {
	case entity.SubscriptionActive, entity.SubscriptionSuspended, entity.SubscriptionCancelled:
		return true
	}
	return false
}

// normalizeDocument remove tudo que não for dígito (CPF/CNPJ chegam com ou sem
// pontuação).
func normalizeDocument(doc string) string {
	return digitsOnly.ReplaceAllString(strings.TrimSpace(doc), "")
}

func validCNPJ(cnpj string) bool {
	return len(cnpj) == 14
}

func validCpfCnpj(doc string) bool {
	return len(doc) == 11 || len(doc) == 14
}
