// Package slug gera identificadores de URL a partir de nomes livres:
// remove acentos, minúsculas, troca espaços por hífens e limita o tamanho.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars   = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	hyphenRuns     = regexp.MustCompile(`-+`)
)

// Make converte um texto livre em slug com no máximo maxLen caracteres.
// "Festival de Verão" -> "festival-de-verao".
func Make(text string, maxLen int) string {
	s := strings.ToLower(text)

	// Decompõe em NFD e descarta as marcas de acentuação (Mn).
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if normalized, _, err := transform.String(t, s); err == nil {
		s = normalized
	}

	s = invalidChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")

	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return strings.Trim(s, "-")
}

// WithSuffix devolve base + sufixo numérico garantindo que o resultado não
// ultrapasse maxLen (a base é truncada se necessário).
func WithSuffix(base, suffix string, maxLen int) string {
	maxBase := maxLen - len(suffix)
	if len(base) > maxBase {
		base = base[:maxBase]
	}
	return base + suffix
}
