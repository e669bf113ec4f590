package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bilheteria/bilheteria-api/internal/domain/slug"
)

func TestMake_RemoveAcentosEEspacos(t *testing.T) {
	assert.Equal(t, "festival-de-verao", slug.Make("Festival de Verão", 128))
	assert.Equal(t, "sao-joao-2026", slug.Make("São João 2026", 128))
	assert.Equal(t, "producoes-acustica", slug.Make("Produções & Acústica!", 128))
}

func TestMake_ColapsaEspacosEHifens(t *testing.T) {
	assert.Equal(t, "show-da-virada", slug.Make("  Show   da -- Virada  ", 128))
}

func TestMake_TruncaSemDeixarHifenNaBorda(t *testing.T) {
	got := slug.Make("Festa Junina do Interior", 12)
	assert.LessOrEqual(t, len(got), 12)
	assert.False(t, strings.HasSuffix(got, "-"), "slug truncado não deve terminar em hífen")
	assert.Equal(t, "festa-junina", got)
}

func TestMake_EntradaSoComSimbolos_DevolveVazio(t *testing.T) {
	assert.Equal(t, "", slug.Make("!!! ???", 128))
}

func TestWithSuffix_PreservaOSufixoAoTruncar(t *testing.T) {
	base := strings.Repeat("a", 20)

	got := slug.WithSuffix(base, "-2", 10)
	assert.Equal(t, 10, len(got))
	assert.True(t, strings.HasSuffix(got, "-2"), "o sufixo nunca é sacrificado no truncamento")

	// Quando cabe, base sai intacta.
	assert.Equal(t, "festival-2", slug.WithSuffix("festival", "-2", 64))
}
