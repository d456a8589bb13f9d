//go:build unit

package chat_test

import (
	"testing"

	"salon-reservas/internal/domain/chat"

	"github.com/stretchr/testify/assert"
)

const fallback = "No entendí tu consulta."

func testMatcher() *chat.Matcher {
	return chat.NewMatcher([]chat.Entry{
		{Keywords: []string{"precio", "costo", "valor"}, Answer: "Los precios varían según la fecha."},
		{Keywords: []string{"horario", "hora"}, Answer: "El horario es de 11:00 a 20:00."},
		{Keywords: []string{"capacidad", "personas", "valor"}, Answer: "Hasta 80 personas."},
	}, fallback)
}

func TestMatcherReply(t *testing.T) {
	m := testMatcher()

	t.Run("single keyword hit", func(t *testing.T) {
		assert.Equal(t, "El horario es de 11:00 a 20:00.", m.Reply("¿cuál es el horario?"))
	})

	t.Run("accent insensitive", func(t *testing.T) {
		assert.Equal(t, "Los precios varían según la fecha.", m.Reply("cuanto cuesta? dime el PRECIO"))
	})

	t.Run("best score wins", func(t *testing.T) {
		// "capacidad" and "personas" give the third entry two hits against
		// one for the first entry's "valor".
		assert.Equal(t, "Hasta 80 personas.", m.Reply("capacidad para cuantas personas y valor"))
	})

	t.Run("tie resolves to the earlier entry", func(t *testing.T) {
		// "valor" appears in the first and third entries.
		assert.Equal(t, "Los precios varían según la fecha.", m.Reply("valor"))
	})

	t.Run("no hits falls back", func(t *testing.T) {
		assert.Equal(t, fallback, m.Reply("quiero hablar con un humano"))
	})

	t.Run("empty message falls back", func(t *testing.T) {
		assert.Equal(t, fallback, m.Reply("   "))
	})

	t.Run("keywords match whole words only", func(t *testing.T) {
		assert.Equal(t, fallback, m.Reply("valoración"))
	})
}

func TestDefaultCatalogue(t *testing.T) {
	m := chat.NewMatcher(chat.DefaultEntries, chat.DefaultFallback)

	assert.NotEqual(t, chat.DefaultFallback, m.Reply("¿dónde queda el salón?"))
	assert.NotEqual(t, chat.DefaultFallback, m.Reply("tienen pileta?"))
	assert.Equal(t, chat.DefaultFallback, m.Reply("xyzzy"))
}
