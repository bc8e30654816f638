// Package classifier decide a categoria base de um título e se ele anuncia um bundle.
//
// Todas as heurísticas operam sobre o título "dobrado" (minúsculo e sem acentos),
// de modo que as tabelas de palavras-chave são escritas sem acento.
package classifier

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips diacritics ("Relógio Câm" -> "relogio cam").
func Fold(s string) string {
	lower := strings.ToLower(s)
	// transform.Chain guarda estado, então é criado a cada chamada
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return out
}
