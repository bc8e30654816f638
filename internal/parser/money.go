package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mvinis/monitoramento-precos-magalu/internal/observability"
)

var (
	reNumber = regexp.MustCompile(`[-+]?\d*\.\d+|\d+`)

	// ponto é milhar, vírgula é decimal
	currencyReplacer = strings.NewReplacer(
		"R$", "",
		"ou", "",
		".", "",
		",", ".",
		" ", "",
	)
)

// ParseAmount converte "R$ 1.299,50" em 1299.5. Nunca falha: qualquer texto
// inválido resulta em 0.0.
func ParseAmount(text string) float64 {
	if text == "" || strings.Contains(text, NotAvailable) {
		return 0.0
	}

	clean := currencyReplacer.Replace(Normalize(text))
	match := reNumber.FindString(clean)
	if match == "" {
		parseFailure("preco", text, nil)
		return 0.0
	}

	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		parseFailure("preco", text, err)
		return 0.0
	}
	return v
}

func parseFailure(field, text string, err error) {
	observability.ParseFailuresTotal.WithLabelValues(field).Inc()
	log.Warn().Err(err).Str("campo", field).Str("texto", text).Msg("[Parser] valor não reconhecido")
}
