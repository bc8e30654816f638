package classifier

import (
	"regexp"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

type compositionTerm struct {
	re    *regexp.Regexp
	label string
}

// Mapa palavra -> token usado na montagem do label de bundle. A ordem de
// declaração é a ordem de saída.
var compositionTerms = []compositionTerm{
	{regexp.MustCompile(`\b(?:smartphones?|celular(?:es)?|iphone|galaxy [amsz] ?\d|moto [ge]\d|redmi)\b`), model.CategorySmartphone},
	{regexp.MustCompile(`\b(?:smart ?watch(?:es)?|relogios?|apple watch|galaxy watch|amazfit)\b`), model.CategorySmartwatch},
	{regexp.MustCompile(`\b(?:smart ?bands?|mi ?band)\b`), model.CategorySmartband},
	{regexp.MustCompile(`\b(?:fones?|headsets?|earbuds?|airpods|caixa de som)\b`), model.CategoryAudio},
	{regexp.MustCompile(`\b(?:carregador(?:es)?|fontes?|power ?bank)\b`), model.CategoryCharger},
	{regexp.MustCompile(`\bcabos?\b`), model.TokenCable},
	{regexp.MustCompile(`\b(?:capas?|capinhas?|cases?)\b`), model.TokenCase},
	{regexp.MustCompile(`\bpeliculas?\b`), model.TokenFilm},
	{regexp.MustCompile(`\b(?:pulseiras?|correias?)\b`), model.TokenStrap},
}

// Bundle roda as duas checagens de bundle e, quando positivo, lista os tokens
// de categoria citados no título.
func Bundle(title string) model.BundleDecision {
	if !DetectBundle(title) {
		return model.BundleDecision{}
	}

	folded := Fold(title)
	var tokens []string
	for _, term := range compositionTerms {
		if term.re.MatchString(folded) {
			tokens = append(tokens, term.label)
		}
	}
	return model.BundleDecision{IsBundle: true, Tokens: tokens}
}
