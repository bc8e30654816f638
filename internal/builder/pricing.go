package builder

import (
	"strings"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
	"github.com/mvinis/monitoramento-precos-magalu/internal/parser"
)

const comboSeparator = " + "

// ComputeDiscount devolve o desconto absoluto e percentual, arredondados em 2
// casas. Só há desconto quando original > current > 0.
func ComputeDiscount(original, current float64) (amount, pct float64, ok bool) {
	if current <= 0 || original <= current {
		return 0, 0, false
	}
	amount = parser.Round2(original - current)
	pct = parser.Round2(amount / original * 100)
	return amount, pct, true
}

// ComposeCategory monta o label final. Para bundles o label é a categoria base
// seguida dos tokens do título, sem repetição; se nada além da base aparecer,
// vira "<base> + Acessório". "Outros" nunca é composto.
func ComposeCategory(base string, decision model.BundleDecision) string {
	if !decision.IsBundle || base == model.CategoryOther {
		return base
	}

	parts := strings.Split(base, comboSeparator)
	seen := make(map[string]bool, len(parts)+len(decision.Tokens))
	for _, p := range parts {
		seen[p] = true
	}
	for _, tok := range decision.Tokens {
		if !seen[tok] {
			seen[tok] = true
			parts = append(parts, tok)
		}
	}

	if len(parts) == 1 {
		if base == model.CategoryAccessory {
			return base
		}
		return base + comboSeparator + model.CategoryAccessory
	}
	return strings.Join(parts, comboSeparator)
}
