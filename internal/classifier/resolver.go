package classifier

import (
	"context"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

// Resolution descreve como um título chegou à sua categoria.
type Resolution struct {
	Label    string
	Rule     string // "semantico" quando nenhuma regra casou
	PosAcc   int
	PosHw    int
	Hardware string
}

// Resolver atribui a categoria base de um título.
type Resolver struct {
	rules    []Rule
	semantic *Semantic
}

// NewResolver monta o resolvedor com a lista canônica de regras. scorer pode
// ser nil: o fallback então responde "Outros".
func NewResolver(scorer Scorer) *Resolver {
	return NewResolverWithRules(Rules, scorer)
}

// NewResolverWithRules is NewResolver with a custom decision list.
func NewResolverWithRules(rules []Rule, scorer Scorer) *Resolver {
	own := make([]Rule, len(rules))
	copy(own, rules)
	for i := range own {
		if own[i].patterns == nil {
			own[i].compile()
		}
	}
	return &Resolver{rules: own, semantic: NewSemantic(scorer)}
}

// Resolve returns the base category of title. It never returns an empty label.
func (r *Resolver) Resolve(ctx context.Context, title string) string {
	return r.Explain(ctx, title).Label
}

// Explain é Resolve com o detalhe da regra e das posições usadas.
func (r *Resolver) Explain(ctx context.Context, title string) Resolution {
	folded := Fold(title)
	posHw, hwLabel := locateHardware(folded)

	for i := range r.rules {
		rule := &r.rules[i]
		posAcc := rule.Match(folded)
		if posAcc < 0 {
			continue
		}

		res := Resolution{Rule: rule.Name, PosAcc: posAcc, PosHw: posHw, Hardware: hwLabel}
		switch {
		case !rule.Positional:
			res.Label = rule.Label
			if rule.PreferHardware && posHw >= 0 {
				res.Label = hwLabel
			}
		case posHw < 0 || posAcc < posHw:
			res.Label = rule.Label
		case rule.HardwareLabel != "":
			res.Label = rule.HardwareLabel
		default:
			res.Label = hwLabel
		}
		return res
	}

	label := r.semantic.Label(ctx, title)
	if label == "" {
		label = model.CategoryOther
	}
	return Resolution{Label: label, Rule: "semantico", PosAcc: -1, PosHw: posHw, Hardware: hwLabel}
}
