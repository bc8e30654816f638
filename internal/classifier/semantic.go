package classifier

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
	"github.com/mvinis/monitoramento-precos-magalu/internal/observability"
)

// LabelScore is one (label, score) pair returned by a Scorer.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Scorer is the zero-shot scoring capability: it scores a title against a
// fixed label vocabulary. Implementations must be safe for concurrent use.
type Scorer interface {
	Classify(ctx context.Context, title string) ([]LabelScore, error)
}

const (
	ConfidentThreshold  = 0.95
	DominanceThreshold  = 0.999
	DominanceMargin     = 0.01
	BestEffortThreshold = 0.70

	comboSeparator = " + "
)

// Semantic aplica a política de confiança sobre um Scorer opcional.
// Um Semantic nil ou sem Scorer sempre responde "Outros".
type Semantic struct {
	scorer Scorer
}

func NewSemantic(scorer Scorer) *Semantic {
	return &Semantic{scorer: scorer}
}

// Label classifica o título. Qualquer falha do Scorer vira "Outros".
func (s *Semantic) Label(ctx context.Context, title string) (label string) {
	if s == nil || s.scorer == nil {
		observability.ClassifierResultTotal.WithLabelValues("indisponivel").Inc()
		return model.CategoryOther
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("titulo", title).Str("panic", fmt.Sprint(r)).Msg("[Classifier] pânico no classificador semântico")
			observability.ClassifierResultTotal.WithLabelValues("erro").Inc()
			label = model.CategoryOther
		}
	}()

	scores, err := s.scorer.Classify(ctx, title)
	if err != nil {
		log.Error().Err(err).Str("titulo", title).Msg("[Classifier] erro crítico na classificação")
		observability.ClassifierResultTotal.WithLabelValues("erro").Inc()
		return model.CategoryOther
	}

	label, outcome := applyPolicy(scores)
	observability.ClassifierResultTotal.WithLabelValues(outcome).Inc()
	log.Debug().Str("titulo", title).Str("resultado", outcome).Str("label", label).Msg("[Classifier] classificação semântica")
	return label
}

// ApplyPolicy reduz os scores a um label:
//   - labels com score > 0.95 formam o conjunto confiável;
//   - com mais de um confiável, o primeiro vence sozinho se passar de 0.999 e
//     abrir mais de 0.01 sobre o segundo; senão todos viram um combo;
//   - sem confiáveis, o melhor vale se passar de 0.70; senão "Outros".
func ApplyPolicy(scores []LabelScore) string {
	label, _ := applyPolicy(scores)
	return label
}

func applyPolicy(scores []LabelScore) (string, string) {
	if len(scores) == 0 {
		return model.CategoryOther, "vazio"
	}

	ranked := make([]LabelScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	var confident []string
	for _, ls := range ranked {
		if ls.Score > ConfidentThreshold {
			confident = append(confident, ls.Label)
		}
	}

	switch {
	case len(confident) > 1:
		best, second := ranked[0].Score, ranked[1].Score
		if best > DominanceThreshold && best-second > DominanceMargin {
			return ranked[0].Label, "dominante"
		}
		return strings.Join(confident, comboSeparator), "combo"
	case len(confident) == 1:
		return confident[0], "confiante"
	case ranked[0].Score > BestEffortThreshold:
		return ranked[0].Label, "melhor_esforco"
	default:
		return model.CategoryOther, "baixa_confianca"
	}
}
