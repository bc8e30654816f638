package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

// Candidate é uma hipótese apresentada ao modelo e o label canônico que ela representa.
type Candidate struct {
	Hypothesis string
	Label      string
}

// DefaultCandidates é o vocabulário fixo do classificador semântico.
var DefaultCandidates = []Candidate{
	{"Smartphone e Celular", model.CategorySmartphone},
	{"Fone de Ouvido e Áudio", model.CategoryAudio},
	{"Carregador e Cabo", model.CategoryCharger},
	{"Capa e Película", model.CategoryProtection},
	{"Smartwatch e Wearable", model.CategorySmartwatch},
	{"Tablet", model.CategoryTablet},
	{"Chip", model.CategoryChip},
	{"Suporte", model.CategorySupport},
	{"Proteção", model.CategoryProtection},
	{"Bluetooth", model.CategoryAccessory},
	{"Bateria", model.CategoryCharger},
	{"Console", model.CategoryConsole},
}

const hypothesisTemplate = "Este produto é um %s"

// OpenAIScorer faz classificação zero-shot multi-rótulo via chat completion em modo JSON.
type OpenAIScorer struct {
	Client     *openai.Client
	Model      string
	Candidates []Candidate
}

// NewOpenAIScorer builds the scorer once per process; the client is safe for
// concurrent use and is never mutated afterwards.
func NewOpenAIScorer(client *openai.Client, modelName string) *OpenAIScorer {
	log.Info().Str("modelo", modelName).Int("labels", len(DefaultCandidates)).Msg("[Classifier] classificador semântico carregado")
	return &OpenAIScorer{
		Client:     client,
		Model:      modelName,
		Candidates: DefaultCandidates,
	}
}

type scoreResponse struct {
	Scores map[string]float64 `json:"scores"`
}

func (s *OpenAIScorer) systemPrompt() string {
	var sb strings.Builder
	sb.WriteString("Você é um classificador zero-shot multi-rótulo de produtos de e-commerce.\n")
	sb.WriteString("Para cada hipótese abaixo, estime de forma independente a probabilidade (0 a 1) de ela ser verdadeira para o título recebido.\n")
	sb.WriteString("Responda apenas com JSON no formato {\"scores\": {\"<rótulo>\": <probabilidade>}} usando exatamente os rótulos listados.\n\n")
	sb.WriteString("HIPÓTESES:\n")
	for _, c := range s.Candidates {
		sb.WriteString("- " + c.Hypothesis + ": " + fmt.Sprintf(hypothesisTemplate, c.Hypothesis) + "\n")
	}
	return sb.String()
}

// Classify devolve os labels canônicos ordenados por score decrescente. Hipóteses
// que apontam para o mesmo label ficam com o maior score.
func (s *OpenAIScorer) Classify(ctx context.Context, title string) ([]LabelScore, error) {
	resp, err := s.Client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: s.systemPrompt()},
				{Role: openai.ChatMessageRoleUser, Content: title},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion sem escolhas")
	}

	var parsed scoreResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}

	best := make(map[string]float64, len(s.Candidates))
	order := make([]string, 0, len(s.Candidates))
	for _, c := range s.Candidates {
		score := clamp(parsed.Scores[c.Hypothesis])
		prev, seen := best[c.Label]
		if !seen {
			order = append(order, c.Label)
		}
		if !seen || score > prev {
			best[c.Label] = score
		}
	}

	ranked := make([]LabelScore, 0, len(order))
	for _, label := range order {
		ranked = append(ranked, LabelScore{Label: label, Score: best[label]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	for _, ls := range ranked {
		log.Debug().Str("label", ls.Label).Float64("score", ls.Score).Bool("confiavel", ls.Score > ConfidentThreshold).Msg("[Classifier] score")
	}
	return ranked, nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
