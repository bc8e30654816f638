package app

import (
	"context"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/mvinis/monitoramento-precos-magalu/internal/classifier"
	"github.com/mvinis/monitoramento-precos-magalu/internal/config"
	"github.com/mvinis/monitoramento-precos-magalu/internal/db"
	"github.com/mvinis/monitoramento-precos-magalu/internal/repository"
)

// NewResolver monta o resolvedor de categorias com o classificador semântico
// criado uma única vez para o processo. Sem chave da OpenAI (ou com useAI
// false) o fallback responde "Outros". O cache no Redis é opcional.
func NewResolver(ctx context.Context, cfg *config.Config, useAI bool) (*classifier.Resolver, func()) {
	noop := func() {}
	if !useAI {
		log.Info().Msg("[Classifier] classificador semântico desativado")
		return classifier.NewResolver(nil), noop
	}
	if cfg.OpenAIKey == "" {
		log.Warn().Msg("[Classifier] OPENAI_API_KEY ausente, fallback semântico responde Outros")
		return classifier.NewResolver(nil), noop
	}

	var scorer classifier.Scorer = classifier.NewOpenAIScorer(openai.NewClient(cfg.OpenAIKey), cfg.ClassifierModel)

	if cfg.RedisURL == "" {
		return classifier.NewResolver(scorer), noop
	}
	client, err := classifier.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("[Classifier] redis indisponível, seguindo sem cache")
		return classifier.NewResolver(scorer), noop
	}
	log.Info().Dur("ttl", cfg.CacheTTL).Msg("[Classifier] cache de classificação no redis ativo")

	cached := &classifier.CachedScorer{Client: client, Next: scorer, TTL: cfg.CacheTTL}
	return classifier.NewResolver(cached), func() { client.Close() }
}

// Stores agrupa os repositórios do Postgres.
type Stores struct {
	Raw      *repository.RawRepository
	Products *repository.ProductRepository
	close    func()
}

func (s *Stores) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// OpenStores conecta no Postgres (lib/pq para a fila bruta, pgxpool para os
// registros estruturados) e garante o schema.
func OpenStores(ctx context.Context, databaseURL string) (*Stores, error) {
	conn, err := db.New(databaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &Stores{
		Raw:      &repository.RawRepository{DB: conn},
		Products: &repository.ProductRepository{DB: pool},
		close: func() {
			pool.Close()
			conn.Close()
		},
	}, nil
}
