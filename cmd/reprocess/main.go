package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mvinis/monitoramento-precos-magalu/internal/app"
	"github.com/mvinis/monitoramento-precos-magalu/internal/builder"
	"github.com/mvinis/monitoramento-precos-magalu/internal/config"
	"github.com/mvinis/monitoramento-precos-magalu/internal/logger"
	"github.com/mvinis/monitoramento-precos-magalu/internal/observability"
	"github.com/mvinis/monitoramento-precos-magalu/internal/pipeline"
)

// Reestrutura os produtos brutos pendentes no Postgres com as regras atuais.
// go run cmd/reprocess/main.go -limit=1000
func main() {
	limit := flag.Int("limit", 500, "Máximo de produtos pendentes por execução")
	noAI := flag.Bool("no-ai", false, "Desativa o classificador semântico")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logFile, err := logger.Setup(cfg.Env, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup logger: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL é obrigatório para o reprocessamento")
	}

	ctx := context.Background()
	observability.Start(cfg.MetricsPort)

	stores, err := app.OpenStores(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao conectar no Postgres")
	}
	defer stores.Close()

	resolver, closeResolver := app.NewResolver(ctx, cfg, !*noAI)
	defer closeResolver()

	rows, err := stores.Raw.ListPending(*limit)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao listar produtos pendentes")
	}
	log.Info().Int("pendentes", len(rows)).Msg("Iniciando reprocessamento")

	items := make([]pipeline.Item, len(rows))
	for i, row := range rows {
		items[i] = pipeline.Item{Raw: row.Raw, Context: row.Context}
	}

	records := pipeline.Run(ctx, items, builder.New(resolver), cfg.WorkerCount)

	saved := 0
	for i, rec := range records {
		if err := stores.Products.Save(ctx, rec); err != nil {
			log.Warn().Err(err).Str("id", rec.Produto.IDSite).Msg("Erro ao salvar registro estruturado")
			continue
		}
		if err := stores.Raw.MarkAsProcessed(rows[i].Raw.IDProduto); err != nil {
			log.Warn().Err(err).Str("id", rows[i].Raw.IDProduto).Msg("Erro ao marcar produto como processado")
			continue
		}
		saved++
	}

	summary, err := stores.Products.SummaryByCategory(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Erro ao gerar resumo por categoria")
	}
	for _, c := range summary {
		log.Info().Str("categoria", c.Categoria).Int("total", c.Total).Int("bundles", c.Bundles).Msg("[Resumo]")
	}

	log.Info().Int("salvos", saved).Int("pendentes", len(rows)).Msg("Reprocessamento finalizado")
}
