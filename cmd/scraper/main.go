package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mvinis/monitoramento-precos-magalu/internal/app"
	"github.com/mvinis/monitoramento-precos-magalu/internal/builder"
	"github.com/mvinis/monitoramento-precos-magalu/internal/config"
	"github.com/mvinis/monitoramento-precos-magalu/internal/crawler"
	"github.com/mvinis/monitoramento-precos-magalu/internal/logger"
	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
	"github.com/mvinis/monitoramento-precos-magalu/internal/observability"
	"github.com/mvinis/monitoramento-precos-magalu/internal/pipeline"
	"github.com/mvinis/monitoramento-precos-magalu/internal/storage"
)

// go run cmd/scraper/main.go -pages=2
// go run cmd/scraper/main.go -pages=0 -no-ai -out=data/raw
func main() {
	pages := flag.Int("pages", -1, "Número máximo de páginas (0 = todas, -1 = usa MAX_PAGES)")
	out := flag.String("out", "", "Diretório de saída do JSON (padrão: OUTPUT_DIR)")
	noAI := flag.Bool("no-ai", false, "Desativa o classificador semântico")
	flag.Parse()

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger
	logFile, err := logger.Setup(cfg.Env, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup logger: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Métricas
	observability.Start(cfg.MetricsPort)

	// 4. Classificador (uma instância por processo)
	resolver, closeResolver := app.NewResolver(ctx, cfg, !*noAI)
	defer closeResolver()
	b := builder.New(resolver)

	// 5. Postgres opcional
	var stores *app.Stores
	if cfg.DatabaseURL != "" {
		stores, err = app.OpenStores(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Erro ao conectar no Postgres")
		}
		defer stores.Close()
	}

	maxPages := cfg.MaxPages
	if *pages >= 0 {
		maxPages = *pages
	}
	outDir := cfg.OutputDir
	if *out != "" {
		outDir = *out
	}

	// 6. Coleta
	collector := crawler.NewCollector(cfg.BaseURL, cfg.CategoryPath, cfg.PageDelay, cfg.HTTPTimeout)
	collector.Ambiente = cfg.Env
	collector.VersaoPipeline = cfg.PipelineVersion
	collector.TipoColeta = cfg.CollectionType

	log.Info().Int("paginas", maxPages).Str("env", cfg.Env).Msg("Iniciando coleta")

	var items []pipeline.Item
	total, err := collector.Collect(ctx, maxPages, func(raw model.RawProduct, cc model.CollectionContext) {
		items = append(items, pipeline.Item{Raw: raw, Context: cc})
		if stores != nil {
			if err := stores.Raw.Save(raw, cc); err != nil {
				log.Warn().Err(err).Str("id", raw.IDProduto).Msg("Erro ao salvar produto bruto")
			}
		}
	})
	if err != nil {
		log.Error().Err(err).Int("coletados", total).Msg("Coleta interrompida, seguindo com o que foi coletado")
	}
	if len(items) == 0 {
		log.Warn().Msg("Nenhum produto coletado")
		return
	}

	// 7. Estruturação
	records := pipeline.Run(ctx, items, b, cfg.WorkerCount)

	// 8. Persistência
	path, err := storage.SaveJSON(outDir, records, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("Erro ao salvar JSON")
	}

	if stores != nil {
		for _, rec := range records {
			if err := stores.Products.Save(ctx, rec); err != nil {
				log.Warn().Err(err).Str("id", rec.Produto.IDSite).Msg("Erro ao salvar registro estruturado")
				continue
			}
			if err := stores.Raw.MarkAsProcessed(rec.Produto.IDSite); err != nil {
				log.Warn().Err(err).Str("id", rec.Produto.IDSite).Msg("Erro ao marcar produto como processado")
			}
		}
	}

	log.Info().Int("produtos", len(records)).Str("arquivo", path).Msg("Scraper finalizado")
}
