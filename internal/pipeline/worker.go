package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mvinis/monitoramento-precos-magalu/internal/builder"
	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
	"github.com/mvinis/monitoramento-precos-magalu/internal/observability"
)

const maxWorkers = 8

// Item é um produto bruto com o contexto da coleta de onde veio.
type Item struct {
	Raw     model.RawProduct
	Context model.CollectionContext
}

// RecordBuilder é satisfeito por *builder.Builder.
type RecordBuilder interface {
	Build(ctx context.Context, raw model.RawProduct, cc model.CollectionContext) model.ProductRecord
}

// Run estrutura os itens com um pool de workers. O resultado tem a mesma ordem
// da entrada e sempre um registro por item: a falha de um item não interrompe
// os demais.
func Run(ctx context.Context, items []Item, b RecordBuilder, workers int) []model.ProductRecord {
	if workers < 1 {
		workers = 1
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}

	results := make([]model.ProductRecord, len(items))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = process(ctx, b, items[idx])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	log.Info().Int("produtos", len(results)).Int("workers", workers).Msg("[Pipeline] lote estruturado")
	return results
}

func process(ctx context.Context, b RecordBuilder, it Item) (rec model.ProductRecord) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("id", it.Raw.IDProduto).Str("panic", fmt.Sprint(r)).Msg("[Pipeline] falha ao processar produto")
			observability.RecordErrorsTotal.Inc()
			rec = builder.Degraded(it.Raw, it.Context)
		}
	}()
	return b.Build(ctx, it.Raw, it.Context)
}
