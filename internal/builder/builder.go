package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mvinis/monitoramento-precos-magalu/internal/classifier"
	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
	"github.com/mvinis/monitoramento-precos-magalu/internal/observability"
	"github.com/mvinis/monitoramento-precos-magalu/internal/parser"
)

const (
	PlatformName = "Magazine Luiza"
	ScraperName  = "MagaluScraper"
	Currency     = "BRL"

	ComboMetricLabel = "combo"
)

// Builder monta o registro final de cada produto bruto.
type Builder struct {
	resolver *classifier.Resolver
}

func New(resolver *classifier.Resolver) *Builder {
	return &Builder{resolver: resolver}
}

// Build nunca falha: um pânico durante o processamento gera um registro
// degradado (categoria "Outros", preços zerados) com a mesma identificação.
func (b *Builder) Build(ctx context.Context, raw model.RawProduct, cc model.CollectionContext) (rec model.ProductRecord) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("id", raw.IDProduto).
				Str("titulo", raw.Titulo).
				Str("panic", fmt.Sprint(r)).
				Msg("[Builder] falha ao estruturar produto, emitindo registro degradado")
			observability.RecordErrorsTotal.Inc()
			rec = Degraded(raw, cc)
		}
	}()

	rec = skeleton(raw, cc)

	title := parser.Normalize(raw.Titulo)
	base := b.resolver.Resolve(ctx, title)
	decision := classifier.Bundle(raw.Titulo)

	rec.Produto.Categoria = ComposeCategory(base, decision)
	// um combo vindo do classificador semântico também é bundle
	isBundle := decision.IsBundle || strings.Contains(base, comboSeparator)
	rec.Produto.IsBundle = isBundle

	credit := raw.PrecoAtual
	rec.Preco.PrecoBase = credit
	rec.Preco.PrecosPorMetodo.CreditoAvista = credit

	if amount, pct, ok := ComputeDiscount(raw.PrecoAntigo, credit); ok {
		original := raw.PrecoAntigo
		rec.Preco.PrecoOriginal = &original
		rec.Preco.Descontos = model.Descontos{Percentual: pct, ValorAbsoluto: amount}
	}

	if raw.PrecoPix > 0 {
		pix, boleto := raw.PrecoPix, raw.PrecoPix
		rec.Preco.PrecosPorMetodo.Pix = &pix
		rec.Preco.PrecosPorMetodo.Boleto = &boleto
	}

	inst := parser.ParseInstallments(raw.ParcelamentoOriginal, credit)
	rec.Preco.Parcelamento = model.Parcelamento{
		ParcelasMax:  inst.Count,
		ValorParcela: inst.Value,
		SemJuros:     inst.InterestFree,
	}

	observability.RecordsTotal.Inc()
	observability.CategoryTotal.WithLabelValues(metricCategory(base)).Inc()
	if isBundle {
		observability.BundlesTotal.Inc()
	}

	log.Debug().
		Str("id", raw.IDProduto).
		Str("categoria", rec.Produto.Categoria).
		Bool("bundle", isBundle).
		Msg("[Builder] produto estruturado")

	return rec
}

// metricCategory agrupa os combos semânticos num único valor de label.
func metricCategory(base string) string {
	if strings.Contains(base, comboSeparator) {
		return ComboMetricLabel
	}
	return base
}

// skeleton preenche os blocos que não dependem de parsing nem classificação.
func skeleton(raw model.RawProduct, cc model.CollectionContext) model.ProductRecord {
	tipoVendedor := model.VendedorPlataforma
	if cc.IsMarketplace() {
		tipoVendedor = model.VendedorTerceiro
	}

	return model.ProductRecord{
		Metadata: model.Metadata{
			TimestampColeta: cc.Timestamp,
			Plataforma:      PlatformName,
			ScraperName:     ScraperName,
			VersaoPipeline:  cc.VersaoPipeline,
			Ambiente:        cc.Ambiente,
			TipoColeta:      cc.TipoColeta,
		},
		Produto: model.Produto{
			IDSite: raw.IDProduto,
			Nome:   raw.Titulo,
			SKU:    raw.IDProduto,
		},
		Preco: model.Preco{
			Moeda:        Currency,
			Parcelamento: model.Parcelamento{ParcelasMax: 1},
		},
		Vendedor: model.Vendedor{
			Nome:         cc.Loja,
			TipoVendedor: tipoVendedor,
		},
		Plataforma: model.Plataforma{
			Nome:       PlatformName,
			CanalVenda: cc.CanalVenda,
		},
		Origem: model.Origem{
			URLCompleta:  cc.URLProduto,
			PaginaOrigem: cc.Pagina,
		},
	}
}

// Degraded é o registro mínimo emitido quando um produto não pôde ser processado.
func Degraded(raw model.RawProduct, cc model.CollectionContext) model.ProductRecord {
	rec := skeleton(raw, cc)
	rec.Produto.Categoria = model.CategoryOther
	return rec
}
