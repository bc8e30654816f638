package crawler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

// TimestampLayout é o formato de timestamp_coleta.
const TimestampLayout = "2006-01-02 15:04:05"

// páginas seguidas com erro antes de desistir
const maxPageFailures = 3

// Handler recebe cada produto coletado junto com o contexto da coleta.
type Handler func(raw model.RawProduct, cc model.CollectionContext)

// Collector percorre a paginação de uma categoria da loja.
type Collector struct {
	BaseURL        string
	CategoryPath   string
	Ambiente       string
	VersaoPipeline string
	TipoColeta     string

	Client  *http.Client
	Limiter *rate.Limiter
	Now     func() time.Time
}

// NewCollector monta um coletor que acessa no máximo uma página a cada pageDelay.
func NewCollector(baseURL, categoryPath string, pageDelay, timeout time.Duration) *Collector {
	limit := rate.Inf
	if pageDelay > 0 {
		limit = rate.Every(pageDelay)
	}
	return &Collector{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		CategoryPath: categoryPath,
		Client:       &http.Client{Timeout: timeout},
		Limiter:      rate.NewLimiter(limit, 1),
		Now:          time.Now,
	}
}

func (c *Collector) PageURL(page int) string {
	return fmt.Sprintf("%s%s?page=%d", c.BaseURL, c.CategoryPath, page)
}

// Collect percorre as páginas a partir da 1 até encontrar uma página sem cards
// ou atingir maxPages (0 = todas). Erros de um card ou de uma página são
// logados e a coleta segue. Devolve o total de produtos entregues ao handler.
func (c *Collector) Collect(ctx context.Context, maxPages int, handle Handler) (int, error) {
	total, failures := 0, 0

	for page := 1; ; page++ {
		if maxPages > 0 && page > maxPages {
			log.Info().Int("limite", maxPages).Msg("[Crawler] limite de páginas atingido")
			break
		}
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return total, err
			}
		}

		url := c.PageURL(page)
		log.Info().Int("pagina", page).Msg("[Crawler] acessando página")

		html, err := Fetch(ctx, c.Client, url)
		if err == nil {
			var cards []Card
			cards, err = ParseCards(html)
			if err == nil {
				if len(cards) == 0 {
					log.Warn().Int("pagina", page).Msg("[Crawler] fim da linha, página sem cards")
					break
				}
				failures = 0
				for _, card := range cards {
					if c.handleCard(page, card, handle) {
						total++
					}
				}
				log.Info().Int("pagina", page).Int("total", total).Msg("[Crawler] página finalizada")
				continue
			}
		}

		if ctx.Err() != nil {
			return total, ctx.Err()
		}
		failures++
		log.Error().Err(err).Int("pagina", page).Msg("[Crawler] erro crítico na página")
		if failures >= maxPageFailures {
			return total, fmt.Errorf("%d páginas seguidas falharam, última: %w", failures, err)
		}
	}

	return total, nil
}

func (c *Collector) handleCard(page int, card Card, handle Handler) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Int("pagina", page).Str("titulo", card.Title).Msgf("[Crawler] erro ao processar card: %v", r)
			ok = false
		}
	}()

	raw, seller := ToRawProduct(card)
	handle(raw, model.CollectionContext{
		Timestamp:      c.now().Format(TimestampLayout),
		VersaoPipeline: c.VersaoPipeline,
		Ambiente:       c.Ambiente,
		TipoColeta:     c.TipoColeta,
		Loja:           seller.Name,
		CanalVenda:     seller.Channel,
		URLProduto:     c.productURL(card.Href),
		Pagina:         page,
	})
	return true
}

func (c *Collector) productURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return c.BaseURL + href
}

func (c *Collector) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
