package crawler

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mvinis/monitoramento-precos-magalu/internal/parser"
)

// Card é o conteúdo textual de um card de produto da listagem.
type Card struct {
	Title       string
	OldPrice    string
	PixPrice    string
	Installment string
	Href        string
}

const (
	selCard        = `a[data-testid="product-card-container"]`
	selTitle       = `h2[data-testid="product-title"]`
	selOldPrice    = `p[data-testid="price-original"]`
	selInstallment = `p[data-testid="installment"]`
	selPrice       = `p[data-testid="price-value"]`
)

// ParseCards extrai os cards de uma página. Cards sem título são ignorados;
// campos ausentes ficam como "N/A".
func ParseCards(html string) ([]Card, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var cards []Card
	doc.Find(selCard).Each(func(_ int, s *goquery.Selection) {
		title := s.Find(selTitle).First()
		if title.Length() == 0 {
			return
		}
		href, _ := s.Attr("href")
		cards = append(cards, Card{
			Title:       parser.Normalize(title.Text()),
			OldPrice:    text(s, selOldPrice),
			PixPrice:    text(s, selPrice),
			Installment: text(s, selInstallment),
			Href:        href,
		})
	})

	return cards, nil
}

func text(s *goquery.Selection, selector string) string {
	el := s.Find(selector).First()
	if el.Length() == 0 {
		return parser.NotAvailable
	}
	return parser.Normalize(el.Text())
}
