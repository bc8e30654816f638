package crawler

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
	"github.com/mvinis/monitoramento-precos-magalu/internal/parser"
)

const platformSeller = "Magazine Luiza"

var (
	reSellerID  = regexp.MustCompile(`seller_id=([^&/]+)`)
	reProductID = regexp.MustCompile(`/p/(\d+)/`)
)

// Seller identifica quem vende o produto do card.
type Seller struct {
	Name    string
	Channel string
}

// ParseSeller lê o seller_id do link. Sem seller_id, ou com o seller da
// própria Magalu, a venda é direta.
func ParseSeller(href string) Seller {
	m := reSellerID.FindStringSubmatch(href)
	if m == nil {
		return Seller{Name: platformSeller, Channel: model.CanalVendaDireta}
	}

	raw := strings.ToLower(m[1])
	if strings.Contains(raw, "magazineluiza") {
		return Seller{Name: platformSeller, Channel: model.CanalVendaDireta}
	}
	return Seller{Name: capitalize(strings.ReplaceAll(raw, "oficial", "")), Channel: model.CanalMarketplace}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ProductID usa o código do link (/p/<código>/) ou, na falta dele, os 10
// primeiros caracteres do md5 do título.
func ProductID(href, title string) string {
	if m := reProductID.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	sum := md5.Sum([]byte(title))
	return hex.EncodeToString(sum[:])[:10]
}

// SalePrice escolhe o preço de venda: total parcelado quando há parcelamento,
// senão o pix, senão o preço antigo.
func SalePrice(installment string, pix, old float64) float64 {
	if installment != parser.NotAvailable && strings.Contains(strings.ToLower(installment), "x") {
		return parser.InstallmentTotal(installment)
	}
	if pix > 0 {
		return pix
	}
	return old
}

// ToRawProduct converte um card no registro bruto e no vendedor do anúncio.
func ToRawProduct(c Card) (model.RawProduct, Seller) {
	old := parser.ParseAmount(c.OldPrice)
	pix := parser.ParseAmount(c.PixPrice)

	raw := model.RawProduct{
		IDProduto:            ProductID(c.Href, c.Title),
		Titulo:               c.Title,
		PrecoAntigo:          old,
		PrecoPix:             pix,
		PrecoAtual:           SalePrice(c.Installment, pix, old),
		ParcelamentoOriginal: c.Installment,
	}
	return raw, ParseSeller(c.Href)
}
