package builder

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/mvinis/monitoramento-precos-magalu/internal/classifier"
	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func marketplaceContext() model.CollectionContext {
	return model.CollectionContext{
		Timestamp:      "2026-01-15 10:30:00",
		VersaoPipeline: "v1.0",
		Ambiente:       "dev",
		TipoColeta:     "web_scraping",
		Loja:           "Gazin",
		CanalVenda:     model.CanalMarketplace,
		URLProduto:     "https://www.magazineluiza.com.br/smartphone/p/237921700/te/smga/?seller_id=gazin",
		Pagina:         2,
	}
}

func TestComputeDiscount(t *testing.T) {
	amount, pct, ok := ComputeDiscount(1000, 800)
	if !ok || !almostEqual(amount, 200) || !almostEqual(pct, 20) {
		t.Fatalf("expected 200.00 / 20.00, got %v / %v (ok=%v)", amount, pct, ok)
	}

	cases := [][2]float64{{0, 800}, {800, 800}, {700, 800}, {1000, 0}}
	for _, c := range cases {
		amount, pct, ok := ComputeDiscount(c[0], c[1])
		if ok || amount != 0 || pct != 0 {
			t.Errorf("original=%v current=%v: expected no discount, got %v / %v", c[0], c[1], amount, pct)
		}
	}
}

func TestComputeDiscount_Rounding(t *testing.T) {
	amount, pct, _ := ComputeDiscount(1299, 946.42)
	if !almostEqual(amount, 352.58) {
		t.Fatalf("expected 352.58, got %v", amount)
	}
	if !almostEqual(pct, 27.14) {
		t.Fatalf("expected 27.14, got %v", pct)
	}
}

func TestComposeCategory(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		decision model.BundleDecision
		want     string
	}{
		{"sem bundle", "Smartphone", model.BundleDecision{Tokens: []string{"Capa"}}, "Smartphone"},
		{"base primeiro", "Smartphone", model.BundleDecision{IsBundle: true, Tokens: []string{"Smartphone", "Áudio"}}, "Smartphone + Áudio"},
		{"ordem dos tokens", "Smartwatch", model.BundleDecision{IsBundle: true, Tokens: []string{"Smartwatch", "Carregador", "Pulseira"}}, "Smartwatch + Carregador + Pulseira"},
		{"só a base", "Smartphone", model.BundleDecision{IsBundle: true}, "Smartphone + Acessório"},
		{"acessório sozinho", "Acessório", model.BundleDecision{IsBundle: true}, "Acessório"},
		{"outros não compõe", "Outros", model.BundleDecision{IsBundle: true, Tokens: []string{"Capa"}}, "Outros"},
		{"base combo", "Smartphone + Áudio", model.BundleDecision{IsBundle: true, Tokens: []string{"Áudio", "Capa"}}, "Smartphone + Áudio + Capa"},
	}
	for _, c := range cases {
		if got := ComposeCategory(c.base, c.decision); got != c.want {
			t.Errorf("%s: expected %q, got %q", c.name, c.want, got)
		}
	}
}

func TestBuild_FullRecord(t *testing.T) {
	b := New(classifier.NewResolver(nil))
	raw := model.RawProduct{
		IDProduto:            "237921700",
		Titulo:               "Smartphone Samsung Galaxy A15 128GB Azul ",
		PrecoAntigo:          1299,
		PrecoPix:             899.1,
		PrecoAtual:           946.42,
		ParcelamentoOriginal: "10x de R$ 94,64 sem juros",
	}

	rec := b.Build(context.Background(), raw, marketplaceContext())

	if rec.Produto.Categoria != model.CategorySmartphone {
		t.Fatalf("expected Smartphone, got %q", rec.Produto.Categoria)
	}
	if rec.Produto.IsBundle {
		t.Fatalf("expected is_bundle false")
	}
	if rec.Produto.SKU != raw.IDProduto || rec.Produto.IDSite != raw.IDProduto {
		t.Fatalf("expected id/sku %s, got %+v", raw.IDProduto, rec.Produto)
	}
	if rec.Preco.PrecoOriginal == nil || *rec.Preco.PrecoOriginal != 1299 {
		t.Fatalf("expected preco_original 1299, got %v", rec.Preco.PrecoOriginal)
	}
	if !almostEqual(rec.Preco.Descontos.ValorAbsoluto, 352.58) || !almostEqual(rec.Preco.Descontos.Percentual, 27.14) {
		t.Fatalf("unexpected discount %+v", rec.Preco.Descontos)
	}
	if rec.Preco.PrecosPorMetodo.Pix == nil || *rec.Preco.PrecosPorMetodo.Pix != 899.1 {
		t.Fatalf("expected pix 899.1, got %v", rec.Preco.PrecosPorMetodo.Pix)
	}
	if rec.Preco.PrecosPorMetodo.Boleto == nil || *rec.Preco.PrecosPorMetodo.Boleto != 899.1 {
		t.Fatalf("expected boleto mirroring pix, got %v", rec.Preco.PrecosPorMetodo.Boleto)
	}
	p := rec.Preco.Parcelamento
	if p.ParcelasMax != 10 || !almostEqual(p.ValorParcela, 94.64) || !p.SemJuros {
		t.Fatalf("unexpected installments %+v", p)
	}
	if rec.Vendedor.TipoVendedor != model.VendedorTerceiro || rec.Vendedor.Nome != "Gazin" {
		t.Fatalf("unexpected seller %+v", rec.Vendedor)
	}
	if rec.Metadata.Plataforma != PlatformName || rec.Metadata.ScraperName != ScraperName {
		t.Fatalf("unexpected metadata %+v", rec.Metadata)
	}
	if rec.Origem.PaginaOrigem != 2 {
		t.Fatalf("expected pagina_origem 2, got %d", rec.Origem.PaginaOrigem)
	}
}

func TestBuild_InstallmentFromCreditPrice(t *testing.T) {
	b := New(classifier.NewResolver(nil))
	raw := model.RawProduct{
		IDProduto:            "1",
		Titulo:               "Smartphone Motorola Moto G54 256GB",
		PrecoAtual:           2165.52,
		ParcelamentoOriginal: "12x de R$ 180,46",
	}
	rec := b.Build(context.Background(), raw, marketplaceContext())
	if rec.Preco.Parcelamento.ParcelasMax != 12 || !almostEqual(rec.Preco.Parcelamento.ValorParcela, 180.46) {
		t.Fatalf("unexpected installments %+v", rec.Preco.Parcelamento)
	}
	if rec.Preco.PrecoOriginal != nil {
		t.Fatalf("expected nil preco_original without old price")
	}
	if rec.Preco.PrecosPorMetodo.Pix != nil || rec.Preco.PrecosPorMetodo.Boleto != nil {
		t.Fatalf("expected nil pix/boleto")
	}
}

func TestBuild_BundleLabels(t *testing.T) {
	b := New(classifier.NewResolver(nil))
	ctx := context.Background()

	cases := []struct {
		title  string
		want   string
		bundle bool
	}{
		{"Smartphone Samsung Galaxy A54 + Fone Bluetooth", "Smartphone + Áudio", true},
		{"iPhone 15 com Brinde Capinha e Película", "Smartphone + Capa + Película", true},
		{"Kit 2 Cola Adesiva Branca e Preta P/ Display Celulares 15ml - OEM", "Outros", true},
		{"Suporte Garra Celular P/ Motos Universal Com Carregador Usb - +BR", "Suporte", false},
		{"Smartphone Motorola Moto G24 128GB 4+4GB RAM", "Smartphone", false},
		{"Smartphone Motorola Moto G84 c/ 256GB", "Smartphone", false},
	}
	for _, c := range cases {
		rec := b.Build(ctx, model.RawProduct{IDProduto: "x", Titulo: c.title}, marketplaceContext())
		if rec.Produto.Categoria != c.want {
			t.Errorf("%q: expected %q, got %q", c.title, c.want, rec.Produto.Categoria)
		}
		if rec.Produto.IsBundle != c.bundle {
			t.Errorf("%q: expected is_bundle %v, got %v", c.title, c.bundle, rec.Produto.IsBundle)
		}
	}
}

type fixedScorer []classifier.LabelScore

func (f fixedScorer) Classify(context.Context, string) ([]classifier.LabelScore, error) {
	return f, nil
}

func TestBuild_SemanticComboIsBundle(t *testing.T) {
	scorer := fixedScorer{{Label: model.CategorySmartphone, Score: 0.98}, {Label: model.CategoryAudio, Score: 0.97}}
	b := New(classifier.NewResolver(scorer))

	rec := b.Build(context.Background(), model.RawProduct{IDProduto: "7", Titulo: "Oferta Especial Mega Pacote Verão"}, marketplaceContext())
	if rec.Produto.Categoria != "Smartphone + Áudio" {
		t.Fatalf("expected semantic combo label, got %q", rec.Produto.Categoria)
	}
	if !rec.Produto.IsBundle {
		t.Fatalf("expected is_bundle true for a combo label")
	}
}

func TestMetricCategory(t *testing.T) {
	if got := metricCategory("Smartphone + Áudio + Tablet"); got != ComboMetricLabel {
		t.Fatalf("expected %q, got %q", ComboMetricLabel, got)
	}
	if got := metricCategory(model.CategoryCharger); got != model.CategoryCharger {
		t.Fatalf("expected %q, got %q", model.CategoryCharger, got)
	}
}

func TestBuild_DirectSaleIsPlatform(t *testing.T) {
	b := New(classifier.NewResolver(nil))
	cc := marketplaceContext()
	cc.CanalVenda = model.CanalVendaDireta
	cc.Loja = PlatformName

	rec := b.Build(context.Background(), model.RawProduct{IDProduto: "1", Titulo: "Tablet Samsung Galaxy Tab A9"}, cc)
	if rec.Vendedor.TipoVendedor != model.VendedorPlataforma {
		t.Fatalf("expected PLATAFORMA, got %s", rec.Vendedor.TipoVendedor)
	}
	if rec.Plataforma.CanalVenda != model.CanalVendaDireta {
		t.Fatalf("expected VENDA_DIRETA, got %s", rec.Plataforma.CanalVenda)
	}
}

func TestBuild_RecoversFromPanic(t *testing.T) {
	var b Builder // sem resolver
	raw := model.RawProduct{IDProduto: "42", Titulo: "Smartphone Qualquer", PrecoAtual: 100}

	rec := b.Build(context.Background(), raw, marketplaceContext())
	if rec.Produto.Categoria != model.CategoryOther {
		t.Fatalf("expected degraded Outros, got %q", rec.Produto.Categoria)
	}
	if rec.Produto.IDSite != "42" || rec.Preco.Moeda != Currency || rec.Preco.Parcelamento.ParcelasMax != 1 {
		t.Fatalf("expected structurally valid record, got %+v", rec)
	}
}

func TestBuild_WireFieldNames(t *testing.T) {
	b := New(classifier.NewResolver(nil))
	rec := b.Build(context.Background(), model.RawProduct{IDProduto: "1", Titulo: "Chip Claro Pré-Pago 4G", PrecoAtual: 10}, marketplaceContext())

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"metadata", "produto", "preço", "vendedor", "plataforma", "origem"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("expected top-level key %q in %s", key, data)
		}
	}

	preco := doc["preço"]
	if v, ok := preco["preco_original"]; !ok || v != nil {
		t.Fatalf("expected preco_original null, got %v", v)
	}
	metodos, _ := preco["precos_por_metodo"].(map[string]any)
	if v, ok := metodos["pix"]; !ok || v != nil {
		t.Fatalf("expected pix null, got %v", v)
	}
	if preco["moeda"] != "BRL" {
		t.Fatalf("expected moeda BRL, got %v", preco["moeda"])
	}
	if doc["produto"]["categoria"] != model.CategoryChip {
		t.Fatalf("expected Chip, got %v", doc["produto"]["categoria"])
	}
}
