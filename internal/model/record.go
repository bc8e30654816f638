package model

// ProductRecord é o objeto final entregue para ingestão.
// Os nomes dos campos JSON são contrato com o consumidor e não podem mudar.
type ProductRecord struct {
	Metadata   Metadata   `json:"metadata"`
	Produto    Produto    `json:"produto"`
	Preco      Preco      `json:"preço"`
	Vendedor   Vendedor   `json:"vendedor"`
	Plataforma Plataforma `json:"plataforma"`
	Origem     Origem     `json:"origem"`
}

type Metadata struct {
	TimestampColeta string `json:"timestamp_coleta"`
	Plataforma      string `json:"plataforma"`
	ScraperName     string `json:"scraper_name"`
	VersaoPipeline  string `json:"versao_pipeline"`
	Ambiente        string `json:"ambiente"`
	TipoColeta      string `json:"tipo_coleta"`
}

type Produto struct {
	IDSite    string `json:"id_site"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
	IsBundle  bool   `json:"is_bundle"`
	SKU       string `json:"sku"`
}

type Preco struct {
	Moeda           string          `json:"moeda"`
	PrecoBase       float64         `json:"preco_base"`
	PrecoOriginal   *float64        `json:"preco_original"`
	Descontos       Descontos       `json:"descontos"`
	PrecosPorMetodo PrecosPorMetodo `json:"precos_por_metodo"`
	Parcelamento    Parcelamento    `json:"parcelamento"`
}

type Descontos struct {
	Percentual    float64 `json:"percentual"`
	ValorAbsoluto float64 `json:"valor_absoluto"`
}

type PrecosPorMetodo struct {
	Pix           *float64 `json:"pix"`
	Boleto        *float64 `json:"boleto"`
	CreditoAvista float64  `json:"credito_avista"`
}

type Parcelamento struct {
	ParcelasMax  int     `json:"parcelas_max"`
	ValorParcela float64 `json:"valor_parcela"`
	SemJuros     bool    `json:"sem_juros"`
}

const (
	VendedorTerceiro   = "VENDEDOR_TERCEIRO"
	VendedorPlataforma = "PLATAFORMA"
)

type Vendedor struct {
	Nome         string `json:"nome"`
	TipoVendedor string `json:"tipo_vendedor"`
}

type Plataforma struct {
	Nome       string `json:"nome"`
	CanalVenda string `json:"canal_venda"`
}

type Origem struct {
	URLCompleta  string `json:"url_completa"`
	PaginaOrigem int    `json:"pagina_origem"`
}
