package model

// RawProduct é o registro bruto extraído de um card da listagem.
type RawProduct struct {
	IDProduto            string  `json:"id_produto"`
	Titulo               string  `json:"titulo"`
	PrecoAntigo          float64 `json:"preco_antigo"`
	PrecoPix             float64 `json:"preco_pix"`
	PrecoAtual           float64 `json:"preco_atual"` // crédito à vista; 0 = desconhecido
	ParcelamentoOriginal string  `json:"parcelamento_original"`
}

const (
	CanalMarketplace = "MARKETPLACE"
	CanalVendaDireta = "VENDA_DIRETA"
)

// CollectionContext carries the metadata of the collection run a record came from.
type CollectionContext struct {
	Timestamp      string `json:"timestamp"`
	VersaoPipeline string `json:"versao_pipeline"`
	Ambiente       string `json:"ambiente"`
	TipoColeta     string `json:"tipo_coleta"`
	Loja           string `json:"loja"`
	CanalVenda     string `json:"canal_venda"`
	URLProduto     string `json:"url_produto"`
	Pagina         int    `json:"pagina"`
}

// IsMarketplace reports whether the listing is sold by a third-party seller.
func (c CollectionContext) IsMarketplace() bool {
	return c.CanalVenda == CanalMarketplace
}

// Labels de categoria. Os valores são parte do contrato de saída.
const (
	CategorySmartphone   = "Smartphone"
	CategorySmartwatch   = "Smartwatch"
	CategorySmartband    = "Smartband"
	CategoryBasicPhone   = "Celular Básico"
	CategoryCharger      = "Carregador"
	CategoryProtection   = "Proteção"
	CategoryAccessory    = "Acessório"
	CategoryAudio        = "Áudio"
	CategorySupport      = "Suporte"
	CategorySmartGlasses = "Smart-Glasses"
	CategoryConsole      = "Console"
	CategoryChip         = "Chip"
	CategoryTablet       = "Tablet"
	CategoryOther        = "Outros"

	// tokens usados apenas na composição de bundles
	TokenCable = "Cabo"
	TokenCase  = "Capa"
	TokenFilm  = "Película"
	TokenStrap = "Pulseira"
)

// BundleDecision is the outcome of bundle detection for one title.
type BundleDecision struct {
	IsBundle bool
	Tokens   []string
}
