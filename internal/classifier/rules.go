package classifier

import (
	"regexp"
	"strings"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

// Rule é uma linha da lista de decisão. As regras são avaliadas em ordem e a
// primeira que casar decide a categoria.
//
// Keywords são fragmentos de regex casados no início de uma palavra do título
// dobrado. Except são frases literais apagadas (com espaços do mesmo tamanho,
// preservando as posições) antes da busca.
type Rule struct {
	Name     string
	Keywords []string
	Except   []string
	Label    string

	// Positional compara a posição da palavra-chave com a do primeiro termo de
	// hardware do título: quem aparece primeiro vence.
	Positional bool
	// HardwareLabel fixa o label quando o hardware vence. Vazio usa o label do
	// hardware encontrado na posição.
	HardwareLabel string
	// PreferHardware (regras não posicionais) devolve o label do hardware do
	// título quando houver um.
	PreferHardware bool

	patterns []*regexp.Regexp
}

// Rules é a lista de decisão canônica.
var Rules = []Rule{
	{
		Name: "insumo",
		Keywords: []string{
			`cola\b`, `b-?7000\b`, `t-?7000\b`, `e-?8000\b`, `adesivo (?:instantaneo|liquido)`,
			`fita (?:adesiva|dupla face)`, `solvente`, `alcool isopropilico`, `kit (?:de )?reparo`,
			`kit (?:de )?ferramentas?`, `chaves? (?:de )?fenda`, `espatula`, `estanho\b`,
			`pasta termica`, `flux\b`, `ventosa`, `removedor`, `limpa ?telas?`, `flanela`,
		},
		Label: model.CategoryOther,
	},
	{
		Name: "suporte",
		Keywords: []string{
			`suportes?\b`, `tripes?\b`, `pau de selfie`, `bastao de selfie`, `selfie ?stick`,
			`ring ?light`, `estabilizador`, `gimbal`,
		},
		Except: []string{
			"suporte a ", "suporte ao ", "suporte para cartao", "suporte de cartao",
			"suporte para chip", "suporte 5g", "suporte 4g", "suporte nfc",
		},
		Label:      model.CategorySupport,
		Positional: true,
	},
	{
		Name: "energia",
		Keywords: []string{
			`carregador`, `cabos?\b`, `fontes?\b`, `adaptador`, `power ?bank`, `bateria externa`,
		},
		Label:      model.CategoryCharger,
		Positional: true,
	},
	{
		Name: "protecao",
		Keywords: []string{
			`capas?\b`, `capinhas?\b`, `cases?\b`, `peliculas?\b`, `protetor de (?:tela|camera)`,
			`vidro temperado`, `bumper`, `hydrogel`,
		},
		Label:      model.CategoryProtection,
		Positional: true,
	},
	{
		Name: "acessorio",
		Keywords: []string{
			`pulseiras?\b`, `correias?\b`, `airtag`, `smart ?tag`, `tag rastreador`, `rastreador`,
			`localizador`, `cordao`, `strap`,
		},
		Except:     []string{"pulseira inteligente", "pulseiras inteligentes"},
		Label:      model.CategoryAccessory,
		Positional: true,
	},
	{
		Name: "audio",
		Keywords: []string{
			`fones?\b`, `fone de ouvido`, `headsets?\b`, `headphones?\b`, `earbuds?\b`, `airpods`,
			`caix(?:a|inha) de som`, `microfones?\b`,
		},
		Label:      model.CategoryAudio,
		Positional: true,
	},
	{
		Name:     "oculos",
		Keywords: []string{`oculos`, `smart ?glass(?:es)?`, `ray-?ban meta`},
		Label:    model.CategorySmartGlasses,
	},
	{
		Name: "controle",
		Keywords: []string{
			`gamepad`, `game ?pad`, `joystick`, `controller`, `consoles?\b`,
			`controle (?:gamer|game|de (?:jogo|video ?game)|para celular|p/ celular|bluetooth|sem fio)`,
		},
		Label: model.CategoryConsole,
	},
	{
		Name: "celular_basico",
		Keywords: []string{
			`celular basico`, `celular (?:do|para) idoso`, `2g\b`, `teclas grandes`, `teclado fisico`,
			`feature ?phone`, `sm-b\d{3}`, `nokia 1\d{2}\b`, `tijolao`, `flip\b`,
		},
		Label:         model.CategoryBasicPhone,
		Positional:    true,
		HardwareLabel: model.CategorySmartphone,
	},
	{
		Name: "relogio",
		Keywords: []string{
			`smart ?watch`, `relogios?\b`, `apple watch`, `galaxy watch`, `redmi watch`, `amazfit`,
			`watch (?:gt|fit|se|ultra)\b`,
		},
		Label: model.CategorySmartwatch,
	},
	{
		Name: "pulseira_inteligente",
		Keywords: []string{
			`smart ?band`, `mi ?band`, `pulseiras? inteligentes?`, `galaxy fit`, `fitness tracker`,
			`xiaomi band`,
		},
		Label:      model.CategorySmartband,
		Positional: true,
	},
	{
		Name:     "chip",
		Keywords: []string{`chips?\b`, `sim ?card`, `cartao sim`, `e-?sim\b`},
		Except: []string{
			"dual chips", "dual chip", "chip duplo", "2 chips", "dois chips", "chip dual", "dual sim",
		},
		Label:      model.CategoryChip,
		Positional: true,
	},
	{
		Name: "hardware",
		Keywords: []string{
			`smartphones?\b`, `celular(?:es)?\b`, `iphone`, `galaxy`, `motorola`, `moto [a-z]?\d`,
			`xiaomi`, `redmi`, `poco\b`, `samsung`, `realme`, `infinix`, `nokia`, `asus`, `zenfone`,
			`lg\b`, `[45]g\b`, `android`, `tablet`, `ipad`,
		},
		Label:          model.CategorySmartphone,
		PreferHardware: true,
	},
}

// hardwareTerm é um termo do vocabulário fixo de hardware.
type hardwareTerm struct {
	re    *regexp.Regexp
	label string
}

// Vocabulário usado na desambiguação posicional. Só entram tipos de aparelho e
// linhas de modelo; marcas sozinhas (samsung, xiaomi) também vendem acessórios.
var hardwareVocabulary = []hardwareTerm{
	{regexp.MustCompile(`\bsmart ?watch|\brelogios?\b|\bapple watch|\bgalaxy watch|\bredmi watch|\bamazfit\b`), model.CategorySmartwatch},
	{regexp.MustCompile(`\bsmart ?band|\bmi ?band|\bgalaxy fit|\bpulseiras? inteligentes?`), model.CategorySmartband},
	{regexp.MustCompile(`\btablets?\b|\bipad\b|\bgalaxy tab\b`), model.CategoryTablet},
	{regexp.MustCompile(`\bfones?\b|\bfone de ouvido|\bheadsets?\b|\bearbuds?\b|\bairpods\b|\bcaix(?:a|inha) de som`), model.CategoryAudio},
	{regexp.MustCompile(`\bsmartphones?\b|\biphone|\bgalaxy (?:[amsz] ?\d|z (?:flip|fold)|note|fold|flip)|\bmoto [ge]\d|\bmoto edge|\brazr\b|\bredmi\b|\bpoco [xmcf]\d|\brealme \d|\bzenfone\b`), model.CategorySmartphone},
}

func init() {
	for i := range Rules {
		Rules[i].compile()
	}
}

func (r *Rule) compile() {
	r.patterns = make([]*regexp.Regexp, 0, len(r.Keywords))
	for _, kw := range r.Keywords {
		r.patterns = append(r.patterns, regexp.MustCompile(`\b(?:`+kw+`)`))
	}
}

// Match devolve a menor posição de qualquer palavra-chave da regra no título
// dobrado, ou -1.
func (r *Rule) Match(folded string) int {
	text := maskPhrases(folded, r.Except)
	pos := -1
	for _, re := range r.patterns {
		loc := re.FindStringIndex(text)
		if loc != nil && (pos < 0 || loc[0] < pos) {
			pos = loc[0]
		}
	}
	return pos
}

// maskPhrases troca cada frase por espaços do mesmo tamanho em bytes.
func maskPhrases(s string, phrases []string) string {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			s = strings.ReplaceAll(s, p, strings.Repeat(" ", len(p)))
		}
	}
	return s
}

// locateHardware devolve a posição e o label do primeiro termo de hardware.
func locateHardware(folded string) (int, string) {
	pos, label := -1, ""
	for _, term := range hardwareVocabulary {
		loc := term.re.FindStringIndex(folded)
		if loc != nil && (pos < 0 || loc[0] < pos) {
			pos, label = loc[0], term.label
		}
	}
	return pos, label
}
