package classifier

import "regexp"

// Padrões do detector de bundle. Todos esperam o título já passado por Fold.

// Notações de RAM que usam "+" sem indicar um segundo produto: "4+4gb",
// "8gb+8gb ram boost", "128gb + 6gb ram", "+8gb". "c/ 256gb" é ficha técnica
// pelo mesmo motivo.
var ramFalsePositives = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*(?:gb)?\s*\+\s*\d+\s*(?:gb|ram|virtual)`),
	regexp.MustCompile(`ram\s*\+\s*boost`),
	regexp.MustCompile(`\+\s*\d+\s*gb`),
	regexp.MustCompile(`\bc/\s*\d+\s*(?:gb|tb)\b`),
}

// Notações de tela: "fhd+", "hd+", "qhd+", "amoled+".
var displayFalsePositives = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:f|q|wq|u)?hd\s*\+`),
	regexp.MustCompile(`\b(?:super )?(?:amoled|oled|lcd|ips|retina)\s*\+`),
}

// Notações de câmera: "+ selfie", "+ frontal", "+ câm", "50mp + 2mp".
var cameraFalsePositives = []*regexp.Regexp{
	regexp.MustCompile(`\+\s*(?:selfie|frontal|cam(?:era)?s?|traseira)`),
	regexp.MustCompile(`\d+\s*mp\s*\+\s*\d+\s*mp`),
}

// Sinais de combinação restantes após a limpeza.
var reBundleSignal = regexp.MustCompile(`[+&]| c/`)

// "2 pulseiras", "3 películas", "10 capas".
var reAccessoryQuantity = regexp.MustCompile(
	`\b\d+\s*(?:pulseiras|fones|peliculas|capas|capinhas|cabos|carregadores|correias|adaptadores)\b`,
)

// Palavras que anunciam combo explicitamente.
var reComboKeyword = regexp.MustCompile(
	`\b(?:brinde|kit|combo)\b|\bfone (?:de ouvido )?bluetooth|\bacompanha (?:cabo|carregador|fonte)|\b(?:cabo|carregador|fonte) inclus[oa]`,
)

// Termos puramente técnicos. Se um "+" sobra ao lado deles, é ruído de
// especificação e não bundle.
var reTechDenylist = regexp.MustCompile(
	`\b(?:nfc|bluetooth|wi-?fi|[345]g|usb|tipo[ -]?c|type[ -]?c|gps|\d+\s*mah|bateria|\d+\s*mp|cameras?|biometri[ac]|leitor (?:de )?digital|desbloqueio facial|face ?id|compativel|compatibilidade|android|ios)\b`,
)

// Falsos amigos de câmera e ficha técnica colados a um combinador. Usado pela
// segunda checagem, que só rebaixa um bundle.
var reTechFalseFriend = regexp.MustCompile(
	`(?:\d+\s*mp|megapixels?|\bcam(?:era)?s?|\bselfie|\bfrontal|\btraseira|\blentes?|\bmacro|\bultra ?wide|\bzoom|\bsensor)\s*[+&]|[+&]\s*(?:\d+\s*mp|megapixels?|cam(?:era)?s?\b|selfie|frontal|traseira|lentes?\b|macro|ultra ?wide|zoom|sensor)`,
)
