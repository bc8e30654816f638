package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reInstallmentCount = regexp.MustCompile(`(?i)(\d+)\s*x`)
	reDigits           = regexp.MustCompile(`\d+`)
)

const interestFreePhrase = "sem juros"

// Installments is the parsed form of a text like "12x de R$ 180,46 sem juros".
type Installments struct {
	Count        int
	Value        float64 // valor de cada parcela
	Total        float64 // total projetado (Count * Value)
	InterestFree bool
}

// ParseInstallments extrai o número de parcelas e o valor de cada uma.
//
// Quando creditTotal > 0 o valor da parcela é creditTotal / parcelas. Caso
// contrário o valor vem do próprio texto, lido como os três primeiros números
// (parcelas, inteiro, centavos). Texto malformado zera os campos monetários.
func ParseInstallments(text string, creditTotal float64) Installments {
	inst := Installments{
		Count:        1,
		InterestFree: strings.Contains(strings.ToLower(text), interestFreePhrase),
	}

	if text == "" || text == NotAvailable {
		inst.Value = Round2(creditTotal)
		inst.Total = Round2(creditTotal)
		return inst
	}

	m := reInstallmentCount.FindStringSubmatch(text)
	if m == nil {
		// sem marcador "x": pagamento em parcela única
		inst.Value = Round2(creditTotal)
		inst.Total = Round2(creditTotal)
		return inst
	}

	count, err := strconv.Atoi(m[1])
	if err != nil || count < 1 {
		parseFailure("parcelamento", text, err)
		inst.Value, inst.Total = 0.0, 0.0
		return inst
	}
	inst.Count = count

	if creditTotal > 0 {
		inst.Value = Round2(creditTotal / float64(count))
		inst.Total = Round2(creditTotal)
		return inst
	}

	// remove pontos de milhar para não quebrar o inteiro em dois números
	nums := reDigits.FindAllString(strings.ReplaceAll(text, ".", ""), -1)
	if len(nums) < 3 {
		parseFailure("parcelamento", text, nil)
		return inst
	}

	value, err := strconv.ParseFloat(nums[1]+"."+nums[2], 64)
	if err != nil {
		parseFailure("parcelamento", text, err)
		return inst
	}
	inst.Value = Round2(value)
	inst.Total = Round2(float64(count) * value)
	return inst
}

// InstallmentTotal calcula o total parcelado: "10x 399,78" -> 3997.8.
func InstallmentTotal(text string) float64 {
	if text == "" || strings.Contains(text, NotAvailable) {
		return 0.0
	}
	return ParseInstallments(text, 0).Total
}
