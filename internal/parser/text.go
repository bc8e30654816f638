// Package parser limpa os textos raspados e converte preços e parcelamentos
// no formato brasileiro para valores numéricos.
package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NotAvailable is the sentinel used for missing scraped text.
const NotAvailable = "N/A"

// Normalize troca o espaço invisível (U+00A0) por espaço comum e remove as bordas.
// Entrada vazia vira "N/A".
func Normalize(text string) string {
	if text == "" {
		return NotAvailable
	}
	clean := strings.TrimSpace(strings.ReplaceAll(text, "\u00a0", " "))
	if clean == "" {
		return NotAvailable
	}
	return clean
}

// Round2 rounds a monetary value to 2 decimal places (half away from zero).
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
