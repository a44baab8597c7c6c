package ingesting

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Cabeçalhos de mês que a planilha de origem intercala entre as vendas
var monthSentinels = []string{"JANEIRO", "FEVEREIRO", "MARÇO", "ABRIL", "MAIO", "JUNHO"}

var sentinelIndex = buildSentinelIndex()

func buildSentinelIndex() map[string]struct{} {
	index := make(map[string]struct{}, len(monthSentinels))
	for _, sentinel := range monthSentinels {
		index[normalizeKey(sentinel)] = struct{}{}
	}
	return index
}

// foldAccents remove acentos mantendo as letras base (MARÇO -> MARCO)
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// normalizeKey prepara nomes de coluna e sentinelas para comparação
func normalizeKey(s string) string {
	return strings.ToUpper(foldAccents(strings.TrimSpace(s)))
}

// IsSentinel indica se o valor da coluna DATA é um cabeçalho de mês e não uma venda
func IsSentinel(value string) bool {
	_, ok := sentinelIndex[normalizeKey(value)]
	return ok
}
