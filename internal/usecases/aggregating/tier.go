package aggregating

import (
	"math/bits"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
)

// Rótulos das faixas, do menor para o maior volume
var (
	PerformanceTierLabels = []string{domain.TierLow, domain.TierMedium, domain.TierHigh}
	IntensityLabels       = []string{"Muito Baixo", "Baixo", "Médio", "Alto", "Muito Alto"}
)

// TierIndex distribui value em tierCount faixas de mesma largura entre lo e hi.
// As faixas são fechadas à direita: um valor exatamente na borda fica na faixa inferior.
// Com lo == hi todos os valores caem na faixa do meio.
func TierIndex(value, lo, hi, tierCount int64) int {
	if tierCount <= 1 {
		return 0
	}

	if hi <= lo {
		return int((tierCount - 1) / 2)
	}

	if value <= lo {
		return 0
	}

	if value >= hi {
		return int(tierCount - 1)
	}

	// ceil((value-lo)*tierCount/span) - 1 em 128 bits para não estourar com totais grandes
	span := uint64(hi - lo)
	high, low := bits.Mul64(uint64(value-lo), uint64(tierCount))
	low, carry := bits.Add64(low, span-1, 0)
	high += carry
	quotient, _ := bits.Div64(high, low, span)

	return int(quotient) - 1
}

func labelFor(labels []string, tier int) string {
	if tier < 0 || tier >= len(labels) {
		return ""
	}
	return labels[tier]
}

func minMax(values []int64) (int64, int64) {
	if len(values) == 0 {
		return 0, 0
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
