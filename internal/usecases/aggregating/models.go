package aggregating

import (
	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/allansduarte/placas-mundi-vendas/pkg/utils"
)

var variantLabels = []struct {
	variant string
	label   string
}{
	{domain.VariantSixHole, "6 Furos"},
	{domain.VariantEightHole, "8 Furos"},
}

// ModelVariants soma as células de quantidade de todas as colunas 6F* e 8F*.
// Sempre devolve as duas variantes. Quando ambas somam 0, HasData é falso e os percentuais não são calculados.
func ModelVariants(records []domain.SaleRecord, columns []domain.QuantityColumn) domain.ModelSplit {
	totals := make(map[string]int64, len(variantLabels))
	sales := make(map[string]int, len(variantLabels))
	clients := make(map[string]map[string]struct{}, len(variantLabels))
	for _, v := range variantLabels {
		clients[v.variant] = make(map[string]struct{})
	}

	for _, record := range records {
		perVariant := make(map[string]int64, len(variantLabels))
		for _, column := range columns {
			perVariant[column.Variant] += record.Quantities[column.Name]
		}

		for variant, quantity := range perVariant {
			if quantity <= 0 {
				continue
			}
			totals[variant] += quantity
			sales[variant]++
			if record.Client != "" {
				clients[variant][record.Client] = struct{}{}
			}
		}
	}

	split := domain.ModelSplit{
		Variants: make([]domain.VariantTotal, 0, len(variantLabels)),
	}

	for _, v := range variantLabels {
		split.Total += totals[v.variant]
		split.Variants = append(split.Variants, domain.VariantTotal{
			Variant:         v.variant,
			Label:           v.label,
			TotalQuantity:   totals[v.variant],
			DistinctClients: len(clients[v.variant]),
			SaleCount:       sales[v.variant],
		})
	}

	if split.Total == 0 {
		return split
	}

	split.HasData = true
	for i := range split.Variants {
		split.Variants[i].PercentOfTotal = utils.Percent(split.Variants[i].TotalQuantity, split.Total)
	}

	six, eight := split.Variants[0], split.Variants[1]
	if six.TotalQuantity > eight.TotalQuantity {
		split.Preferred = six.Variant
	} else {
		split.Preferred = eight.Variant
	}

	return split
}
