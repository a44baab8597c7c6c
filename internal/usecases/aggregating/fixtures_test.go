package aggregating

import (
	"time"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
)

var sampleColumns = []domain.QuantityColumn{
	{Name: "6F", Index: 7, Variant: domain.VariantSixHole},
	{Name: "8F", Index: 8, Variant: domain.VariantEightHole},
	{Name: "6F_1", Index: 9, Variant: domain.VariantSixHole},
	{Name: "8F_1", Index: 10, Variant: domain.VariantEightHole},
}

func newRecord(day int, month time.Month, state, client, consultant string, quantities map[string]int64) domain.SaleRecord {
	full := map[string]int64{"6F": 0, "8F": 0, "6F_1": 0, "8F_1": 0}
	var total int64
	for name, quantity := range quantities {
		full[name] = quantity
		total += quantity
	}

	region, _ := domain.RegionOf(state)

	return domain.SaleRecord{
		Date:          time.Date(2025, month, day, 0, 0, 0, 0, time.UTC),
		State:         state,
		Client:        client,
		Consultant:    consultant,
		Quantities:    full,
		TotalQuantity: total,
		Month:         int(month),
		Region:        region,
	}
}

// sampleRecords reproduz as três vendas do arquivo de exemplo
func sampleRecords() []domain.SaleRecord {
	return []domain.SaleRecord{
		newRecord(5, time.January, "AM", "Norte Conectado", "Rosangela", map[string]int64{"8F": 2000}),
		newRecord(6, time.January, "SP", "Hixis Telecom", "M. Rodrigo", map[string]int64{"6F_1": 500}),
		newRecord(7, time.January, "MG", "TechNet", "Ana Silva", map[string]int64{"6F": 1500}),
	}
}
