package aggregating

import (
	"testing"
	"time"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelVariants_SampleFile(t *testing.T) {
	split := ModelVariants(sampleRecords(), sampleColumns)

	require.True(t, split.HasData)
	assert.Equal(t, int64(4000), split.Total)
	assert.Equal(t, []domain.VariantTotal{
		{Variant: domain.VariantSixHole, Label: "6 Furos", TotalQuantity: 2000, DistinctClients: 2, SaleCount: 2, PercentOfTotal: 50.0},
		{Variant: domain.VariantEightHole, Label: "8 Furos", TotalQuantity: 2000, DistinctClients: 1, SaleCount: 1, PercentOfTotal: 50.0},
	}, split.Variants)

	// empate favorece 8 furos
	assert.Equal(t, domain.VariantEightHole, split.Preferred)
}

func TestModelVariants_SixHolePreferred(t *testing.T) {
	records := []domain.SaleRecord{
		newRecord(1, time.May, "SP", "A", "", map[string]int64{"6F": 300, "8F": 100}),
	}

	split := ModelVariants(records, sampleColumns)
	assert.Equal(t, domain.VariantSixHole, split.Preferred)
	assert.Equal(t, 75.0, split.Variants[0].PercentOfTotal)
	assert.Equal(t, 25.0, split.Variants[1].PercentOfTotal)
	assert.Equal(t, 1, split.Variants[0].SaleCount)
	assert.Equal(t, 1, split.Variants[1].SaleCount)
}

func TestModelVariants_NoData(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.SaleRecord
		columns []domain.QuantityColumn
	}{
		{name: "Sem vendas", records: nil, columns: sampleColumns},
		{name: "Sem colunas de quantidade", records: sampleRecords(), columns: nil},
		{name: "Quantidades zeradas", records: []domain.SaleRecord{newRecord(1, time.May, "SP", "A", "", nil)}, columns: sampleColumns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := ModelVariants(tt.records, tt.columns)

			assert.False(t, split.HasData)
			assert.Equal(t, int64(0), split.Total)
			assert.Equal(t, "", split.Preferred)
			require.Len(t, split.Variants, 2)
			for _, variant := range split.Variants {
				assert.Equal(t, 0.0, variant.PercentOfTotal)
			}
		})
	}
}
