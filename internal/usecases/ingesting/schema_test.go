package ingesting

import (
	"testing"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverSchema(t *testing.T) {
	header := []string{" data ", "Cidade", "uf", "Cliente", "OBS.:", "6F", "8F", "6F_1", "8f_1", "Consultor", "6F"}

	schema, err := DiscoverSchema(header)
	require.NoError(t, err)

	assert.Equal(t, 0, schema.Date)
	assert.Equal(t, 1, schema.City)
	assert.Equal(t, 2, schema.State)
	assert.Equal(t, 3, schema.Client)
	assert.Equal(t, 9, schema.Consultant)
	assert.True(t, schema.HasClient())

	assert.Equal(t, []domain.QuantityColumn{
		{Name: "6F", Index: 5, Variant: domain.VariantSixHole},
		{Name: "8F", Index: 6, Variant: domain.VariantEightHole},
		{Name: "6F_1", Index: 7, Variant: domain.VariantSixHole},
		{Name: "8f_1", Index: 8, Variant: domain.VariantEightHole},
		{Name: "6F.1", Index: 10, Variant: domain.VariantSixHole},
	}, schema.QuantityColumns)
}

func TestDiscoverSchema_DuplicateRequiredColumnKeepsFirst(t *testing.T) {
	schema, err := DiscoverSchema([]string{"DATA", "UF", "DATA", "UF"})
	require.NoError(t, err)

	assert.Equal(t, 0, schema.Date)
	assert.Equal(t, 1, schema.State)
	assert.False(t, schema.HasClient())
	assert.Empty(t, schema.QuantityColumns)
}

func TestDiscoverSchema_MissingColumns(t *testing.T) {
	_, err := DiscoverSchema([]string{"CLIENTE", "6F"})
	require.Error(t, err)

	assert.True(t, IsSchemaError(err))
	assert.Equal(t, "colunas obrigatórias ausentes: DATA, UF", err.Error())
}

func TestCell(t *testing.T) {
	row := []string{"a", "b"}

	assert.Equal(t, "a", cell(row, 0))
	assert.Equal(t, "b", cell(row, 1))
	assert.Equal(t, "", cell(row, 2))
	assert.Equal(t, "", cell(row, missingColumn))
}
