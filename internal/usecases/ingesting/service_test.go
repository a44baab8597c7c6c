package ingesting

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

const sampleCSV = `DATA,Cidade,UF,CLIENTE,OBS.:,COR,MODELO,6F,8F,6F_1,8F_1,CONSULTOR,STATUS
05/01/2025,Manaus,AM,Norte Conectado,,Amarelo,8 furos,,2000,,,Rosangela,Finalizada
06/01/2025,Hortolândia,SP,Hixis Telecom,,Verde,6 furos,,,500,,M. Rodrigo,Finalizada
07/01/2025,Belo Horizonte,MG,TechNet,,,6 furos,1500,,,,Ana Silva,Finalizada`

func TestService_Ingest_SampleFile(t *testing.T) {
	result, err := NewService().Ingest(strings.NewReader(sampleCSV), "exemplo_placas_mundi.csv")
	require.NoError(t, err)

	require.Len(t, result.Records, 3)
	assert.Equal(t, 3, result.Stats.RowsRead)
	assert.Equal(t, 3, result.Stats.RowsKept)

	names := make([]string, 0, len(result.QuantityColumns))
	for _, column := range result.QuantityColumns {
		names = append(names, column.Name)
	}
	assert.Equal(t, []string{"6F", "8F", "6F_1", "8F_1"}, names)

	first := result.Records[0]
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "AM", first.State)
	assert.Equal(t, "Norte Conectado", first.Client)
	assert.Equal(t, "Manaus", first.City)
	assert.Equal(t, "Rosangela", first.Consultant)
	assert.Equal(t, int64(2000), first.TotalQuantity)
	assert.Equal(t, int64(2000), first.Quantities["8F"])
	assert.Equal(t, int64(0), first.Quantities["6F"])
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, domain.RegionNorte, first.Region)

	assert.Equal(t, "Hixis Telecom", result.Records[1].Client)
	assert.Equal(t, "Hortolândia", result.Records[1].City)
	assert.Equal(t, int64(500), result.Records[1].TotalQuantity)
	assert.Equal(t, domain.RegionSudeste, result.Records[1].Region)

	assert.Equal(t, int64(1500), result.Records[2].TotalQuantity)
	assert.Equal(t, 0, result.Stats.CoercedCells)
}

func TestIngestRows_ExclusionPolicy(t *testing.T) {
	header := []string{"DATA", "UF", "CLIENTE", "6F", "8F", "CONSULTOR"}

	tests := []struct {
		name          string
		row           []string
		kept          bool
		expectedStats domain.IngestStats
	}{
		{
			name:          "Sentinela de mês é descartada mesmo com demais campos válidos",
			row:           []string{"JANEIRO", "SP", "Cliente", "10", "", "Ana"},
			expectedStats: domain.IngestStats{RowsRead: 1, DroppedSentinel: 1},
		},
		{
			name:          "Sentinela com acento e minúsculas também é descartada",
			row:           []string{" março ", "SP", "Cliente", "10", "", "Ana"},
			expectedStats: domain.IngestStats{RowsRead: 1, DroppedSentinel: 1},
		},
		{
			name:          "DATA vazia é descartada",
			row:           []string{"   ", "SP", "Cliente", "10", "", "Ana"},
			expectedStats: domain.IngestStats{RowsRead: 1, DroppedMissingField: 1},
		},
		{
			name:          "UF vazia é descartada",
			row:           []string{"05/01/2025", " ", "Cliente", "10", "", "Ana"},
			expectedStats: domain.IngestStats{RowsRead: 1, DroppedMissingField: 1},
		},
		{
			name:          "Linha mais curta que o cabeçalho sem UF é descartada",
			row:           []string{"05/01/2025"},
			expectedStats: domain.IngestStats{RowsRead: 1, DroppedMissingField: 1},
		},
		{
			name:          "Mês 13 é data inválida",
			row:           []string{"31/13/2025", "SP", "Cliente", "10", "", "Ana"},
			expectedStats: domain.IngestStats{RowsRead: 1, DroppedInvalidDate: 1},
		},
		{
			name:          "31 de fevereiro é data inválida",
			row:           []string{"31/02/2025", "SP", "Cliente", "10", "", "Ana"},
			expectedStats: domain.IngestStats{RowsRead: 1, DroppedInvalidDate: 1},
		},
		{
			name:          "Ano com dois dígitos é data inválida",
			row:           []string{"05/01/25", "SP", "Cliente", "10", "", "Ana"},
			expectedStats: domain.IngestStats{RowsRead: 1, DroppedInvalidDate: 1},
		},
		{
			name:          "Formato ISO é data inválida",
			row:           []string{"2025-01-05", "SP", "Cliente", "10", "", "Ana"},
			expectedStats: domain.IngestStats{RowsRead: 1, DroppedInvalidDate: 1},
		},
		{
			name:          "Data válida é mantida",
			row:           []string{"05/01/2025", "sp", "Cliente", "10", "", "Ana"},
			kept:          true,
			expectedStats: domain.IngestStats{RowsRead: 1, RowsKept: 1},
		},
		{
			name:          "Dia e mês sem zero à esquerda são aceitos",
			row:           []string{"5/1/2025", "SP", "Cliente", "10", "", "Ana"},
			kept:          true,
			expectedStats: domain.IngestStats{RowsRead: 1, RowsKept: 1},
		},
		{
			name:          "Quantidade não numérica é contada como coerção",
			row:           []string{"05/01/2025", "SP", "Cliente", "abc", "2000", ""},
			kept:          true,
			expectedStats: domain.IngestStats{RowsRead: 1, RowsKept: 1, CoercedCells: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := IngestRows([][]string{header, tt.row})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStats, result.Stats)
			if tt.kept {
				require.Len(t, result.Records, 1)
				assert.Equal(t, "SP", result.Records[0].State)
				assert.Equal(t, 1, result.Records[0].Month)
			} else {
				assert.Empty(t, result.Records)
			}
		})
	}
}

func TestIngestRows_TotalQuantityIgnoresInvalidCells(t *testing.T) {
	rows := [][]string{
		{"DATA", "UF", "CLIENTE", "6F", "8F", "6F_1", "8F_1"},
		{"05/01/2025", "AM", "Norte Conectado", "", "2000", "n/a", "-10"},
	}

	result, err := IngestRows(rows)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	assert.Equal(t, int64(2000), result.Records[0].TotalQuantity)
	assert.Equal(t, map[string]int64{"6F": 0, "8F": 2000, "6F_1": 0, "8F_1": 0}, result.Records[0].Quantities)
	assert.Equal(t, 2, result.Stats.CoercedCells)
}

func TestIngestRows_HugeCellsAreCoerced(t *testing.T) {
	rows := [][]string{
		{"DATA", "UF", "CLIENTE", "6F", "8F"},
		{"05/01/2025", "SP", "A", "9e18", "9e18"},
		{"06/01/2025", "SP", "B", "1000000000000", "1e12"},
	}

	result, err := IngestRows(rows)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	assert.Equal(t, int64(0), result.Records[0].TotalQuantity)
	assert.Equal(t, int64(2_000_000_000_000), result.Records[1].TotalQuantity)
	assert.Equal(t, 2, result.Stats.CoercedCells)
	for _, record := range result.Records {
		assert.GreaterOrEqual(t, record.TotalQuantity, int64(0))
	}
}

func TestIngestRows_PreservesOrderAndUnmappedStates(t *testing.T) {
	rows := [][]string{
		{"DATA", "UF", "CLIENTE", "6F"},
		{"03/02/2025", "XX", "Cliente Exterior", "100"},
		{"JANEIRO", "", "", ""},
		{"01/02/2025", "RS", "Sul Net", "50"},
		{"02/02/2025", "SP", "Hixis Telecom", "25"},
	}

	result, err := IngestRows(rows)
	require.NoError(t, err)
	require.Len(t, result.Records, 3)

	assert.Equal(t, "XX", result.Records[0].State)
	assert.False(t, result.Records[0].HasRegion())
	assert.Equal(t, domain.Region(""), result.Records[0].Region)
	assert.Equal(t, "RS", result.Records[1].State)
	assert.Equal(t, domain.RegionSul, result.Records[1].Region)
	assert.Equal(t, "SP", result.Records[2].State)
}

func TestIngestRows_SchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		missing []string
	}{
		{
			name:    "Arquivo vazio não possui colunas",
			rows:    nil,
			missing: []string{"DATA", "UF"},
		},
		{
			name:    "Sem coluna UF",
			rows:    [][]string{{"DATA", "CLIENTE", "6F"}, {"05/01/2025", "Cliente", "1"}},
			missing: []string{"UF"},
		},
		{
			name:    "Sem coluna DATA",
			rows:    [][]string{{"UF", "CLIENTE"}},
			missing: []string{"DATA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := IngestRows(tt.rows)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsSchemaError(err))

			schemaErr, ok := err.(*SchemaError)
			require.True(t, ok)
			assert.Equal(t, tt.missing, schemaErr.Missing)
		})
	}
}

func TestIngestRows_EmptyResultIsNotAnError(t *testing.T) {
	rows := [][]string{
		{"DATA", "UF", "CLIENTE", "6F", "8F"},
		{"JANEIRO", "", "", "", ""},
		{"FEVEREIRO", "", "", "", ""},
		{"32/01/2025", "SP", "Cliente", "1", ""},
	}

	result, err := IngestRows(rows)
	require.NoError(t, err)
	require.NotNil(t, result.Records)
	assert.Empty(t, result.Records)
	assert.Equal(t, 3, result.Stats.RowsRead)
	assert.Equal(t, 0, result.Stats.RowsKept)
}

func TestIngestRows_MissingClientColumnIsTolerated(t *testing.T) {
	rows := [][]string{
		{"DATA", "UF", "8F"},
		{"05/01/2025", "AM", "2000"},
	}

	result, err := IngestRows(rows)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "", result.Records[0].Client)
	assert.Equal(t, int64(2000), result.Records[0].TotalQuantity)
}

func TestService_Ingest_SemicolonWindows1252(t *testing.T) {
	text := "DATA;UF;CLIENTE;CIDADE;6F;8F\r\n" +
		"MARÇO;;;;;\r\n" +
		"10/03/2025;SP;São Paulo Telecom;São Paulo;300;\r\n"

	encoded, err := charmap.Windows1252.NewEncoder().String(text)
	require.NoError(t, err)

	result, err := NewService().Ingest(strings.NewReader(encoded), "vendas.csv")
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	assert.Equal(t, 1, result.Stats.DroppedSentinel)
	assert.Equal(t, "São Paulo Telecom", result.Records[0].Client)
	assert.Equal(t, "São Paulo", result.Records[0].City)
	assert.Equal(t, 3, result.Records[0].Month)
	assert.Equal(t, int64(300), result.Records[0].TotalQuantity)
}

func TestService_Ingest_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("DATA,UF,CLIENTE,6F\n05/01/2025,AM,Norte,10\n")...)

	result, err := NewService().Ingest(bytes.NewReader(data), "")
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, int64(10), result.Records[0].TotalQuantity)
}

func TestService_Ingest_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	rows := [][]any{
		{"DATA", "Cidade", "UF", "CLIENTE", "6F", "8F", "CONSULTOR"},
		{"JANEIRO"},
		{"05/01/2025", "Manaus", "AM", "Norte Conectado", "", 2000, "Rosangela"},
		{"07/01/2025", "Belo Horizonte", "MG", "TechNet", 1500, "", "Ana Silva"},
	}
	for i := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellName, &rows[i]))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	result, err := NewService().Ingest(bytes.NewReader(buf.Bytes()), "planilha.xlsx")
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	assert.Equal(t, 1, result.Stats.DroppedSentinel)
	assert.Equal(t, int64(2000), result.Records[0].TotalQuantity)
	assert.Equal(t, int64(1500), result.Records[1].TotalQuantity)
	assert.Equal(t, "Ana Silva", result.Records[1].Consultant)
}

func TestService_Ingest_XLSXDateCells(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	rows := [][]any{
		{"DATA", "UF", "CLIENTE", "6F"},
		{time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "AM", "Norte Conectado", 10},
		{time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), "SP", "Hixis Telecom", 20.0},
		{"07/01/2025", "MG", "TechNet", 30},
	}
	for i := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellName, &rows[i]))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	result, err := NewService().Ingest(bytes.NewReader(buf.Bytes()), "planilha.xlsx")
	require.NoError(t, err)
	require.Len(t, result.Records, 3)

	assert.Zero(t, result.Stats.DroppedInvalidDate)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), result.Records[0].Date)
	assert.Equal(t, 1, result.Records[0].Month)
	assert.Equal(t, 3, result.Records[1].Month)
	assert.Equal(t, int64(20), result.Records[1].TotalQuantity)
	assert.Equal(t, time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), result.Records[2].Date)
}

func TestExcelDate(t *testing.T) {
	assert.Equal(t, "5/1/2025", excelDate("45662"))
	assert.Equal(t, "05/01/2025", excelDate("05/01/2025"))
	assert.Equal(t, "JANEIRO", excelDate("JANEIRO"))
	assert.Equal(t, "", excelDate(""))
}

func TestService_Ingest_InvalidXLSX(t *testing.T) {
	_, err := NewService().Ingest(strings.NewReader("not a workbook"), "planilha.xlsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFile)
	assert.False(t, IsSchemaError(err))
}
