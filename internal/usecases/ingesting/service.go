// Package ingesting transforma a planilha enviada em registros de venda validados
package ingesting

import (
	"io"
	"strings"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/allansduarte/placas-mundi-vendas/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Ingester define a interface de ingestão de arquivos de vendas
type Ingester interface {
	// Ingest lê o arquivo (CSV ou XLSX) e devolve as vendas válidas na ordem original
	Ingest(r io.Reader, fileName string) (*domain.IngestResult, error)
}

type Service struct{}

func NewService() Ingester {
	return &Service{}
}

func (s *Service) Ingest(r io.Reader, fileName string) (*domain.IngestResult, error) {
	rows, err := readTable(r, fileName)
	if err != nil {
		logrus.WithError(err).WithField("file", fileName).Error("Erro ao ler arquivo de vendas")
		return nil, err
	}

	result, err := IngestRows(rows)
	if err != nil {
		logrus.WithError(err).WithField("file", fileName).Warn("Arquivo de vendas rejeitado")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":                  fileName,
		"rows_read":             result.Stats.RowsRead,
		"rows_kept":             result.Stats.RowsKept,
		"dropped_sentinel":      result.Stats.DroppedSentinel,
		"dropped_missing_field": result.Stats.DroppedMissingField,
		"dropped_invalid_date":  result.Stats.DroppedInvalidDate,
		"coerced_cells":         result.Stats.CoercedCells,
		"quantity_columns":      len(result.QuantityColumns),
	}).Info("Arquivo de vendas processado")

	return result, nil
}

// IngestRows aplica a validação de esquema e a política de descarte sobre linhas já lidas.
// A primeira linha é o cabeçalho.
func IngestRows(rows [][]string) (*domain.IngestResult, error) {
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	schema, err := DiscoverSchema(header)
	if err != nil {
		return nil, err
	}

	if !schema.HasClient() {
		logrus.Warn("Coluna CLIENTE não encontrada, clientes ficarão em branco")
	}

	result := &domain.IngestResult{
		Records:         make([]domain.SaleRecord, 0, max(len(rows)-1, 0)),
		QuantityColumns: schema.QuantityColumns,
	}
	if result.QuantityColumns == nil {
		result.QuantityColumns = []domain.QuantityColumn{}
	}

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		result.Stats.RowsRead++

		record, ok := schema.buildRecord(row, &result.Stats)
		if !ok {
			continue
		}

		result.Records = append(result.Records, record)
	}

	result.Stats.RowsKept = len(result.Records)

	return result, nil
}

// buildRecord aplica os descartes na ordem: sentinela, campo vazio, data inválida
func (s *Schema) buildRecord(row []string, stats *domain.IngestStats) (domain.SaleRecord, bool) {
	rawDate := cell(row, s.Date)
	if IsSentinel(rawDate) {
		stats.DroppedSentinel++
		return domain.SaleRecord{}, false
	}

	rawDate = strings.TrimSpace(rawDate)
	state := strings.ToUpper(strings.TrimSpace(cell(row, s.State)))
	if rawDate == "" || state == "" {
		stats.DroppedMissingField++
		return domain.SaleRecord{}, false
	}

	date, err := utils.ParseBRDate(rawDate)
	if err != nil {
		stats.DroppedInvalidDate++
		return domain.SaleRecord{}, false
	}

	quantities := make(map[string]int64, len(s.QuantityColumns))
	var total int64
	for _, column := range s.QuantityColumns {
		quantity, coerced := parseQuantity(cell(row, column.Index))
		if coerced {
			stats.CoercedCells++
		}
		quantities[column.Name] = quantity
		total = addQuantity(total, quantity)
	}

	region, _ := domain.RegionOf(state)

	return domain.SaleRecord{
		Date:          date,
		State:         state,
		Client:        strings.TrimSpace(cell(row, s.Client)),
		City:          strings.TrimSpace(cell(row, s.City)),
		Consultant:    strings.TrimSpace(cell(row, s.Consultant)),
		Quantities:    quantities,
		TotalQuantity: total,
		Month:         int(date.Month()),
		Region:        region,
	}, true
}
